package entities

// AccessibilityFlags describes the five independent accessibility facets of
// a posting. They are derived from listing content, never caller-supplied.
type AccessibilityFlags struct {
	WheelchairAccessible bool `json:"wheelchairAccessible"`
	SignLanguageSupport  bool `json:"signLanguageSupport"`
	ColorblindFriendlyUI bool `json:"colorblindFriendlyUI"`
	InclusiveHiring      bool `json:"inclusiveHiring"`
	RemoteFriendly       bool `json:"remoteFriendly"`
}

// Job is the normalized posting served to clients. Fields are filled once
// during normalization; later stages only reorder jobs, never edit them.
type Job struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Company               string             `json:"company"`
	Location              string             `json:"location"`
	Salary                string             `json:"salary"`
	Type                  string             `json:"type"`
	Description           string             `json:"description"`
	ApplyURL              string             `json:"applyUrl"`
	PostedDate            string             `json:"postedDate"`
	Remote                bool               `json:"remote"`
	CompanyLogo           string             `json:"companyLogo,omitempty"`
	Tags                  []string           `json:"tags"`
	AccessibilityFeatures []string           `json:"accessibilityFeatures"`
	AccessibilityFlags    AccessibilityFlags `json:"accessibilityFlags"`
	InclusivityScore      int                `json:"inclusivityScore"`
}
