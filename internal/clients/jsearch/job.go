package jsearch

// Job is the provider's raw listing shape. Every field is optional upstream,
// so all of them must default safely during normalization.
type Job struct {
	ID             string `json:"job_id"`
	Title          string `json:"job_title"`
	Employer       string `json:"employer_name"`
	EmployerLogo   string `json:"employer_logo"`
	City           string `json:"job_city"`
	Country        string `json:"job_country"`
	IsRemote       bool   `json:"job_is_remote"`
	EmploymentType string `json:"job_employment_type"`
	Description    string `json:"job_description"`
	Salary         string `json:"job_salary"`
	ApplyLink      string `json:"job_apply_link"`
	PostedAt       string `json:"job_posted_at_datetime_utc"`
}
