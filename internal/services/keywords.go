package services

// inclusiveSearchTerms is the hand-maintained query list used when a caller
// supplies no search term. Only the first searchTermFanOut entries are
// dispatched per request.
var inclusiveSearchTerms = []string{
	"disability inclusive jobs",
	"accessible workplace jobs",
	"equal opportunity employer jobs",
	"inclusive hiring jobs",
	"diversity and inclusion jobs",
	"remote accessible jobs",
	"assistive technology jobs",
	"neurodiversity friendly jobs",
}

const searchTermFanOut = 3

// inclusiveKeywords drives the inclusivity score: +3 per match in the
// description, +2 in the title, +1 in the employer name.
var inclusiveKeywords = []string{
	"disability",
	"inclusive",
	"accessible",
	"accessibility",
	"wheelchair",
	"sign language",
	"assistive",
	"accommodation",
	"equal opportunity",
	"diversity",
	"ada compliant",
	"screen reader",
	"flexible hours",
	"work from home",
}

// tagRule maps one keyword to the tag and accessibility feature it names.
// A keyword contributes at most once; duplicate tags/features are suppressed
// by the normalizer.
type tagRule struct {
	keyword string
	tag     string
	feature string
}

var tagRules = []tagRule{
	{"wheelchair", "Wheelchair Accessible", "Wheelchair accessible workplace"},
	{"ada compliant", "Wheelchair Accessible", "ADA compliant office"},
	{"remote", "Remote", "Remote work available"},
	{"work from home", "Remote", "Remote work available"},
	{"sign language", "Sign Language Support", "Sign language interpretation"},
	{"screen reader", "Assistive Technology", "Screen reader compatible tools"},
	{"assistive", "Assistive Technology", "Assistive technology provided"},
	{"accommodation", "Accommodations Provided", "Workplace accommodations"},
	{"inclusive", "Inclusive Workplace", "Inclusive team culture"},
	{"equal opportunity", "Equal Opportunity", "Equal opportunity employer"},
	{"diversity", "Diversity Focused", "Diversity and inclusion program"},
	{"flexible hours", "Flexible Hours", "Flexible working hours"},
}

// defaultTags guarantee no posting ships tag-less.
var defaultTags = []string{"Inclusive Workplace", "Equal Opportunity"}

// Keyword groups backing the four text-evidence accessibility flags.
// Remote-friendliness is structural (upstream flag or remote mention) and
// has no group here.
var (
	wheelchairKeywords = []string{
		"wheelchair", "ada compliant", "accessible office", "mobility support", "step-free",
	}
	signLanguageKeywords = []string{
		"sign language", "asl", "interpreter", "deaf friendly", "hearing impaired",
	}
	colorblindKeywords = []string{
		"colorblind", "color blind", "high contrast", "screen reader",
	}
	inclusiveHiringKeywords = []string{
		"inclusive hiring", "equal opportunity", "diversity", "disability inclusion", "neurodiver",
	}
)

// Per-flag bonuses added on top of the keyword score.
const (
	remoteBonus          = 2
	wheelchairBonus      = 3
	signLanguageBonus    = 2
	colorblindBonus      = 1
	inclusiveHiringBonus = 2
)
