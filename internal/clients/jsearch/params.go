package jsearch

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

var ErrTooManyPages = errors.New("too many pages requested")

// Upstream-side constants: postings older than a month are stale for an
// aggregation feed, and the employment-type allow-list matches what the
// normalizer understands.
const (
	datePosted      = "month"
	employmentTypes = "FULLTIME,CONTRACTOR,PARTTIME,INTERN"

	maxNumPages = 20
)

type SearchParameters struct {
	Query    string
	Country  string
	Page     int
	NumPages int
}

func (s SearchParameters) Validate() error {

	if s.Query == "" {
		return fmt.Errorf("query must not be empty")
	}

	if s.Page < 1 {
		return fmt.Errorf("page must be positive")
	}

	if s.NumPages < 1 {
		return fmt.Errorf("num pages must be positive")
	}

	if s.NumPages > maxNumPages {
		return ErrTooManyPages
	}

	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{}
	params.Add("query", s.Query)
	params.Add("page", strconv.Itoa(s.Page))
	params.Add("num_pages", strconv.Itoa(s.NumPages))
	params.Add("date_posted", datePosted)
	params.Add("employment_types", employmentTypes)

	if s.Country != "" {
		params.Add("country", s.Country)
	}

	return params
}
