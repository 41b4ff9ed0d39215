package fleet

import "strings"

// AllOption is the sentinel shown first in home-port and status pickers
const AllOption = "All"

// FilterCriteria narrows the vessel list. Nil fields mean "all".
type FilterCriteria struct {
	Query    string
	HomePort *string
	Status   *OperationalStatus
}

// NewFilterCriteria builds criteria from raw picker values, treating "" and
// AllOption (any case) as "all".
func NewFilterCriteria(query, homePort, status string) (FilterCriteria, error) {
	criteria := FilterCriteria{Query: query}

	if homePort = strings.TrimSpace(homePort); homePort != "" && !strings.EqualFold(homePort, AllOption) {
		criteria.HomePort = &homePort
	}

	if status = strings.TrimSpace(status); status != "" && !strings.EqualFold(status, AllOption) {
		parsed, err := ParseOperationalStatus(status)
		if err != nil {
			return FilterCriteria{}, err
		}
		criteria.Status = &parsed
	}

	return criteria, nil
}

// IsEmpty reports whether the criteria would return the whole collection
func (c FilterCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.Query) == "" && c.HomePort == nil && c.Status == nil
}
