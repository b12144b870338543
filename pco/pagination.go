// pco/pagination.go
package pco

import "strconv"

// Pagination is the reconciled page / per-page / offset triple. A nil field
// was neither supplied nor derivable and must stay out of the upstream query
// and the response envelope.
type Pagination struct {
	Page    *int
	PerPage *int
	Offset  *int
}

// NormalizePagination reconciles the three partially-overlapping pagination
// inputs. Raw values come straight off the inbound query string; an empty
// string means the parameter was absent. The rules, in order:
//
//  1. perPageRaw counts only when it parses to an integer > 0.
//  2. PerPage is set from a valid raw value, or falls back to defaultPerPage
//     when an explicit page was supplied.
//  3. offsetRaw counts only when it parses to an integer >= 0; a valid raw
//     offset always wins over the derived page*perPage.
//  4. Otherwise Offset is derived as page*perPage when both are known.
//  5. A missing page is derived as floor(offset/perPage) when possible.
//
// When none of the three inputs are given, all three outputs stay nil so the
// upstream's own default paging applies.
func NormalizePagination(perPageRaw, offsetRaw string, page *int, defaultPerPage int) Pagination {
	var result Pagination

	parsedPerPage, perPageErr := strconv.Atoi(perPageRaw)
	validPerPage := perPageErr == nil && parsedPerPage > 0
	switch {
	case validPerPage:
		result.PerPage = &parsedPerPage
	case page != nil:
		fallback := defaultPerPage
		result.PerPage = &fallback
	}

	parsedOffset, offsetErr := strconv.Atoi(offsetRaw)
	validOffset := offsetErr == nil && parsedOffset >= 0
	switch {
	case validOffset:
		result.Offset = &parsedOffset
	case page != nil && result.PerPage != nil:
		derived := *page * *result.PerPage
		result.Offset = &derived
	}

	switch {
	case page != nil:
		result.Page = page
	case result.Offset != nil && result.PerPage != nil && *result.PerPage > 0:
		derived := *result.Offset / *result.PerPage
		result.Page = &derived
	}

	return result
}
