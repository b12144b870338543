package pco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poachurch/pcobridge/pco"
)

func intPtr(v int) *int { return &v }

func TestNormalizePagination(t *testing.T) {
	const defaultPerPage = 3

	tests := []struct {
		name       string
		perPageRaw string
		offsetRaw  string
		page       *int
		want       pco.Pagination
	}{
		{
			name: "NothingSupplied_AllAbsent",
			want: pco.Pagination{},
		},
		{
			name: "PageOnly_DefaultPerPageAndDerivedOffset",
			page: intPtr(2),
			want: pco.Pagination{Page: intPtr(2), PerPage: intPtr(3), Offset: intPtr(6)},
		},
		{
			name:       "PageAndPerPage_DerivedOffset",
			perPageRaw: "10",
			page:       intPtr(4),
			want:       pco.Pagination{Page: intPtr(4), PerPage: intPtr(10), Offset: intPtr(40)},
		},
		{
			name:       "PerPageOnly_NoOffsetNoPage",
			perPageRaw: "25",
			want:       pco.Pagination{PerPage: intPtr(25)},
		},
		{
			name:       "OffsetAndPerPage_DerivedPage",
			perPageRaw: "5",
			offsetRaw:  "12",
			want:       pco.Pagination{Page: intPtr(2), PerPage: intPtr(5), Offset: intPtr(12)},
		},
		{
			name:      "OffsetOnly_NoPerPage_NoPage",
			offsetRaw: "12",
			want:      pco.Pagination{Offset: intPtr(12)},
		},
		{
			name:       "ExplicitOffsetWinsOverDerived",
			perPageRaw: "5",
			offsetRaw:  "7",
			page:       intPtr(3),
			want:       pco.Pagination{Page: intPtr(3), PerPage: intPtr(5), Offset: intPtr(7)},
		},
		{
			name:       "InvalidPerPage_FallsBackToDefaultWithPage",
			perPageRaw: "zero",
			page:       intPtr(1),
			want:       pco.Pagination{Page: intPtr(1), PerPage: intPtr(3), Offset: intPtr(3)},
		},
		{
			name:       "NonPositivePerPageIgnored",
			perPageRaw: "0",
			want:       pco.Pagination{},
		},
		{
			name:      "NegativeOffsetIgnored",
			offsetRaw: "-4",
			want:      pco.Pagination{},
		},
		{
			name:      "InvalidOffsetWithPage_DerivedOffset",
			offsetRaw: "later",
			page:      intPtr(1),
			want:      pco.Pagination{Page: intPtr(1), PerPage: intPtr(3), Offset: intPtr(3)},
		},
		{
			name: "PageZero_OffsetZero",
			page: intPtr(0),
			want: pco.Pagination{Page: intPtr(0), PerPage: intPtr(3), Offset: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pco.NormalizePagination(tt.perPageRaw, tt.offsetRaw, tt.page, defaultPerPage)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePaginationInvariant(t *testing.T) {
	// Whenever page and perPage are defined and no explicit offset was
	// given, offset must equal page*perPage.
	for page := 0; page < 5; page++ {
		for _, perPageRaw := range []string{"", "1", "4", "9"} {
			got := pco.NormalizePagination(perPageRaw, "", intPtr(page), 3)
			if got.Page == nil || got.PerPage == nil {
				continue
			}
			assert.NotNil(t, got.Offset)
			assert.Equal(t, *got.Page**got.PerPage, *got.Offset)
		}
	}
}
