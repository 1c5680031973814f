// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read the database directly and return read models shaped for the
// HTTP layer; visibility scoping is always applied inside the SQL, never by
// filtering rows after the fact.
package queries

import "time"

// Pagination bounds.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// defaultDateFrom is the lower bound applied when a listing has no explicit
// date filter. Predates the launch of the platform, so it effectively means
// "everything".
var defaultDateFrom = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// Page holds normalized pagination parameters. Out-of-range input is clamped
// rather than rejected.
type Page struct {
	page    int
	perPage int
}

// NewPage normalizes raw pagination input.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{page: page, perPage: perPage}
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	return p.page
}

// Limit returns the SQL LIMIT value.
func (p Page) Limit() int {
	return p.perPage
}

// Offset returns the SQL OFFSET value.
func (p Page) Offset() int {
	return (p.page - 1) * p.perPage
}

// dateRange resolves optional from/to bounds to the inclusive interval the
// listings filter on.
func dateRange(from, to *time.Time) (time.Time, time.Time) {
	lo := defaultDateFrom
	hi := time.Now().UTC()
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	return lo, hi
}
