package review

import (
	"sort"
	"strconv"
)

// Sort orders query results by similarity ratio.
type Sort int

const (
	SortNone Sort = iota
	SortAsc
	SortDesc
)

// Filter narrows a query. All criteria are optional and combine with AND. Ratio criteria use the same comparisons reviewers had before: GreaterThan
// and LessThan are strict, From/To are inclusive and may each stand alone; a reversed From/To pair is swapped rather than rejected.
type Filter struct {
	GreaterThan *float64
	LessThan    *float64
	From        *float64
	To          *float64

	// Primary/Secondary select rows by a cell's approval state: nil matches any, ApprovalNone matches only unapproved cells, a color matches only
	// cells approved with that color.
	Primary   *Approval
	Secondary *Approval

	// Number matches a row's display identifier exactly, falling back to the row's position when no row carries that identifier.
	Number string

	Sort Sort
}

// Entry is one row of a query result, carrying the row's position in the table so callers can address it in later operations.
type Entry struct {
	Index int
	Row   Row
}

// Page is a query result: one page of matching entries plus the totals the caller needs for paging controls.
type Page struct {
	Entries    []Entry
	PageIndex  int // 1-based, clamped
	TotalPages int
	TotalRows  int // rows matching the filter, across all pages
}

// Query filters, sorts, and paginates the table. perPage <= 0 disables pagination and returns all matches on page 1.
func (t *Table) Query(f Filter, perPage, page int) Page {
	matched := make([]Entry, 0, len(t.rows))
	for i := range t.rows {
		if f.matches(&t.rows[i]) {
			matched = append(matched, Entry{Index: i, Row: t.rows[i]})
		}
	}

	if f.Number != "" {
		matched = filterByNumber(matched, f.Number)
	}

	switch f.Sort {
	case SortAsc:
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].Row.Ratio < matched[b].Row.Ratio })
	case SortDesc:
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].Row.Ratio > matched[b].Row.Ratio })
	}

	total := len(matched)
	if perPage <= 0 {
		return Page{Entries: matched, PageIndex: 1, TotalPages: 1, TotalRows: total}
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{Entries: matched[start:end], PageIndex: page, TotalPages: totalPages, TotalRows: total}
}

func (f Filter) matches(r *Row) bool {
	if f.GreaterThan != nil && !(r.Ratio > *f.GreaterThan) {
		return false
	}
	if f.LessThan != nil && !(r.Ratio < *f.LessThan) {
		return false
	}
	if f.From != nil && f.To != nil {
		lo, hi := *f.From, *f.To
		if lo > hi {
			lo, hi = hi, lo
		}
		if r.Ratio < lo || r.Ratio > hi {
			return false
		}
	} else if f.From != nil && r.Ratio < *f.From {
		return false
	} else if f.To != nil && r.Ratio > *f.To {
		return false
	}

	if !approvalMatches(f.Primary, r.Approval(SidePrimary)) {
		return false
	}
	if !approvalMatches(f.Secondary, r.Approval(SideSecondary)) {
		return false
	}
	return true
}

func approvalMatches(want *Approval, have Approval) bool {
	if want == nil {
		return true
	}
	return *want == have
}

// filterByNumber matches entries whose row Number equals number; if no row carries that Number, it falls back to interpreting number as a table
// position.
func filterByNumber(entries []Entry, number string) []Entry {
	var byNumber []Entry
	for _, e := range entries {
		if e.Row.Number != "" && e.Row.Number == number {
			byNumber = append(byNumber, e)
		}
	}
	if len(byNumber) > 0 {
		return byNumber
	}

	idx, err := strconv.Atoi(number)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.Index == idx {
			return []Entry{e}
		}
	}
	return nil
}
