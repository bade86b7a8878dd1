// Package pagination derives the page navigation control from the list cursor.
package pagination

// MaxPageItems bounds the number of numbered page buttons
const MaxPageItems = 7

// Item is a numbered page button
type Item struct {
	Number int
	Active bool
}

// Controls is the rendered navigation row. Visible is false when there is at most one page.
type Controls struct {
	Visible      bool
	PrevDisabled bool
	NextDisabled bool
	Items        []Item
	Current      int
	TotalPages   int
}

// TotalPages returns ceil(totalWords / perPage)
func TotalPages(totalWords, perPage int) int {
	if perPage <= 0 || totalWords <= 0 {
		return 0
	}
	return (totalWords + perPage - 1) / perPage
}

// Present builds the controls for the current page
func Present(current, totalPages int) Controls {
	c := Controls{
		Current:      current,
		TotalPages:   totalPages,
		PrevDisabled: current <= 1,
		NextDisabled: current >= totalPages,
	}
	if totalPages <= 1 {
		return c
	}

	c.Visible = true
	first, last := window(current, totalPages)
	c.Items = make([]Item, 0, last-first+1)
	for n := first; n <= last; n++ {
		c.Items = append(c.Items, Item{Number: n, Active: n == current})
	}
	return c
}

// Valid reports whether n is a page the controller may be asked to load
func Valid(n, totalPages int) bool {
	return n >= 1 && n <= totalPages
}

// Prev returns the target of the "previous" control, if enabled
func (c Controls) Prev() (int, bool) {
	if c.PrevDisabled {
		return 0, false
	}
	return c.Current - 1, true
}

// Next returns the target of the "next" control, if enabled
func (c Controls) Next() (int, bool) {
	if c.NextDisabled {
		return 0, false
	}
	return c.Current + 1, true
}

// window centres at most MaxPageItems pages on current, shifted to stay in range
func window(current, totalPages int) (int, int) {
	if totalPages <= MaxPageItems {
		return 1, totalPages
	}
	first := current - MaxPageItems/2
	if first < 1 {
		first = 1
	}
	last := first + MaxPageItems - 1
	if last > totalPages {
		last = totalPages
		first = last - MaxPageItems + 1
	}
	return first, last
}
