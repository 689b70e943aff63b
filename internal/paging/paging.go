package paging

import "strconv"

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Page is an offset window over an id-ordered list. A zero Limit means
// the whole list.
type Page struct {
	Offset int
	Limit  int
}

var All = Page{}

func Calculate(page, size int) Page {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxSize {
		size = DefaultSize
	}
	return Page{Offset: (page - 1) * size, Limit: size}
}

// FromQuery returns All when neither page nor size is set.
func FromQuery(page, size string) Page {
	if page == "" && size == "" {
		return All
	}
	return Calculate(parseIntDefault(page, 1), parseIntDefault(size, DefaultSize))
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
