package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the two lists a task belongs to.
// It also acts as the active view filter.
type Category int

const (
	// CategoryWork is the default category
	CategoryWork Category = iota
	// CategoryTravel is the second list
	CategoryTravel
)

// Categories lists every category in display order
var Categories = []Category{CategoryWork, CategoryTravel}

// String returns the lowercase name used in config files and JSON
func (c Category) String() string {
	switch c {
	case CategoryWork:
		return "work"
	case CategoryTravel:
		return "travel"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Title returns the display name shown on tabs
func (c Category) Title() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryTravel:
		return "Travel"
	default:
		return c.String()
	}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == CategoryWork || c == CategoryTravel
}

// Other returns the opposite category
func (c Category) Other() Category {
	if c == CategoryTravel {
		return CategoryWork
	}
	return CategoryTravel
}

// ParseCategory parses a category name, ignoring case and surrounding spaces
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return CategoryWork, nil
	case "travel":
		return CategoryTravel, nil
	default:
		return CategoryWork, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// MarshalJSON encodes the category as its lowercase name
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a category name or the legacy boolean flag
// where true meant the work list. null leaves c unchanged.
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var working bool
	if err := json.Unmarshal(data, &working); err == nil {
		if working {
			*c = CategoryWork
		} else {
			*c = CategoryTravel
		}
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, data)
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
