package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryNone       Category = ""
	CategoryFiction    Category = "FICTION"
	CategoryNonFiction Category = "NON_FICTION"
	CategoryScience    Category = "SCIENCE"
	CategoryTechnology Category = "TECHNOLOGY"
	CategoryHistory    Category = "HISTORY"
	CategoryBiography  Category = "BIOGRAPHY"
	CategoryChildren   Category = "CHILDREN"
	CategoryReference  Category = "REFERENCE"
	CategoryPoetry     Category = "POETRY"
	CategoryOther      Category = "OTHER"
)

var categories = map[Category]struct{}{
	CategoryNone: {}, CategoryFiction: {}, CategoryNonFiction: {}, CategoryScience: {},
	CategoryTechnology: {}, CategoryHistory: {}, CategoryBiography: {}, CategoryChildren: {},
	CategoryReference: {}, CategoryPoetry: {}, CategoryOther: {},
}

// ParseCategory accepts a category name in any case. The empty string is
// valid and means uncategorised.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := categories[c]
	return c, ok
}

type Book struct {
	ID          string // immutable once assigned
	Title       string
	Author      string
	ISBN        string
	Description string
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
