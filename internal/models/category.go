package models

import (
	"fmt"
	"strings"
)

// Category identifies which product table an item lives in. Values outside
// the four known categories never reach a query; ParseCategory is the only
// way a client-supplied string becomes a Category.
type Category string

const (
	CategoryWatches  Category = "watches"
	CategoryClothes  Category = "clothes"
	CategoryBags     Category = "bags"
	CategoryPerfumes Category = "perfumes"
)

// Categories lists every category in canonical order. Code resolution probes
// the tables in exactly this order, so the order is part of the contract.
var Categories = []Category{CategoryWatches, CategoryClothes, CategoryBags, CategoryPerfumes}

func ParseCategory(s string) (Category, error) {

	category := Category(strings.ToLower(strings.TrimSpace(s)))

	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}

	return category, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWatches, CategoryClothes, CategoryBags, CategoryPerfumes:
		return true
	}

	return false
}

func (c Category) String() string {
	return string(c)
}
