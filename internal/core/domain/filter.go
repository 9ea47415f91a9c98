package domain

import (
	"sort"
	"strings"
)

// SortOrder reorders a filtered view. It never filters.
type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortPriceAsc  SortOrder = "low"
	SortPriceDesc SortOrder = "high"
)

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	default:
		return SortNone
	}
}

type predicateKind int

const (
	predAll predicateKind = iota
	predCategory
	predSubCategorySet
	predPriceCeiling
	predNameContains
	predTextContains
	predAnd
)

// Predicate is a composable boolean test over product fields.
// The zero value matches everything.
type Predicate struct {
	kind     predicateKind
	category string
	subs     []string
	foldSubs bool
	ceiling  float64
	query    string
	and      []Predicate
}

// CategoryIs matches the stored category token exactly.
func CategoryIs(c string) Predicate {
	return Predicate{kind: predCategory, category: c}
}

// SubCategoryIn matches products whose subcategory is one of subs.
func SubCategoryIn(subs ...string) Predicate {
	return Predicate{kind: predSubCategorySet, subs: subs}
}

// SubCategoryFold is SubCategoryIn with case-insensitive comparison.
func SubCategoryFold(subs ...string) Predicate {
	return Predicate{kind: predSubCategorySet, subs: subs, foldSubs: true}
}

// PriceAtMost matches price <= ceiling, inclusive.
func PriceAtMost(ceiling float64) Predicate {
	return Predicate{kind: predPriceCeiling, ceiling: ceiling}
}

// NameContains matches a case-insensitive substring of the name.
func NameContains(q string) Predicate {
	return Predicate{kind: predNameContains, query: q}
}

// TextContains matches a case-insensitive substring of the name
// or the description.
func TextContains(q string) Predicate {
	return Predicate{kind: predTextContains, query: q}
}

// And composes predicates by logical conjunction.
func And(ps ...Predicate) Predicate {
	return Predicate{kind: predAnd, and: ps}
}

func (p Predicate) Match(v Product) bool {
	switch p.kind {
	case predAll:
		return true
	case predCategory:
		return v.Category == p.category
	case predSubCategorySet:
		for _, s := range p.subs {
			if p.foldSubs {
				if strings.EqualFold(v.SubCategory, s) {
					return true
				}
			} else if v.SubCategory == s {
				return true
			}
		}
		return false
	case predPriceCeiling:
		return v.Price <= p.ceiling
	case predNameContains:
		return containsFold(v.Name, p.query)
	case predTextContains:
		return containsFold(v.Name, p.query) ||
			containsFold(v.Description, p.query)
	case predAnd:
		for _, sub := range p.and {
			if !sub.Match(v) {
				return false
			}
		}
		return true
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter returns the products matching pred in the requested order.
//
// Pure: the input slice is never mutated, the result is always a fresh
// slice. Sorting is stable, SortNone preserves the input order.
func Filter(ps []Product, pred Predicate, order SortOrder) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if pred.Match(p) {
			out = append(out, p)
		}
	}

	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	}
	return out
}
