package session

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mystore/catalog/internal/core/domain"
)

// Per-page filter tables. Labels are what the filter bar shows; values
// are the stored subcategory tokens. An unknown label matches nothing.

var menFilters = map[string][]string{
	"T-Shirts": {"tshirts"},
	"Shirts":   {"shirts"},
	"Jeans":    {"jeans"},
	"Watches":  {"watches"},
	"Shoes":    {"shoes"},
}

var womenFilters = map[string]string{
	"Kurti":     "kurti",
	"Dress":     "dress",
	"Top":       "tops",
	"Ethnic":    "ethnic",
	"Footwear":  "footwear",
	"Jewellery": "jewellery",
}

var watchFilters = map[string]string{
	"Luxury":        "luxury",
	"Smart Watches": "smart",
	"Analog":        "analog",
	"Digital":       "digital",
	"Sports":        "sports",
}

// MenView derives the men's page grid for the active filter label.
func MenView(ps []domain.Product, label string) []domain.Product {
	pred := domain.CategoryIs("men")
	if label != "All" {
		subs, ok := menFilters[label]
		if !ok {
			return nil
		}
		pred = domain.And(pred, domain.SubCategoryIn(subs...))
	}
	return domain.Filter(ps, pred, domain.SortNone)
}

// WomenView derives the women's page grid. Subcategory comparison is
// case-insensitive on this page.
func WomenView(ps []domain.Product, label string) []domain.Product {
	pred := domain.CategoryIs("women")
	if label != "All" {
		sub, ok := womenFilters[label]
		if !ok {
			return nil
		}
		pred = domain.And(pred, domain.SubCategoryFold(sub))
	}
	return domain.Filter(ps, pred, domain.SortNone)
}

// KidsBoysView and KidsGirlsView are two independent sub-views over
// the kids category, derived from the same source sequence. The shared
// filter bar drives both:
//
//	boys:  all/boys -> tshirts+boys, winter -> winter only
//	girls: all/girls -> girls only,  party  -> party only
func KidsBoysView(ps []domain.Product, filter string) []domain.Product {
	base := domain.CategoryIs("kids")
	switch filter {
	case "winter":
		return domain.Filter(ps,
			domain.And(base, domain.SubCategoryIn("winter")), domain.SortNone)
	case "all", "boys":
		return domain.Filter(ps,
			domain.And(base, domain.SubCategoryIn("tshirts", "boys")),
			domain.SortNone)
	}
	return nil
}

func KidsGirlsView(ps []domain.Product, filter string) []domain.Product {
	base := domain.CategoryIs("kids")
	switch filter {
	case "party":
		return domain.Filter(ps,
			domain.And(base, domain.SubCategoryIn("party")), domain.SortNone)
	case "all", "girls":
		return domain.Filter(ps,
			domain.And(base, domain.SubCategoryIn("girls")), domain.SortNone)
	}
	return nil
}

// WatchesView derives the watches page grid: type badge, price ceiling
// and price sort.
func WatchesView(ps []domain.Product, st ViewState) []domain.Product {
	preds := []domain.Predicate{domain.CategoryIs("watches")}
	if st.Type != "All" {
		token, ok := watchFilters[st.Type]
		if !ok {
			return nil
		}
		preds = append(preds, domain.SubCategoryIn(token))
	}
	preds = append(preds, domain.PriceAtMost(float64(st.Price)))
	return domain.Filter(ps, domain.And(preds...), st.Sort)
}

// ShoesView derives the shoes page grid. The type badge matches the
// product name, not the subcategory, on this page.
func ShoesView(ps []domain.Product, st ViewState) []domain.Product {
	preds := []domain.Predicate{domain.CategoryIs("shoes")}
	if st.Type != "All" {
		preds = append(preds, domain.NameContains(st.Type))
	}
	preds = append(preds, domain.PriceAtMost(float64(st.Price)))
	return domain.Filter(ps, domain.And(preds...), st.Sort)
}

// SandalsView is the companion section of the shoes page; the filter
// bar does not apply to it.
func SandalsView(ps []domain.Product) []domain.Product {
	return domain.Filter(ps, domain.CategoryIs("sandals"), domain.SortNone)
}

// SearchView implements the search page: no input means no results,
// not "show all".
func SearchView(ps []domain.Product, query, category string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" && category == "all" {
		return nil
	}

	var preds []domain.Predicate
	if query != "" {
		preds = append(preds, domain.NameContains(query))
	}
	if category != "all" {
		preds = append(preds, domain.CategoryIs(category))
	}
	return domain.Filter(ps, domain.And(preds...), domain.SortNone)
}

// AdminListView filters the admin console product table by a free-text
// term over name and description plus an optional category.
func AdminListView(ps []domain.Product, term, category string) []domain.Product {
	preds := []domain.Predicate{domain.TextContains(term)}
	if category != "" {
		preds = append(preds, domain.CategoryIs(category))
	}
	return domain.Filter(ps, domain.And(preds...), domain.SortNone)
}

// CategoriesOf lists the distinct categories present, in first-seen
// order, for the admin category dropdown.
func CategoriesOf(ps []domain.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// RelatedLimit caps each recommendation strip on the product detail
// page.
const RelatedLimit = 6

// RelatedView picks recommendations for the product detail page: same
// category and subcategory, excluding the product itself, shuffled and
// capped at [RelatedLimit].
func RelatedView(ps []domain.Product, id int) ([]domain.Product, error) {
	const op = "RelatedView"

	product, ok := findByID(ps, id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	related := domain.Filter(ps, domain.And(
		domain.CategoryIs(product.Category),
		domain.SubCategoryIn(product.SubCategory),
	), domain.SortNone)

	return pickRecommendations(related, id), nil
}

// AlsoBoughtView is the companion "customers also bought" strip:
// same category only, excluding the product itself, shuffled and
// capped at [RelatedLimit].
func AlsoBoughtView(ps []domain.Product, id int) ([]domain.Product, error) {
	const op = "AlsoBoughtView"

	product, ok := findByID(ps, id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	bought := domain.Filter(ps,
		domain.CategoryIs(product.Category), domain.SortNone)

	return pickRecommendations(bought, id), nil
}

// pickRecommendations shuffles before capping, so the strip is a
// random sample rather than the first matches.
func pickRecommendations(ps []domain.Product, excludeID int) []domain.Product {
	out := ps[:0]
	for _, p := range ps {
		if p.ID != excludeID {
			out = append(out, p)
		}
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > RelatedLimit {
		out = out[:RelatedLimit]
	}
	return out
}

func findByID(ps []domain.Product, id int) (domain.Product, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
