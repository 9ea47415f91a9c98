package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/session"
)

func storefront() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Crew Tee", Category: "men", SubCategory: "tshirts", Price: 400},
		{ID: 2, Name: "Oxford Shirt", Category: "men", SubCategory: "shirts", Price: 900},
		{ID: 3, Name: "Summer Dress", Category: "women", SubCategory: "Dress", Price: 1500},
		{ID: 4, Name: "Silk Top", Category: "women", SubCategory: "tops", Price: 700},
		{ID: 5, Name: "Boys Tee", Category: "kids", SubCategory: "tshirts", Price: 250},
		{ID: 6, Name: "Parka", Category: "kids", SubCategory: "winter", Price: 1800},
		{ID: 7, Name: "Frill Frock", Category: "kids", SubCategory: "girls", Price: 600},
		{ID: 8, Name: "Party Gown", Category: "kids", SubCategory: "party", Price: 950},
		{ID: 9, Name: "Chrono X", Category: "watches", SubCategory: "luxury", Price: 15000},
		{ID: 10, Name: "Pulse Band", Category: "watches", SubCategory: "smart", Price: 4000},
		{ID: 11, Name: "Field Analog", Category: "watches", SubCategory: "analog", Price: 2500},
		{ID: 12, Name: "Casual Low", Category: "shoes", SubCategory: "casual", Price: 1200},
		{ID: 13, Name: "Formal Derby", Category: "shoes", SubCategory: "formal", Price: 3200},
		{ID: 14, Name: "Beach Sandal", Category: "sandals", Price: 450},
	}
}

func ids(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestMenView(t *testing.T) {
	ps := storefront()

	assert.Equal(t, []int{1, 2}, ids(session.MenView(ps, "All")))
	assert.Equal(t, []int{1}, ids(session.MenView(ps, "T-Shirts")))
	assert.Empty(t, session.MenView(ps, "Hats"))
}

func TestWomenView(t *testing.T) {
	ps := storefront()

	assert.Equal(t, []int{3, 4}, ids(session.WomenView(ps, "All")))
	// stored token casing differs from the filter token
	assert.Equal(t, []int{3}, ids(session.WomenView(ps, "Dress")))
	assert.Equal(t, []int{4}, ids(session.WomenView(ps, "Top")))
}

func TestKidsViews(t *testing.T) {
	ps := storefront()

	t.Run("BoysAndGirlsStaySeparated", func(t *testing.T) {
		assert.Equal(t, []int{5}, ids(session.KidsBoysView(ps, "all")))
		assert.Equal(t, []int{7}, ids(session.KidsGirlsView(ps, "all")))
	})

	t.Run("WinterOnlyAffectsBoys", func(t *testing.T) {
		assert.Equal(t, []int{6}, ids(session.KidsBoysView(ps, "winter")))
		assert.Empty(t, session.KidsGirlsView(ps, "winter"))
	})

	t.Run("PartyOnlyAffectsGirls", func(t *testing.T) {
		assert.Equal(t, []int{8}, ids(session.KidsGirlsView(ps, "party")))
		assert.Empty(t, session.KidsBoysView(ps, "party"))
	})
}

func TestWatchesView(t *testing.T) {
	ps := storefront()

	t.Run("DefaultStateShowsAll", func(t *testing.T) {
		st := session.ViewState{Type: "All", Price: 20000, Sort: domain.SortNone}
		assert.Equal(t, []int{9, 10, 11}, ids(session.WatchesView(ps, st)))
	})

	t.Run("TypeBadgeMatchesSubCategory", func(t *testing.T) {
		st := session.ViewState{Type: "Smart Watches", Price: 20000}
		assert.Equal(t, []int{10}, ids(session.WatchesView(ps, st)))
	})

	t.Run("PriceCeilingIsInclusive", func(t *testing.T) {
		st := session.ViewState{Type: "All", Price: 4000}
		assert.Equal(t, []int{10, 11}, ids(session.WatchesView(ps, st)))
	})

	t.Run("SortOrdersByPrice", func(t *testing.T) {
		st := session.ViewState{Type: "All", Price: 20000, Sort: domain.SortPriceAsc}
		assert.Equal(t, []int{11, 10, 9}, ids(session.WatchesView(ps, st)))

		st.Sort = domain.SortPriceDesc
		assert.Equal(t, []int{9, 10, 11}, ids(session.WatchesView(ps, st)))
	})
}

func TestShoesView(t *testing.T) {
	ps := storefront()

	t.Run("TypeBadgeMatchesName", func(t *testing.T) {
		st := session.ViewState{Type: "Formal", Price: 5000}
		assert.Equal(t, []int{13}, ids(session.ShoesView(ps, st)))
	})

	t.Run("SandalsSectionIgnoresFilters", func(t *testing.T) {
		assert.Equal(t, []int{14}, ids(session.SandalsView(ps)))
	})
}

func TestSearchView(t *testing.T) {
	ps := storefront()

	t.Run("NoInputMeansNoResults", func(t *testing.T) {
		assert.Empty(t, session.SearchView(ps, "", "all"))
		assert.Empty(t, session.SearchView(ps, "   ", "all"))
	})

	t.Run("CategoryAloneSelects", func(t *testing.T) {
		assert.Equal(t, []int{9, 10, 11}, ids(session.SearchView(ps, "", "watches")))
	})

	t.Run("QueryMatchesName", func(t *testing.T) {
		assert.Equal(t, []int{1, 5}, ids(session.SearchView(ps, "tee", "all")))
	})

	t.Run("QueryAndCategoryCompose", func(t *testing.T) {
		assert.Equal(t, []int{5}, ids(session.SearchView(ps, "tee", "kids")))
	})
}

func TestAdminListView(t *testing.T) {
	ps := storefront()

	assert.Len(t, session.AdminListView(ps, "", ""), len(ps))
	assert.Equal(t, []int{9}, ids(session.AdminListView(ps, "chrono", "")))
	assert.Equal(t, []int{1, 2}, ids(session.AdminListView(ps, "", "men")))
	assert.Empty(t, session.AdminListView(ps, "chrono", "shoes"))
}

func TestCategoriesOf(t *testing.T) {
	got := session.CategoriesOf(storefront())
	assert.Equal(t,
		[]string{"men", "women", "kids", "watches", "shoes", "sandals"}, got)
}

func TestRelatedView(t *testing.T) {
	ps := storefront()
	ps = append(ps,
		domain.Product{ID: 20, Name: "Crew Tee II", Category: "men", SubCategory: "tshirts"},
		domain.Product{ID: 21, Name: "Crew Tee III", Category: "men", SubCategory: "tshirts"},
	)

	t.Run("SameCategoryAndSubCategoryExcludingSelf", func(t *testing.T) {
		got, err := session.RelatedView(ps, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{20, 21}, ids(got))
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := session.RelatedView(ps, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("CappedAtLimit", func(t *testing.T) {
		many := []domain.Product{
			{ID: 1, Name: "Crew Tee", Category: "men", SubCategory: "tshirts"},
		}
		for i := 2; i <= 12; i++ {
			many = append(many, domain.Product{
				ID: i, Category: "men", SubCategory: "tshirts",
			})
		}

		got, err := session.RelatedView(many, 1)
		require.NoError(t, err)
		assert.Len(t, got, session.RelatedLimit)
		assert.NotContains(t, ids(got), 1)
	})
}

func TestAlsoBoughtView(t *testing.T) {
	t.Run("SameCategoryExcludingSelf", func(t *testing.T) {
		ps := storefront()
		got, err := session.AlsoBoughtView(ps, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{2}, ids(got))
	})

	t.Run("IgnoresSubCategory", func(t *testing.T) {
		ps := storefront()
		got, err := session.AlsoBoughtView(ps, 9)
		require.NoError(t, err)
		// every watch regardless of subcategory
		assert.ElementsMatch(t, []int{10, 11}, ids(got))
	})

	t.Run("CappedAtLimit", func(t *testing.T) {
		var many []domain.Product
		for i := 1; i <= 12; i++ {
			many = append(many, domain.Product{
				ID: i, Category: "shoes", SubCategory: fmt.Sprintf("sub%d", i),
			})
		}

		got, err := session.AlsoBoughtView(many, 1)
		require.NoError(t, err)
		assert.Len(t, got, session.RelatedLimit)
		assert.NotContains(t, ids(got), 1)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := session.AlsoBoughtView(storefront(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
