package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystore/catalog/internal/core/domain"
)

func validDraft() domain.Product {
	return domain.Product{
		Name:        "Shirt",
		Price:       500,
		Category:    "men",
		Description: "desc",
		Image:       "http://x",
		Rating:      4,
	}
}

func TestProductValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, validDraft().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*domain.Product)
		field  string
	}{
		{"BlankName", func(p *domain.Product) { p.Name = "  " }, "name"},
		{"ZeroPrice", func(p *domain.Product) { p.Price = 0 }, "price"},
		{"NegativePrice", func(p *domain.Product) { p.Price = -5 }, "price"},
		{"UnknownCategory", func(p *domain.Product) { p.Category = "toys" }, "category"},
		{"BlankDescription", func(p *domain.Product) { p.Description = "" }, "description"},
		{"BlankImage", func(p *domain.Product) { p.Image = "" }, "image"},
		{"RatingTooHigh", func(p *domain.Product) { p.Rating = 5.5 }, "rating"},
		{"RatingNegative", func(p *domain.Product) { p.Rating = -1 }, "rating"},
		{"NegativeReviews", func(p *domain.Product) { p.Reviews = -1 }, "reviews"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validDraft()
			tc.mutate(&p)

			err := p.Validate()
			require.Error(t, err)

			var ve domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Field(tc.field))
		})
	}

	t.Run("CollectsAllFields", func(t *testing.T) {
		err := domain.Product{}.Validate()

		var ve domain.ValidationError
		require.ErrorAs(t, err, &ve)
		for _, f := range []string{"name", "price", "category", "description", "image"} {
			assert.NotEmpty(t, ve.Field(f), f)
		}
	})
}

func TestProductNormalize(t *testing.T) {
	t.Run("PrunesBlankImages", func(t *testing.T) {
		p := validDraft()
		p.Images = []string{"http://a", "  ", "", "http://b"}

		got := p.Normalize()
		assert.Equal(t, []string{"http://a", "http://b"}, got.Images)
	})

	t.Run("TrimsSizesKeepsDuplicates", func(t *testing.T) {
		p := validDraft()
		p.Sizes = []string{" M ", "", "L", "M"}

		got := p.Normalize()
		assert.Equal(t, []string{"M", "L", "M"}, got.Sizes)
	})

	t.Run("BlankSubCategoryCleared", func(t *testing.T) {
		p := validDraft()
		p.SubCategory = "   "
		assert.Empty(t, p.Normalize().SubCategory)
	})
}

func TestGallery(t *testing.T) {
	p := validDraft()
	assert.Equal(t, []string{"http://x"}, p.Gallery())

	p.Images = []string{"http://a", "http://b"}
	assert.Equal(t, p.Images, p.Gallery())
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, domain.NextID(nil))

	ps := []domain.Product{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, 8, domain.NextID(ps))
}

func TestParseProductRef(t *testing.T) {
	t.Run("NumericFirst", func(t *testing.T) {
		ref, err := domain.ParseProductRef("42")
		require.NoError(t, err)
		assert.Equal(t, 42, ref.ID)
		assert.False(t, ref.ByKey())
	})

	t.Run("StoreKeyFallback", func(t *testing.T) {
		key := uuid.New()
		ref, err := domain.ParseProductRef(key.String())
		require.NoError(t, err)
		assert.True(t, ref.ByKey())
		assert.Equal(t, key, ref.Key)
	})

	t.Run("Unresolvable", func(t *testing.T) {
		_, err := domain.ParseProductRef("not-an-id")
		assert.True(t, errors.Is(err, domain.ErrInvalidRef))
	})
}

func TestProductPatch(t *testing.T) {
	t.Run("ApplyOverlaysOnlySetFields", func(t *testing.T) {
		p := validDraft()
		p.ID = 9

		name := "Renamed"
		price := 750.0
		patch := domain.ProductPatch{Name: &name, Price: &price}

		got := patch.Apply(p)
		assert.Equal(t, 9, got.ID)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 750.0, got.Price)
		assert.Equal(t, p.Category, got.Category)
		assert.Equal(t, p.Description, got.Description)
	})

	t.Run("PatchOfCarriesEveryAllowListedField", func(t *testing.T) {
		p := validDraft()
		p.Images = []string{"http://a"}
		p.Sizes = []string{"M"}

		got := domain.PatchOf(p).Apply(domain.Product{ID: p.ID})
		want := p
		assert.Equal(t, want, got)
	})
}
