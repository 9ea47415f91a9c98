package httphandler

import "github.com/mystore/catalog/internal/core/domain"

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory,omitempty"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}

// createPayload keeps required fields as pointers so absent and blank
// values can be told apart during the required-field check.
type createPayload struct {
	ID          *int     `json:"id"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	SubCategory *string  `json:"subCategory"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
}

// updatePayload carries the allow-listed fields of a partial update.
// The id is accepted only for fallback resolution, never rewritten.
type updatePayload struct {
	ID          *int      `json:"id"`
	Key         string    `json:"key"`
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	SubCategory *string   `json:"subCategory"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Sizes       *[]string `json:"sizes"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
}

type deletePayload struct {
	ID  *int   `json:"id"`
	Key string `json:"key"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

type productResponse struct {
	Product Product `json:"product"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toWire(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Description: p.Description,
		Image:       p.Image,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
	}
}

func toWireList(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toWire(p))
	}
	return out
}

func (pl updatePayload) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        pl.Name,
		Price:       pl.Price,
		Category:    pl.Category,
		SubCategory: pl.SubCategory,
		Description: pl.Description,
		Image:       pl.Image,
		Images:      pl.Images,
		Sizes:       pl.Sizes,
		Rating:      pl.Rating,
		Reviews:     pl.Reviews,
	}
}
