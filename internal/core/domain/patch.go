package domain

// ProductPatch carries the allow-listed fields of a partial update.
// Nil means "leave unchanged". The catalog id is never part of a
// patch: it is immutable across updates.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	SubCategory *string
	Description *string
	Image       *string
	Images      *[]string
	Sizes       *[]string
	Rating      *float64
	Reviews     *int
}

// PatchOf builds the full-field patch the admin console sends on save.
func PatchOf(p Product) ProductPatch {
	return ProductPatch{
		Name:        &p.Name,
		Price:       &p.Price,
		Category:    &p.Category,
		SubCategory: &p.SubCategory,
		Description: &p.Description,
		Image:       &p.Image,
		Images:      &p.Images,
		Sizes:       &p.Sizes,
		Rating:      &p.Rating,
		Reviews:     &p.Reviews,
	}
}

// Apply overlays the patch onto p and returns the result.
func (pt ProductPatch) Apply(p Product) Product {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.SubCategory != nil {
		p.SubCategory = *pt.SubCategory
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Image != nil {
		p.Image = *pt.Image
	}
	if pt.Images != nil {
		p.Images = *pt.Images
	}
	if pt.Sizes != nil {
		p.Sizes = *pt.Sizes
	}
	if pt.Rating != nil {
		p.Rating = *pt.Rating
	}
	if pt.Reviews != nil {
		p.Reviews = *pt.Reviews
	}
	return p
}
