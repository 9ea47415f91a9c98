package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Categories is the fixed set of storefront categories.
// Values are stored lowercase and matched exactly.
var Categories = []string{
	"men", "women", "kids", "shoes", "sandals", "watches",
}

type Product struct {
	ID          int
	Name        string
	Price       float64
	Category    string
	SubCategory string
	Description string
	Image       string
	Images      []string
	Sizes       []string
	Rating      float64
	Reviews     int
}

// Validate checks the product fields and returns a [ValidationError]
// keyed by field name. A valid product yields nil.
//
// Violations are rejected, never clamped.
func (p Product) Validate() error {
	ve := ValidationError{}

	if strings.TrimSpace(p.Name) == "" {
		ve["name"] = "name is required"
	}
	if p.Price <= 0 {
		ve["price"] = "price must be greater than zero"
	}
	if !ValidCategory(p.Category) {
		ve["category"] = "unknown category"
	}
	if strings.TrimSpace(p.Description) == "" {
		ve["description"] = "description is required"
	}
	if strings.TrimSpace(p.Image) == "" {
		ve["image"] = "image is required"
	}
	if p.Rating < 0 || p.Rating > 5 {
		ve["rating"] = "rating must be between 0 and 5"
	}
	if p.Reviews < 0 {
		ve["reviews"] = "reviews must not be negative"
	}

	if len(ve) != 0 {
		return ve
	}
	return nil
}

// Normalize returns a copy with blank image entries pruned, sizes
// trimmed with blanks dropped, and a blank subcategory cleared.
//
// Duplicate sizes are preserved.
func (p Product) Normalize() Product {
	p.SubCategory = strings.TrimSpace(p.SubCategory)

	var images []string
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	p.Images = images

	var sizes []string
	for _, s := range p.Sizes {
		s = strings.TrimSpace(s)
		if s != "" {
			sizes = append(sizes, s)
		}
	}
	p.Sizes = sizes

	return p
}

// Gallery returns the ordered image URLs for display,
// falling back to the primary image.
func (p Product) Gallery() []string {
	if len(p.Images) != 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// NextID returns the identifier for a newly created product:
// max of the existing ids (0 when empty) plus one.
func NextID(ps []Product) int {
	maxID := 0
	for _, p := range ps {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// ProductRef addresses a stored product by either the numeric catalog
// id or the store-assigned record key. Two id assignment schemes
// coexist during the migration window, so both must resolve.
type ProductRef struct {
	ID  int
	Key uuid.UUID
}

func (r ProductRef) ByKey() bool {
	return r.Key != uuid.Nil
}

// ParseProductRef attempts the numeric catalog id first and falls back
// to the store-assigned key.
func ParseProductRef(s string) (ProductRef, error) {
	if id, err := strconv.Atoi(s); err == nil {
		return ProductRef{ID: id}, nil
	}
	if key, err := uuid.Parse(s); err == nil {
		return ProductRef{Key: key}, nil
	}
	return ProductRef{}, ErrInvalidRef
}

// ChangeOp enumerates catalog mutations published to the change feed.
type ChangeOp string

const (
	ChangeCreate ChangeOp = "create"
	ChangeUpdate ChangeOp = "update"
	ChangeDelete ChangeOp = "delete"
)

// ProductChange is a catalog mutation event. Delete events carry an
// id-only product snapshot.
type ProductChange struct {
	Op      ChangeOp
	Product Product
}
