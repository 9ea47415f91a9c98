package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
)

var _ port.RemoteCatalog = (*Client)(nil)

// Client talks to the catalog service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type wireProduct struct {
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

// wirePatch carries the allow-listed update fields; the id rides along
// only for server-side fallback resolution.
type wirePatch struct {
	ID          int       `json:"id"`
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *string   `json:"category,omitempty"`
	SubCategory *string   `json:"subCategory,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Reviews     *int      `json:"reviews,omitempty"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.FetchProducts"

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/v1/products", nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", op, responseError(res))
	}

	var body struct {
		Products []wireProduct `json:"products"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(body.Products))
	for _, w := range body.Products {
		ps = append(ps, w.toDomain())
	}
	return ps, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) error {
	const op = "Client.CreateProduct"

	res, err := c.send(ctx, http.MethodPost, "/v1/products", toWireProduct(p))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s: %w", op, responseError(res))
	}
	return nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, id int, patch domain.ProductPatch,
) error {
	const op = "Client.UpdateProduct"

	path := fmt.Sprintf("/v1/products/%d", id)
	res, err := c.send(ctx, http.MethodPut, path, toWirePatch(id, patch))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w", op, responseError(res))
	}
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	const op = "Client.DeleteProduct"

	path := fmt.Sprintf("/v1/products/%d", id)
	res, err := c.send(ctx, http.MethodDelete, path, map[string]int{"id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w", op, responseError(res))
	}
	return nil
}

func (c *Client) send(
	ctx context.Context, method, path string, body any,
) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, bytes.NewReader(b),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// responseError extracts the service error message, mapping a 404 to
// [domain.ErrNotFound] so resolution failures surface to the admin UI.
func responseError(res *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = res.Status
	}

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	}
	return errors.New(msg)
}

func (w wireProduct) toDomain() domain.Product {
	return domain.Product{
		ID:          w.ID,
		Name:        w.Name,
		Price:       w.Price,
		Category:    w.Category,
		SubCategory: w.SubCategory,
		Description: w.Description,
		Image:       w.Image,
		Images:      w.Images,
		Sizes:       w.Sizes,
		Rating:      w.Rating,
		Reviews:     w.Reviews,
	}
}

func toWireProduct(p domain.Product) wireProduct {
	return wireProduct{
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

func toWirePatch(id int, patch domain.ProductPatch) wirePatch {
	return wirePatch{
		ID:          id,
		Name:        patch.Name,
		Price:       patch.Price,
		Category:    patch.Category,
		SubCategory: patch.SubCategory,
		Description: patch.Description,
		Image:       patch.Image,
		Images:      patch.Images,
		Sizes:       patch.Sizes,
		Rating:      patch.Rating,
		Reviews:     patch.Reviews,
	}
}
