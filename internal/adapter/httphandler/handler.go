package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
)

// GET    v1/products      (200 OK)
// POST   v1/products      (201 Created, 400 Bad request, 500 id conflict)
// PUT    v1/products/{id} (200 OK, 400 Bad request, 404 Not found)
// DELETE v1/products/{id} (200 OK, 400 Bad request, 404 Not found)

// requiredFields are checked in order on create; the first missing or
// blank one is reported.
var requiredFields = []string{
	"id", "name", "price", "category", "description", "image",
}

type ProductsHandler struct {
	reader port.CatalogReader
	writer port.CatalogWriter
}

func RegisterProducts(
	mux *http.ServeMux, reader port.CatalogReader, writer port.CatalogWriter,
) {
	h := ProductsHandler{reader, writer}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("POST /v1/products", h.PostProduct)
	mux.HandleFunc("PUT /v1/products/{id}", h.PutProduct)
	mux.HandleFunc("DELETE /v1/products/{id}", h.DeleteProduct)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.reader.ListProducts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{"failed to fetch products"})
		log.Error("failed to list products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, productsResponse{toWireList(ps)})
}

func (h ProductsHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostProduct"
	log := slog.With("op", op)

	var pl createPayload
	if err := json.NewDecoder(r.Body).Decode(&pl); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{"invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if field, ok := missingRequired(pl); !ok {
		writeJSON(w, http.StatusBadRequest,
			errorResponse{field + " is required"})
		return
	}

	created, err := h.writer.CreateProduct(r.Context(), pl.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeJSON(w, http.StatusInternalServerError,
				errorResponse{domain.ErrConflict.Error()})
			log.Warn("id conflict", "productID", *pl.ID)
			return
		}
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{"failed to create product"})
		log.Error("failed to create product", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, productResponse{toWire(created)})
	log.Info("created", "productID", created.ID)
}

func (h ProductsHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutProduct"
	log := slog.With("op", op)

	var pl updatePayload
	if err := json.NewDecoder(r.Body).Decode(&pl); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{"invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	ref, err := resolveRef(r.PathValue("id"), pl.ID, pl.Key)
	if err != nil {
		writeJSON(w, http.StatusBadRequest,
			errorResponse{domain.ErrInvalidRef.Error()})
		return
	}

	updated, err := h.writer.UpdateProduct(r.Context(), ref, pl.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound,
				errorResponse{domain.ErrNotFound.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{"failed to update product"})
		log.Error("failed to update product", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, productResponse{toWire(updated)})
	log.Info("updated", "productID", updated.ID)
}

func (h ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.DeleteProduct"
	log := slog.With("op", op)

	// The body is an optional fallback for id resolution,
	// parse errors are ignored.
	var pl deletePayload
	_ = json.NewDecoder(r.Body).Decode(&pl)

	ref, err := resolveRef(r.PathValue("id"), pl.ID, pl.Key)
	if err != nil {
		writeJSON(w, http.StatusBadRequest,
			errorResponse{domain.ErrInvalidRef.Error()})
		return
	}

	if err := h.writer.DeleteProduct(r.Context(), ref); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound,
				errorResponse{domain.ErrNotFound.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{"failed to delete product"})
		log.Error("failed to delete product", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	log.Info("deleted", "ref", ref)
}

// resolveRef tries the path segment first, then the payload id,
// then the payload store key.
func resolveRef(path string, bodyID *int, bodyKey string) (domain.ProductRef, error) {
	if ref, err := domain.ParseProductRef(path); err == nil {
		return ref, nil
	}
	if bodyID != nil {
		return domain.ProductRef{ID: *bodyID}, nil
	}
	if bodyKey != "" {
		return domain.ParseProductRef(bodyKey)
	}
	return domain.ProductRef{}, domain.ErrInvalidRef
}

func missingRequired(pl createPayload) (field string, ok bool) {
	blank := func(s *string) bool {
		return s == nil || strings.TrimSpace(*s) == ""
	}
	for _, f := range requiredFields {
		switch f {
		case "id":
			if pl.ID == nil {
				return f, false
			}
		case "name":
			if blank(pl.Name) {
				return f, false
			}
		case "price":
			if pl.Price == nil {
				return f, false
			}
		case "category":
			if blank(pl.Category) {
				return f, false
			}
		case "description":
			if blank(pl.Description) {
				return f, false
			}
		case "image":
			if blank(pl.Image) {
				return f, false
			}
		}
	}
	return "", true
}

func (pl createPayload) toDomain() domain.Product {
	p := domain.Product{
		ID:          *pl.ID,
		Name:        *pl.Name,
		Price:       *pl.Price,
		Category:    *pl.Category,
		Description: *pl.Description,
		Image:       *pl.Image,
		Images:      pl.Images,
		Sizes:       pl.Sizes,
	}
	if pl.SubCategory != nil {
		p.SubCategory = *pl.SubCategory
	}
	if pl.Rating != nil {
		p.Rating = *pl.Rating
	}
	if pl.Reviews != nil {
		p.Reviews = *pl.Reviews
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
