package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
)

var _ port.ProductsRepository = (*ProductsRepository)(nil)

const productColumns = `
	id, name, price, category, sub_category,
	description, image, images, sizes, rating, reviews`

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT` + productColumns + `
		FROM products ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (
			id, name, price, category, sub_category,
			description, image, images, sizes, rating, reviews
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + productColumns + `;`

	imagesB, _ := json.Marshal(stringsOrEmpty(p.Images))
	sizesB, _ := json.Marshal(stringsOrEmpty(p.Sizes))

	row := r.sqldb.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Price, p.Category, nullString(p.SubCategory),
		p.Description, p.Image, string(imagesB), string(sizesB),
		p.Rating, p.Reviews,
	)

	created, err := scanProduct(row.Scan)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, fmt.Errorf(
				"%s: %w", op, domain.ErrConflict,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r ProductsRepository) UpdateProduct(
	ctx context.Context, ref domain.ProductRef, patch domain.ProductPatch,
) (domain.Product, error) {
	const op = "ProductsRepository.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	set, args := buildSet(patch)
	if len(set) == 0 {
		set = append(set, "updated_at = now()")
	}

	where, args := buildWhere(ref, args)
	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE %s RETURNING`+productColumns+`;`,
		strings.Join(set, ", "), where,
	)

	row := r.sqldb.QueryRowContext(ctx, query, args...)
	updated, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf(
				"%s: %w", op, domain.ErrNotFound,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, ref domain.ProductRef,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	where, args := buildWhere(ref, nil)
	query := fmt.Sprintf(
		`DELETE FROM products WHERE %s RETURNING id;`, where,
	)

	var id int
	err := r.sqldb.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// buildSet renders the allow-listed SET clauses. The catalog id is
// never part of the update body.
func buildSet(patch domain.ProductPatch) (set []string, args []any) {
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.SubCategory != nil {
		add("sub_category", nullString(*patch.SubCategory))
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Images != nil {
		b, _ := json.Marshal(stringsOrEmpty(*patch.Images))
		add("images", string(b))
	}
	if patch.Sizes != nil {
		b, _ := json.Marshal(stringsOrEmpty(*patch.Sizes))
		add("sizes", string(b))
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Reviews != nil {
		add("reviews", *patch.Reviews)
	}

	if len(set) != 0 {
		set = append(set, "updated_at = now()")
	}
	return set, args
}

func buildWhere(ref domain.ProductRef, args []any) (string, []any) {
	if ref.ByKey() {
		args = append(args, ref.Key)
		return fmt.Sprintf("record_key = $%d", len(args)), args
	}
	args = append(args, ref.ID)
	return fmt.Sprintf("id = $%d", len(args)), args
}

func scanProduct(scan func(...any) error) (domain.Product, error) {
	var (
		p      domain.Product
		subCat sql.NullString
		images string
		sizes  string
	)

	err := scan(
		&p.ID, &p.Name, &p.Price, &p.Category, &subCat,
		&p.Description, &p.Image, &images, &sizes, &p.Rating, &p.Reviews,
	)
	if err != nil {
		return domain.Product{}, err
	}

	p.SubCategory = subCat.String

	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(sizes), &p.Sizes); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func stringsOrEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
