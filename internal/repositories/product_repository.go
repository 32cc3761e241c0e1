package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/utils"
)

// categoryTables is the only mapping from a Category to a physical table.
// Category values reach this map exclusively through models.ParseCategory, so
// no external string is ever interpolated into a query.
var categoryTables = map[models.Category]string{
	models.CategoryWatches:  "watches",
	models.CategoryClothes:  "clothes",
	models.CategoryBags:     "bags",
	models.CategoryPerfumes: "perfumes",
}

func tableFor(category models.Category) (string, error) {

	table, ok := categoryTables[category]
	if !ok {
		return "", fmt.Errorf("no table for category %q", category)
	}

	return table, nil
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, category models.Category, product *models.Product) error
	GetProductByCode(ctx context.Context, category models.Category, code string) (*models.Product, error)
	UpdateProduct(ctx context.Context, category models.Category, product *models.Product) error
	DeleteProduct(ctx context.Context, category models.Category, code string) error
	ListProducts(ctx context.Context, category models.Category, page, size int) ([]*models.Product, int, error)
	SetStock(ctx context.Context, category models.Category, code string, stock int) (*models.Product, error)
	ResolveCode(ctx context.Context, code string) (models.Category, *models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = "id, code, name, brand, description, gender, price, stock, image_url, created_at, updated_at"

func scanProduct(row interface{ Scan(dest ...any) error }, category models.Category) (*models.Product, error) {

	product := &models.Product{Category: category}

	err := row.Scan(&product.ID, &product.Code, &product.Name, &product.Brand, &product.Description,
		&product.Gender, &product.Price, &product.Stock, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, category models.Category, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (code, name, brand, description, gender, price, stock, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, product.Code, product.Name, product.Brand, product.Description,
		product.Gender, product.Price, product.Stock, product.ImageURL).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	product.Category = category

	return nil
}

func (r *productRepository) GetProductByCode(ctx context.Context, category models.Category, code string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE code = $1", productColumns, table)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, code), category)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get product by code: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, category models.Category, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s
		SET name = $1, brand = $2, description = $3, gender = $4, price = $5, stock = $6, image_url = $7, updated_at = NOW()
		WHERE code = $8
		RETURNING updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, product.Name, product.Brand, product.Description, product.Gender,
		product.Price, product.Stock, product.ImageURL, product.Code).Scan(&product.UpdatedAt)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, category models.Category, code string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE code = $1", table)

	result, err := r.DB.ExecContext(dbCtx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, category models.Category, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return nil, 0, err
	}

	var total int

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)

	if err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id LIMIT $1 OFFSET $2`, productColumns, table)

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {

		product, err := scanProduct(rows, category)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// SetStock applies an absolute stock value and returns the updated row.
func (r *productRepository) SetStock(ctx context.Context, category models.Category, code string, stock int) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	table, err := tableFor(category)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE %s SET stock = $1, updated_at = NOW() WHERE code = $2
		RETURNING %s`, table, productColumns)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, stock, code), category)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to set stock: %w", err)
	}

	return product, nil
}

// ResolveCode finds which category table actually holds the code, probing the
// whitelist in canonical order. Codes are assumed unique across categories;
// if that assumption is ever violated the first match wins.
func (r *productRepository) ResolveCode(ctx context.Context, code string) (models.Category, *models.Product, error) {

	for _, category := range models.Categories {

		product, err := r.GetProductByCode(ctx, category, code)
		if err != nil {

			if errors.Is(err, ErrNotFound) {
				continue
			}

			return "", nil, err
		}

		return category, product, nil
	}

	return "", nil, ErrNotFound
}
