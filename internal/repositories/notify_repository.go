package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/utils"
)

type NotifyRepository interface {
	CreateRequest(ctx context.Context, req *models.NotifyRequest) error
	ListPendingByCode(ctx context.Context, code string) ([]*models.NotifyRequest, error)
	MarkNotified(ctx context.Context, id int64) (bool, error)
	ListRequests(ctx context.Context, status models.NotifyStatus, page, size int) ([]*models.NotifyRequest, int, error)
}

type notifyRepository struct {
	DB *sql.DB
}

func NewNotifyRepo(db *sql.DB) NotifyRepository {
	return &notifyRepository{DB: db}
}

const notifyColumns = `id, product_id, product_code, product_name, product_brand, product_price,
		product_category, product_gender, customer_name, email, phone, status, notified_at, created_at`

func (r *notifyRepository) CreateRequest(ctx context.Context, req *models.NotifyRequest) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO notify_requests (product_id, product_code, product_name, product_brand, product_price,
			product_category, product_gender, customer_name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, req.ProductID, req.ProductCode, req.ProductName, req.ProductBrand,
		req.ProductPrice, req.ProductCategory, req.ProductGender, req.CustomerName, req.Email, req.Phone, req.Status).
		Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create notify request: %w", err)
	}

	return nil
}

// ListPendingByCode returns pending requests oldest first, so customers are
// notified in the order they asked.
func (r *notifyRepository) ListPendingByCode(ctx context.Context, code string) ([]*models.NotifyRequest, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM notify_requests
		WHERE product_code = $1 AND status = $2
		ORDER BY created_at ASC
	`, notifyColumns)

	rows, err := r.DB.QueryContext(dbCtx, query, code, models.NotifyStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending notify requests: %w", err)
	}

	defer rows.Close()

	return scanNotifyRequests(rows)
}

// MarkNotified flips a request from pending to notified. The condition on the
// current status makes the transition at-most-once: a second restock run, or a
// concurrent one, finds no pending row and reports false without error.
func (r *notifyRepository) MarkNotified(ctx context.Context, id int64) (bool, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE notify_requests SET status = $1, notified_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, models.NotifyStatusNotified, id, models.NotifyStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark notify request as notified: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get updated rows: %w", err)
	}

	return updatedRows > 0, nil
}

func (r *notifyRepository) ListRequests(ctx context.Context, status models.NotifyStatus, page, size int) ([]*models.NotifyRequest, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM notify_requests WHERE ($1 = '' OR status = $1)`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := fmt.Sprintf(`
		SELECT %s
		FROM notify_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, notifyColumns)

	rows, err := r.DB.QueryContext(dbCtx, query, status, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notify requests: %w", err)
	}

	defer rows.Close()

	requests, err := scanNotifyRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func scanNotifyRequests(rows *sql.Rows) ([]*models.NotifyRequest, error) {

	var requests []*models.NotifyRequest

	for rows.Next() {

		var req models.NotifyRequest

		err := rows.Scan(&req.ID, &req.ProductID, &req.ProductCode, &req.ProductName, &req.ProductBrand,
			&req.ProductPrice, &req.ProductCategory, &req.ProductGender, &req.CustomerName,
			&req.Email, &req.Phone, &req.Status, &req.NotifiedAt, &req.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notify request: %w", err)
		}

		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return requests, nil
}
