package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sacvietnam/storefront/internal/model"
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Claim inserts s as PENDING. A key whose earlier attempt FAILED for the same
// action and product is taken over; any other existing key is left alone and
// Claim reports false.
func (r *SubmissionRepository) Claim(ctx context.Context, s *model.Submission) (bool, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO product_submissions (idempotency_key, action, product_id, status)
		VALUES ($1, $2, NULLIF($3, ''), 'PENDING')
		ON CONFLICT (idempotency_key) DO UPDATE
			SET status = 'PENDING', error_message = NULL
			WHERE product_submissions.status = 'FAILED'
				AND product_submissions.action = EXCLUDED.action
				AND product_submissions.product_id IS NOT DISTINCT FROM EXCLUDED.product_id
		RETURNING id, created_at`,
		s.IdempotencyKey, s.Action, s.ProductID,
	).Scan(&s.ID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.Status = model.SubmissionPending
	return true, nil
}

// Complete stores the outcome of a claimed submission.
func (r *SubmissionRepository) Complete(ctx context.Context, s *model.Submission) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE product_submissions
		SET product_id = COALESCE(NULLIF($2, ''), product_id), status = $3, error_message = NULLIF($4, '')
		WHERE idempotency_key = $1 AND status = 'PENDING'`,
		s.IdempotencyKey, s.ProductID, s.Status, s.ErrorMessage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete submission %q: no pending row", s.IdempotencyKey)
	}
	return nil
}

// FindByKey returns nil and no error when the key has not been used.
func (r *SubmissionRepository) FindByKey(ctx context.Context, key string) (*model.Submission, error) {
	s := &model.Submission{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, idempotency_key, action, COALESCE(product_id, ''), status, COALESCE(error_message, ''), created_at
		FROM product_submissions WHERE idempotency_key = $1`, key).
		Scan(&s.ID, &s.IdempotencyKey, &s.Action, &s.ProductID, &s.Status, &s.ErrorMessage, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByProduct pages through a product's submissions, newest first.
func (r *SubmissionRepository) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, idempotency_key, action, COALESCE(product_id, ''), status, COALESCE(error_message, ''), created_at
		FROM product_submissions WHERE product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.IdempotencyKey, &s.Action, &s.ProductID, &s.Status, &s.ErrorMessage, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM product_submissions WHERE product_id = $1`, productID).Scan(&n)
	return n, err
}
