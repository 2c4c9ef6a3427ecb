package reviews

import (
	"context"
	"errors"
	"fmt"

	"unilocal/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        INSERT INTO reviews (place_id, author_id, author_name, body, score)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, reply
    `
	err := r.db.QueryRow(ctx, query,
		review.PlaceID,
		review.AuthorID,
		review.AuthorName,
		review.Body,
		review.Score,
	).Scan(&review.ID, &review.CreatedAt, &review.Reply)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, place_id, author_id, author_name, body, score, created_at, reply
        FROM reviews
        WHERE id = $1
    `
	var review Review
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID,
		&review.PlaceID,
		&review.AuthorID,
		&review.AuthorName,
		&review.Body,
		&review.Score,
		&review.CreatedAt,
		&review.Reply,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

// ListByPlace returns every review of a place, newest first.
func (r *Repository) ListByPlace(ctx context.Context, placeID int64) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, place_id, author_id, author_name, body, score, created_at, reply
        FROM reviews
        WHERE place_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.PlaceID,
			&review.AuthorID,
			&review.AuthorName,
			&review.Body,
			&review.Score,
			&review.CreatedAt,
			&review.Reply,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

// SetReply stores the reply only while the review has none.
func (r *Repository) SetReply(ctx context.Context, reviewID int64, reply string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `UPDATE reviews SET reply = $1 WHERE id = $2 AND reply = ''`, reply, reviewID)
	if err != nil {
		return fmt.Errorf("set reply: %w", err)
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, reviewID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("set reply: %w", err)
	}
	if !exists {
		return ErrReviewNotFound
	}
	return ErrReplyAlreadySet
}
