package places

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"unilocal/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

const placeColumns = `
	id, name, description, category, image_urls,
	latitude, longitude, phone_number,
	opening_time, closing_time,
	created_by, status, moderator_id, created_at, average_rating`

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(row scanner, p *Place) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.ImageURLs,
		&p.Latitude,
		&p.Longitude,
		&p.PhoneNumber,
		&p.OpeningTime,
		&p.ClosingTime,
		&p.CreatedBy,
		&p.Status,
		&p.ModeratorID,
		&p.CreatedAt,
		&p.AverageRating,
	)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Place, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Place{}
	for rows.Next() {
		var p Place
		if err := scanPlace(rows, &p); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a place in pending state with no moderator and a zero
// average. ID, Status and CreatedAt are filled from the database.
func (r *Repository) Create(ctx context.Context, place *Place) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	const query = `
	INSERT INTO places (
	  name, description, category, image_urls,
	  latitude, longitude, phone_number,
	  opening_time, closing_time, created_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, status, created_at, average_rating
	`

	imageURLs := place.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		place.Name,
		place.Description,
		string(place.Category),
		imageURLs,
		place.Latitude,
		place.Longitude,
		place.PhoneNumber,
		place.OpeningTime,
		place.ClosingTime,
		place.CreatedBy,
	).Scan(&place.ID, &place.Status, &place.CreatedAt, &place.AverageRating)
	if err != nil {
		return fmt.Errorf("create place: %w", err)
	}
	place.ImageURLs = imageURLs
	return nil
}

func (r *Repository) GetByID(ctx context.Context, placeID int64) (*Place, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	var p Place
	if err := scanPlace(r.db.QueryRow(ctx, query, placeID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("get place: %w", err)
	}
	return &p, nil
}

// GetByIDs returns the places that still exist among placeIDs, in the order
// the ids were given. Unknown ids are skipped.
func (r *Repository) GetByIDs(ctx context.Context, placeIDs []int64) ([]Place, error) {
	if len(placeIDs) == 0 {
		return []Place{}, nil
	}

	query := `SELECT ` + placeColumns + `
	FROM places
	WHERE id = ANY($1)
	ORDER BY array_position($1::bigint[], id)`

	return r.list(ctx, query, placeIDs)
}

func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]Place, error) {
	query := `SELECT ` + placeColumns + `
	FROM places
	WHERE status = $1
	ORDER BY created_at DESC`

	return r.list(ctx, query, string(status))
}

func (r *Repository) ListApprovedByModerator(ctx context.Context, moderatorID int64) ([]Place, error) {
	query := `SELECT ` + placeColumns + `
	FROM places
	WHERE status = 'approved' AND moderator_id = $1
	ORDER BY created_at DESC`

	return r.list(ctx, query, moderatorID)
}

func (r *Repository) ListByCreator(ctx context.Context, userID int64) ([]Place, error) {
	query := `SELECT ` + placeColumns + `
	FROM places
	WHERE created_by = $1
	ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

// Search matches approved places whose name contains filter.Query ignoring
// case, optionally restricted to one category.
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]Place, error) {
	where := []string{"status = 'approved'"}
	args := []any{}
	arg := 1

	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, fmt.Sprintf("strpos(lower(name), lower($%d)) > 0", arg))
		args = append(args, q)
		arg++
	}

	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", arg))
		args = append(args, string(*filter.Category))
		arg++
	}

	query := fmt.Sprintf(`SELECT %s
	FROM places
	WHERE %s
	ORDER BY created_at DESC`, placeColumns, strings.Join(where, " AND "))

	return r.list(ctx, query, args...)
}

// SetStatus records a moderation decision. The transition itself is checked
// by the caller.
func (r *Repository) SetStatus(ctx context.Context, placeID int64, status Status, moderatorID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	const query = `
	UPDATE places
	SET status = $1, moderator_id = $2
	WHERE id = $3
	`
	ct, err := r.db.Exec(ctx, query, string(status), moderatorID, placeID)
	if err != nil {
		return fmt.Errorf("set place status: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

func (r *Repository) UpdateAverageRating(ctx context.Context, placeID int64, average float64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `UPDATE places SET average_rating = $1 WHERE id = $2`, average, placeID)
	if err != nil {
		return fmt.Errorf("update average rating: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

// AddPhotoURL appends a photo URL to a place's image_urls array
func (r *Repository) AddPhotoURL(ctx context.Context, placeID int64, photoURL string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		UPDATE places
		SET image_urls = array_append(image_urls, $1)
		WHERE id = $2
	`
	ct, err := r.db.Exec(ctx, query, photoURL, placeID)
	if err != nil {
		return fmt.Errorf("failed to add photo URL: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

// Delete removes the place; its reviews go with it through the foreign key.
func (r *Repository) Delete(ctx context.Context, placeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, placeID)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPlaceNotFound
	}
	return nil
}
