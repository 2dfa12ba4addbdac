package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"whlin31/CarHub/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var carTracer = otel.Tracer("repository.car")

// carColumns aliases the flat tag columns into the nested Tags struct.
const carColumns = `id, user_id, title, description,
	car_type AS "tags.car_type", company AS "tags.company", dealer AS "tags.dealer",
	images, created_at, updated_at`

// CarRepository defines the interface for car listing data operations. Every
// read and write carries the owner's user id; a row belonging to another user
// is indistinguishable from a missing one.
type CarRepository interface {
	CreateCar(ctx context.Context, car *models.Car) error
	ListCars(ctx context.Context, userID string) ([]models.Car, error)
	GetCarByID(ctx context.Context, userID, id string) (*models.Car, error)
	UpdateCar(ctx context.Context, car *models.Car) (bool, error)
	DeleteCar(ctx context.Context, userID, id string) (bool, error)
	SearchCars(ctx context.Context, userID, keyword string) ([]models.Car, error)
}

type sqliteCarRepository struct {
	db *sqlx.DB
}

// NewCarRepository creates a new SQLite-based CarRepository.
func NewCarRepository(db *sqlx.DB) CarRepository {
	return &sqliteCarRepository{db: db}
}

// CreateCar inserts a new listing row.
func (r *sqliteCarRepository) CreateCar(ctx context.Context, car *models.Car) error {
	ctx, span := carTracer.Start(ctx, "CarRepository.CreateCar")
	defer span.End()

	query := `INSERT INTO cars (id, user_id, title, description, car_type, company, dealer, images, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.UserID, car.Title, car.Description,
		car.Tags.CarType, car.Tags.Company, car.Tags.Dealer,
		car.Images, car.CreatedAt, car.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

// ListCars returns every listing owned by userID in insertion order.
func (r *sqliteCarRepository) ListCars(ctx context.Context, userID string) ([]models.Car, error) {
	ctx, span := carTracer.Start(ctx, "CarRepository.ListCars")
	defer span.End()

	cars := []models.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE user_id = ? ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &cars, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

// GetCarByID retrieves a listing scoped by (id, owner). A row that is missing
// or owned by someone else is reported as (nil, nil).
func (r *sqliteCarRepository) GetCarByID(ctx context.Context, userID, id string) (*models.Car, error) {
	ctx, span := carTracer.Start(ctx, "CarRepository.GetCarByID")
	defer span.End()

	var car models.Car
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = ? AND user_id = ?`
	err := r.db.GetContext(ctx, &car, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

// UpdateCar overwrites the mutable fields of the listing, scoped by
// (id, owner). Returns false when no row matched.
func (r *sqliteCarRepository) UpdateCar(ctx context.Context, car *models.Car) (bool, error) {
	ctx, span := carTracer.Start(ctx, "CarRepository.UpdateCar")
	defer span.End()

	query := `UPDATE cars SET title = ?, description = ?, car_type = ?, company = ?, dealer = ?, images = ?, updated_at = ?
	          WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		car.Title, car.Description,
		car.Tags.CarType, car.Tags.Company, car.Tags.Dealer,
		car.Images, car.UpdatedAt,
		car.ID, car.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to update car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// DeleteCar removes a listing scoped by (id, owner). Returns false when no
// row matched.
func (r *sqliteCarRepository) DeleteCar(ctx context.Context, userID, id string) (bool, error) {
	ctx, span := carTracer.Start(ctx, "CarRepository.DeleteCar")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// SearchCars returns the owner's listings whose title, description or any tag
// field contains keyword, case-insensitively. An empty keyword matches every
// owned listing.
func (r *sqliteCarRepository) SearchCars(ctx context.Context, userID, keyword string) ([]models.Car, error) {
	ctx, span := carTracer.Start(ctx, "CarRepository.SearchCars")
	defer span.End()

	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"
	cars := []models.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE user_id = ? AND (
		lower(title) LIKE ? ESCAPE '\' OR
		lower(description) LIKE ? ESCAPE '\' OR
		lower(car_type) LIKE ? ESCAPE '\' OR
		lower(company) LIKE ? ESCAPE '\' OR
		lower(dealer) LIKE ? ESCAPE '\'
	) ORDER BY created_at, id`
	err := r.db.SelectContext(ctx, &cars, query, userID, pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search cars: %w", err)
	}
	return cars, nil
}

// escapeLike neutralizes LIKE wildcards so the keyword matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
