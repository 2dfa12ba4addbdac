package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MaxCarImages caps the number of image URLs a listing may carry.
const MaxCarImages = 10

// CarTags groups the three tag fields every listing carries.
type CarTags struct {
	CarType string `db:"car_type" json:"car_type" validate:"required"`
	Company string `db:"company" json:"company" validate:"required"`
	Dealer  string `db:"dealer" json:"dealer" validate:"required"`
}

// ImageList is an ordered list of image URLs stored as a JSON TEXT column.
type ImageList []string

// Value implements driver.Valuer so sqlx can persist the list.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for reading the list back.
func (l *ImageList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported image list column type %T", src)
	}
}

// Car represents a car listing owned by exactly one user.
type Car struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Tags        CarTags   `json:"tags"`
	Images      ImageList `db:"images" json:"images"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateCarRequest defines the structure for creating a listing.
type CreateCarRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        CarTags  `json:"tags" binding:"required"`
	Images      []string `json:"images"`
}

// UpdateCarRequest carries the optional listing fields for a partial update.
// Nil means "leave unchanged"; a present empty Images slice clears the list.
type UpdateCarRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *CarTags  `json:"tags"`
	Images      *[]string `json:"images"`
}
