package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateCollege is returned when a college with the same name exists.
var ErrDuplicateCollege = errors.New("college name already in use")

// College represents an institution that owns students and events.
// swagger:model College
type College struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CollegeRepository defines the interface for college storage.
type CollegeRepository interface {
	Create(ctx context.Context, college *College) error
	GetByID(ctx context.Context, id string) (*College, error)
	GetByName(ctx context.Context, name string) (*College, error)
	List(ctx context.Context) ([]*College, error)
	Update(ctx context.Context, college *College) error
	Delete(ctx context.Context, id string) error
}

// CollegeService defines the business logic for college management.
type CollegeService interface {
	CreateCollege(ctx context.Context, college *College) error
	GetCollege(ctx context.Context, id string) (*College, error)
	GetCollegeByName(ctx context.Context, name string) (*College, error)
	ListColleges(ctx context.Context) ([]*College, error)
	UpdateCollege(ctx context.Context, college *College) error
	DeleteCollege(ctx context.Context, id string) error
}
