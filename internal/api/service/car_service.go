package service

import (
	"context"
	"time"
	"whlin31/CarHub/internal/api/models"
	"whlin31/CarHub/internal/api/repository"
	"whlin31/CarHub/internal/validator"

	"github.com/google/uuid"
)

// CarService defines the business logic for car listings. Every operation is
// scoped to the resolved identity passed as userID; no call can observe or
// touch another user's listings.
type CarService interface {
	Create(ctx context.Context, userID string, req *models.CreateCarRequest) (*models.Car, error)
	List(ctx context.Context, userID string) ([]models.Car, error)
	GetByID(ctx context.Context, userID, id string) (*models.Car, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateCarRequest) (*models.Car, error)
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, keyword string) ([]models.Car, error)
}

type carService struct {
	carRepo repository.CarRepository
}

// NewCarService creates a new CarService.
func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

// Create persists a new listing owned by userID.
func (s *carService) Create(ctx context.Context, userID string, req *models.CreateCarRequest) (*models.Car, error) {
	if err := validator.GetValidator().StructCtx(ctx, req.Tags); err != nil {
		return nil, ErrInvalidTags
	}
	if len(req.Images) > models.MaxCarImages {
		return nil, ErrTooManyImages
	}

	now := time.Now().UTC()
	car := &models.Car{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      models.ImageList(req.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if car.Images == nil {
		car.Images = models.ImageList{}
	}

	if err := s.carRepo.CreateCar(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// List returns all listings owned by userID.
func (s *carService) List(ctx context.Context, userID string) ([]models.Car, error) {
	return s.carRepo.ListCars(ctx, userID)
}

// GetByID returns a single owned listing. A listing that exists but belongs
// to someone else yields the same ErrCarNotFound as a missing one.
func (s *carService) GetByID(ctx context.Context, userID, id string) (*models.Car, error) {
	car, err := s.carRepo.GetCarByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

// Update overwrites the supplied fields of an owned listing and bumps its
// modification timestamp. Omitted fields keep their prior value. Concurrent
// updates to the same listing are last-write-wins.
func (s *carService) Update(ctx context.Context, userID, id string, req *models.UpdateCarRequest) (*models.Car, error) {
	if req.Images != nil && len(*req.Images) > models.MaxCarImages {
		return nil, ErrTooManyImages
	}
	if req.Tags != nil {
		if err := validator.GetValidator().StructCtx(ctx, *req.Tags); err != nil {
			return nil, ErrInvalidTags
		}
	}

	car, err := s.carRepo.GetCarByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}

	if req.Title != nil && *req.Title != "" {
		car.Title = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		car.Description = *req.Description
	}
	if req.Tags != nil {
		car.Tags = *req.Tags
	}
	if req.Images != nil {
		car.Images = models.ImageList(*req.Images)
		if car.Images == nil {
			car.Images = models.ImageList{}
		}
	}
	car.UpdatedAt = time.Now().UTC()

	ok, err := s.carRepo.UpdateCar(ctx, car)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The row vanished between the read and the write.
		return nil, ErrCarNotFound
	}
	return car, nil
}

// Delete removes an owned listing. Deleting the same id twice reports
// ErrCarNotFound the second time.
func (s *carService) Delete(ctx context.Context, userID, id string) error {
	ok, err := s.carRepo.DeleteCar(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCarNotFound
	}
	return nil
}

// Search returns the owner's listings matching keyword case-insensitively in
// title, description or any tag field. An empty keyword matches everything.
func (s *carService) Search(ctx context.Context, userID, keyword string) ([]models.Car, error) {
	return s.carRepo.SearchCars(ctx, userID, keyword)
}
