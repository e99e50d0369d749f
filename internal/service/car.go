package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type carService struct {
	store repository.Store
}

func NewCarService(store repository.Store) CarService {
	return &carService{store: store}
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) error {
	if car.Name == "" || car.CarNumber == "" || car.TechPassportNumber == "" {
		return fmt.Errorf("%w: name, car number and tech passport number are required", domain.ErrValidation)
	}
	if !domain.ValidFuelType(car.FuelType) {
		return fmt.Errorf("%w: unknown fuel type %q", domain.ErrValidation, car.FuelType)
	}
	// Operators register cars as ready to rent or in the shop; rented and
	// sold are reachable only through the rental lifecycle.
	if car.Status != domain.CarStatusActive && car.Status != domain.CarStatusUnrepaired {
		return fmt.Errorf("%w: new car status must be active or unrepaired", domain.ErrValidation)
	}
	if err := s.store.Cars().Create(ctx, car); err != nil {
		return err
	}
	logger.Info("Car created", "car_id", car.ID, "car_number", car.CarNumber)
	return nil
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.store.Cars().GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return car, nil
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	existing, err := s.store.Cars().GetByID(ctx, car.ID)
	if err != nil {
		return mapNotFound(err)
	}
	// Status changes go through Activate/Deactivate or the rental
	// lifecycle, never through a plain update.
	car.Status = existing.Status
	return s.store.Cars().Update(ctx, car)
}

func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	car, err := s.store.Cars().GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if car.Status == domain.CarStatusRented {
		return fmt.Errorf("%w: car %d is currently rented", domain.ErrInvalidState, id)
	}
	return s.store.Cars().SoftDelete(ctx, id)
}

func (s *carService) ActivateCar(ctx context.Context, id int32) error {
	car, err := s.store.Cars().GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if car.Status == domain.CarStatusActive {
		return fmt.Errorf("%w: car %d is already active", domain.ErrInvalidState, id)
	}
	if car.Status != domain.CarStatusUnrepaired {
		return fmt.Errorf("%w: only unrepaired cars can be activated", domain.ErrInvalidState)
	}
	return s.store.Cars().UpdateStatus(ctx, id, domain.CarStatusActive, true)
}

func (s *carService) DeactivateCar(ctx context.Context, id int32) error {
	car, err := s.store.Cars().GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if car.Status == domain.CarStatusUnrepaired {
		return fmt.Errorf("%w: car %d is already deactivated", domain.ErrInvalidState, id)
	}
	if car.Status != domain.CarStatusActive {
		return fmt.Errorf("%w: only active cars can be deactivated", domain.ErrInvalidState)
	}
	return s.store.Cars().UpdateStatus(ctx, id, domain.CarStatusUnrepaired, true)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.store.Cars().List(ctx)
}

func (s *carService) ListActiveCars(ctx context.Context) ([]domain.Car, error) {
	return s.store.Cars().ListByStatus(ctx, domain.CarStatusActive)
}

func (s *carService) ListUnrepairedCars(ctx context.Context) ([]domain.Car, error) {
	return s.store.Cars().ListByStatus(ctx, domain.CarStatusUnrepaired)
}
