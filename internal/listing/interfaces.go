package listing

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"car_finder/internal/domain"
)

type CarLister interface {
	ListCars(ctx context.Context) ([]domain.Car, error)
}

type Archive interface {
	SaveSnapshot(ctx context.Context, cars []domain.Car) error
}
