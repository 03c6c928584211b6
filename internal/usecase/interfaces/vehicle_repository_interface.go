package interfaces

import (
	"context"

	"autoflow/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// ListSellable returns only vehicles with status "available" and
// PublicVisible set, the base set of every showroom query.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListSellable(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// IOptionalAccessoryRepository abstracts DynamoDB persistence for the
// optional-accessory catalog.
type IOptionalAccessoryRepository interface {
	Create(ctx context.Context, o entities.OptionalAccessory) (entities.OptionalAccessory, error)
	GetByID(ctx context.Context, id string) (entities.OptionalAccessory, error)
	List(ctx context.Context) ([]entities.OptionalAccessory, error)
	Delete(ctx context.Context, id string) error
}
