package interfaces

import (
	"context"

	"autoflow/internal/domain/entities"
)

// IConfigurationRepository abstracts DynamoDB persistence for Configuration.
//
// Configurations are immutable once referenced by an issued invoice; the
// repository only exposes create/read/delete.
type IConfigurationRepository interface {
	Create(ctx context.Context, c entities.Configuration) (entities.Configuration, error)
	GetByID(ctx context.Context, id string) (entities.Configuration, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Configuration, error)
	Delete(ctx context.Context, id string) error
}
