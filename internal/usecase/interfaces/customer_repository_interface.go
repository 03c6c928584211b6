package interfaces

import (
	"context"

	"autoflow/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByUsername(ctx context.Context, username string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ISalespersonRepository abstracts DynamoDB persistence for Salesperson.
type ISalespersonRepository interface {
	Create(ctx context.Context, s entities.Salesperson) (entities.Salesperson, error)
	GetByID(ctx context.Context, id string) (entities.Salesperson, error)
	GetByUsername(ctx context.Context, username string) (entities.Salesperson, error)
	List(ctx context.Context) ([]entities.Salesperson, error)
	Update(ctx context.Context, s entities.Salesperson) (entities.Salesperson, error)
	Delete(ctx context.Context, id string) error
}
