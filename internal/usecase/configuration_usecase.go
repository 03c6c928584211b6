package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrInvalidConfigID       = errors.New("invalid configuration id")
	ErrOptionalNotFound      = errors.New("optional accessory not found")
	ErrInvalidOptional       = errors.New("invalid optional accessory")
	ErrVehicleNotFound       = errors.New("vehicle not found")
)

// CreateConfigurationCommand selects a vehicle and a set of optional
// accessories for a customer.
type CreateConfigurationCommand struct {
	CustomerID  string
	VehicleID   string
	OptionalIDs []string
	Notes       string
}

// IConfigurationUseCase exposes configuration building and the optional
// accessory catalog.
type IConfigurationUseCase interface {
	CreateConfiguration(ctx context.Context, cmd CreateConfigurationCommand) (entities.Configuration, error)
	GetByID(ctx context.Context, id string) (entities.Configuration, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Configuration, error)
	Delete(ctx context.Context, id string) error

	CreateOptional(ctx context.Context, o entities.OptionalAccessory) (entities.OptionalAccessory, error)
	ListOptionals(ctx context.Context) ([]entities.OptionalAccessory, error)
}

type ConfigurationUseCase struct {
	repo         interfaces.IConfigurationRepository
	customerRepo interfaces.ICustomerRepository
	vehicleRepo  interfaces.IVehicleRepository
	optionalRepo interfaces.IOptionalAccessoryRepository
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(
	repo interfaces.IConfigurationRepository,
	customerRepo interfaces.ICustomerRepository,
	vehicleRepo interfaces.IVehicleRepository,
	optionalRepo interfaces.IOptionalAccessoryRepository,
) *ConfigurationUseCase {
	return &ConfigurationUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		optionalRepo: optionalRepo,
	}
}

// CreateConfiguration snapshots the vehicle base price and the selected
// optional prices; TotalPrice is computed here once and never
// recalculated later, so issued invoices stay stable even if the catalog
// changes.
func (u *ConfigurationUseCase) CreateConfiguration(ctx context.Context, cmd CreateConfigurationCommand) (entities.Configuration, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Configuration{}, ErrCustomerNotFound
	}
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Configuration{}, err
	}
	if customer.ID == "" {
		return entities.Configuration{}, ErrCustomerNotFound
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, strings.TrimSpace(cmd.VehicleID))
	if err != nil {
		return entities.Configuration{}, err
	}
	if vehicle.ID == "" {
		return entities.Configuration{}, ErrVehicleNotFound
	}
	if !vehicle.Sellable() {
		return entities.Configuration{}, ErrVehicleUnavailable
	}

	optionals := make([]entities.OptionalAccessory, 0, len(cmd.OptionalIDs))
	for _, optID := range cmd.OptionalIDs {
		opt, err := u.optionalRepo.GetByID(ctx, strings.TrimSpace(optID))
		if err != nil {
			return entities.Configuration{}, err
		}
		if opt.ID == "" {
			return entities.Configuration{}, ErrOptionalNotFound
		}
		optionals = append(optionals, opt)
	}

	now := time.Now().UTC()
	cfg := entities.Configuration{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		Optionals:  optionals,
		BasePrice:  vehicle.BasePrice,
		Notes:      cmd.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	cfg.TotalPrice = cfg.ComputeTotal()
	return u.repo.Create(ctx, cfg)
}

func (u *ConfigurationUseCase) GetByID(ctx context.Context, id string) (entities.Configuration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Configuration{}, ErrInvalidConfigID
	}
	cfg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Configuration{}, err
	}
	if cfg.ID == "" {
		return entities.Configuration{}, ErrConfigurationNotFound
	}
	return cfg, nil
}

func (u *ConfigurationUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Configuration, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *ConfigurationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *ConfigurationUseCase) CreateOptional(ctx context.Context, o entities.OptionalAccessory) (entities.OptionalAccessory, error) {
	o.Code = strings.TrimSpace(o.Code)
	o.Name = strings.TrimSpace(o.Name)
	if o.Code == "" || o.Name == "" || o.Price.IsNegative() {
		return entities.OptionalAccessory{}, ErrInvalidOptional
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return u.optionalRepo.Create(ctx, o)
}

func (u *ConfigurationUseCase) ListOptionals(ctx context.Context) ([]entities.OptionalAccessory, error) {
	return u.optionalRepo.List(ctx)
}
