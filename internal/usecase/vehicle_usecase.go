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

var ErrInvalidVehicle = errors.New("invalid vehicle payload")

// IVehicleUseCase exposes back-office vehicle management. The public
// surface goes through the showroom usecase instead.
type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	if v.Make == "" || v.Model == "" || v.BasePrice.IsNegative() {
		return entities.Vehicle{}, ErrInvalidVehicle
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = entities.VehicleStatusAvailable
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	v.CreatedAt = current.CreatedAt
	v.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, v)
}

func (u *VehicleUseCase) UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Vehicle{}, err
	}
	v, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(id), status)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
