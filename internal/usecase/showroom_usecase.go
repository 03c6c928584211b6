package usecase

import (
	"context"
	"strings"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ShowroomFilter narrows the public vehicle search. Blank strings and
// nil bounds are ignored.
type ShowroomFilter struct {
	Make     string
	Model    string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// IShowroomUseCase is the public, unauthenticated vehicle surface: only
// available and publicly visible vehicles ever leave it.
type IShowroomUseCase interface {
	Search(ctx context.Context, filter ShowroomFilter) ([]entities.Vehicle, error)
	PublicDetail(ctx context.Context, vehicleID string) (entities.Vehicle, error)
}

type ShowroomUseCase struct {
	vehicleRepo interfaces.IVehicleRepository
}

var _ IShowroomUseCase = (*ShowroomUseCase)(nil)

func NewShowroomUseCase(vehicleRepo interfaces.IVehicleRepository) *ShowroomUseCase {
	return &ShowroomUseCase{vehicleRepo: vehicleRepo}
}

func (u *ShowroomUseCase) Search(ctx context.Context, filter ShowroomFilter) ([]entities.Vehicle, error) {
	base, err := u.vehicleRepo.ListSellable(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Vehicle, 0, len(base))
	for _, v := range base {
		if !matchText(filter.Make, v.Make) || !matchText(filter.Model, v.Model) {
			continue
		}
		if filter.PriceMin != nil && v.BasePrice.LessThan(*filter.PriceMin) {
			continue
		}
		if filter.PriceMax != nil && v.BasePrice.GreaterThan(*filter.PriceMax) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// PublicDetail hides vehicles that were sold or withdrawn after a
// customer bookmarked them: it returns not-found instead of leaking the
// record.
func (u *ShowroomUseCase) PublicDetail(ctx context.Context, vehicleID string) (entities.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	v, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" || !v.Sellable() {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func matchText(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(filter, value)
}
