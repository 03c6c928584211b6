package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrUnauthorizedOperator = errors.New("operator not authorized")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrVehicleUnavailable   = errors.New("vehicle unavailable")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrInvalidProposedPrice = errors.New("invalid proposed price")
	ErrProposalTerminal     = errors.New("proposal already in a terminal status")
)

// CreateProposalCommand is the admission request for a new proposal.
//
// SalespersonID is optional: proposals may be created directly by the
// customer from the showroom. Status may be draft or sent; anything else
// falls back to draft. CreatedAt defaults to now when unset.
type CreateProposalCommand struct {
	CustomerID      string
	SalespersonID   string
	ConfigurationID string
	ProposedPrice   decimal.Decimal
	Status          entities.ProposalStatus
	CustomerNotes   string
	InternalNotes   string
	CreatedAt       *time.Time
	ExpiresAt       *time.Time
}

// IProposalUseCase exposes proposal admission and lifecycle operations.
type IProposalUseCase interface {
	CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Proposal, error)
	ListBySalespersonID(ctx context.Context, salespersonID string) ([]entities.Proposal, error)
	Accept(ctx context.Context, id string) (entities.Proposal, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
	Cancel(ctx context.Context, id string) (entities.Proposal, error)
	Expire(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo            interfaces.IProposalRepository
	customerRepo    interfaces.ICustomerRepository
	salespersonRepo interfaces.ISalespersonRepository
	configRepo      interfaces.IConfigurationRepository
	vehicleRepo     interfaces.IVehicleRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	customerRepo interfaces.ICustomerRepository,
	salespersonRepo interfaces.ISalespersonRepository,
	configRepo interfaces.IConfigurationRepository,
	vehicleRepo interfaces.IVehicleRepository,
) *ProposalUseCase {
	return &ProposalUseCase{
		repo:            repo,
		customerRepo:    customerRepo,
		salespersonRepo: salespersonRepo,
		configRepo:      configRepo,
		vehicleRepo:     vehicleRepo,
	}
}

// CreateProposal runs the ordered admission checks and persists the
// proposal only when every check passed. First failure wins; nothing is
// written before the final Create, so a rejection has zero side effects.
func (u *ProposalUseCase) CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Proposal{}, ErrCustomerNotFound
	}
	if cmd.ProposedPrice.IsNegative() {
		return entities.Proposal{}, ErrInvalidProposedPrice
	}

	// Check 1: the customer must exist.
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if customer.ID == "" {
		return entities.Proposal{}, ErrCustomerNotFound
	}

	// Check 2: a named salesperson must exist and be active. No
	// salesperson at all is fine.
	salespersonID := strings.TrimSpace(cmd.SalespersonID)
	if salespersonID != "" {
		operator, err := u.salespersonRepo.GetByID(ctx, salespersonID)
		if err != nil {
			return entities.Proposal{}, err
		}
		if operator.ID == "" || !operator.Active {
			return entities.Proposal{}, ErrUnauthorizedOperator
		}
	}

	// Check 3: the configuration must exist and belong to the customer.
	cfg, err := u.configRepo.GetByID(ctx, strings.TrimSpace(cmd.ConfigurationID))
	if err != nil {
		return entities.Proposal{}, err
	}
	if cfg.ID == "" || cfg.CustomerID != customer.ID {
		return entities.Proposal{}, ErrInvalidConfiguration
	}

	// Check 4: the configured vehicle must still be sellable.
	vehicle, err := u.vehicleRepo.GetByID(ctx, cfg.VehicleID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if vehicle.ID == "" || !vehicle.Sellable() {
		return entities.Proposal{}, ErrVehicleUnavailable
	}

	status := cmd.Status
	if status != entities.ProposalStatusDraft && status != entities.ProposalStatusSent {
		status = entities.ProposalStatusDraft
	}
	createdAt := time.Now().UTC()
	if cmd.CreatedAt != nil {
		createdAt = cmd.CreatedAt.UTC()
	}

	p := entities.Proposal{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		SalespersonID:   salespersonID,
		ConfigurationID: cfg.ID,
		ProposedPrice:   cmd.ProposedPrice,
		Status:          status,
		CustomerNotes:   cmd.CustomerNotes,
		InternalNotes:   cmd.InternalNotes,
		CreatedAt:       createdAt,
		ExpiresAt:       cmd.ExpiresAt,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Proposal, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *ProposalUseCase) ListBySalespersonID(ctx context.Context, salespersonID string) ([]entities.Proposal, error) {
	salespersonID = strings.TrimSpace(salespersonID)
	if salespersonID == "" {
		return nil, ErrUnauthorizedOperator
	}
	return u.repo.ListBySalespersonID(ctx, salespersonID)
}

func (u *ProposalUseCase) Accept(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusAccepted)
}

func (u *ProposalUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusRejected)
}

func (u *ProposalUseCase) Cancel(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusCancelled)
}

func (u *ProposalUseCase) Expire(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusExpired)
}

func (u *ProposalUseCase) transition(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.Status.Terminal() {
		return entities.Proposal{}, ErrProposalTerminal
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}
