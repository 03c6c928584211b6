package usecase

import (
	"context"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterSalespersonCommand creates a dealership operator account.
type RegisterSalespersonCommand struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	EmployeeRef string
}

// ISalespersonUseCase exposes back-office operator management.
type ISalespersonUseCase interface {
	Register(ctx context.Context, cmd RegisterSalespersonCommand) (entities.Salesperson, error)
	GetByID(ctx context.Context, id string) (entities.Salesperson, error)
	List(ctx context.Context) ([]entities.Salesperson, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Salesperson, error)
	Delete(ctx context.Context, id string) error
}

type SalespersonUseCase struct {
	repo interfaces.ISalespersonRepository
}

var _ ISalespersonUseCase = (*SalespersonUseCase)(nil)

func NewSalespersonUseCase(repo interfaces.ISalespersonRepository) *SalespersonUseCase {
	return &SalespersonUseCase{repo: repo}
}

func (u *SalespersonUseCase) Register(ctx context.Context, cmd RegisterSalespersonCommand) (entities.Salesperson, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return entities.Salesperson{}, ErrInvalidSalesperson
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Salesperson{}, err
	}
	if existing.ID != "" {
		return entities.Salesperson{}, ErrUsernameAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Salesperson{}, err
	}

	now := time.Now().UTC()
	s := entities.Salesperson{
		ID:          uuid.NewString(),
		Username:    username,
		Password:    string(hash),
		Active:      true,
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		EmployeeRef: cmd.EmployeeRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, s)
}

func (u *SalespersonUseCase) GetByID(ctx context.Context, id string) (entities.Salesperson, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Salesperson{}, ErrSalespersonNotFound
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Salesperson{}, err
	}
	if s.ID == "" {
		return entities.Salesperson{}, ErrSalespersonNotFound
	}
	return s, nil
}

func (u *SalespersonUseCase) List(ctx context.Context) ([]entities.Salesperson, error) {
	return u.repo.List(ctx)
}

// SetActive toggles whether the operator may create proposals. Existing
// sessions are not revoked here.
func (u *SalespersonUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Salesperson, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Salesperson{}, err
	}
	s.Active = active
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

func (u *SalespersonUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
