package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCustomer      = errors.New("invalid customer payload")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrSalespersonNotFound  = errors.New("salesperson not found")
	ErrInvalidSalesperson   = errors.New("invalid salesperson payload")
)

// RegisterCustomerCommand creates a customer account.
type RegisterCustomerCommand struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	FiscalID  string
	BirthDate *time.Time
}

// ICustomerUseCase exposes customer account management.
type ICustomerUseCase interface {
	Register(ctx context.Context, cmd RegisterCustomerCommand) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Register(ctx context.Context, cmd RegisterCustomerCommand) (entities.Customer, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return entities.Customer{}, ErrUsernameAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  string(hash),
		Active:    true,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Address:   cmd.Address,
		FiscalID:  cmd.FiscalID,
		BirthDate: cmd.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	// Credentials never change through this path.
	c.Username = current.Username
	c.Password = current.Password
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
