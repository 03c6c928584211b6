package usecase

import (
	"context"
	"errors"
	"strings"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrSessionNotFound    = errors.New("session not found")
)

// IAuthUseCase issues and resolves opaque session tokens.
//
// Tokens live in an ITokenStore; swapping the in-memory store for a
// durable one requires no caller changes.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (interfaces.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (interfaces.Session, error)
}

type AuthUseCase struct {
	customerRepo    interfaces.ICustomerRepository
	salespersonRepo interfaces.ISalespersonRepository
	tokens          interfaces.ITokenStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	customerRepo interfaces.ICustomerRepository,
	salespersonRepo interfaces.ISalespersonRepository,
	tokens interfaces.ITokenStore,
) *AuthUseCase {
	return &AuthUseCase{customerRepo: customerRepo, salespersonRepo: salespersonRepo, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (interfaces.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return interfaces.Session{}, ErrInvalidCredentials
	}

	var (
		userID string
		hash   string
		active bool
		role   entities.Role
	)

	customer, err := u.customerRepo.GetByUsername(ctx, username)
	if err != nil {
		return interfaces.Session{}, err
	}
	if customer.ID != "" {
		userID, hash, active, role = customer.ID, customer.Password, customer.Active, entities.RoleCustomer
	} else {
		operator, err := u.salespersonRepo.GetByUsername(ctx, username)
		if err != nil {
			return interfaces.Session{}, err
		}
		if operator.ID == "" {
			return interfaces.Session{}, ErrInvalidCredentials
		}
		userID, hash, active, role = operator.ID, operator.Password, operator.Active, entities.RoleSalesperson
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return interfaces.Session{}, ErrInvalidCredentials
	}
	if !active {
		return interfaces.Session{}, ErrAccountDisabled
	}

	s := interfaces.Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		Username: username,
		Role:     string(role),
	}
	if err := u.tokens.Put(ctx, s); err != nil {
		return interfaces.Session{}, err
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrSessionNotFound
	}
	return u.tokens.Delete(ctx, token)
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (interfaces.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.Session{}, ErrSessionNotFound
	}
	s, ok, err := u.tokens.Get(ctx, token)
	if err != nil {
		return interfaces.Session{}, err
	}
	if !ok {
		return interfaces.Session{}, ErrSessionNotFound
	}
	return s, nil
}
