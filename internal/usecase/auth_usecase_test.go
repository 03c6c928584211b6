package usecase

import (
	"context"
	"errors"
	"testing"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"
	mock_interfaces "autoflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.Login(ctx, "  ", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := uc.Login(ctx, "mario", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("customer login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		salespersonRepo := mock_interfaces.NewMockISalespersonRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)

		customerRepo.EXPECT().GetByUsername(gomock.Any(), "mario").Return(entities.Customer{
			ID:       "cust-1",
			Username: "mario",
			Password: hashPassword(t, "secret"),
			Active:   true,
		}, nil)
		tokens.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s interfaces.Session) error {
				if s.Token == "" {
					t.Fatalf("expected a generated token")
				}
				if s.UserID != "cust-1" || s.Role != string(entities.RoleCustomer) {
					t.Fatalf("unexpected session: %+v", s)
				}
				return nil
			})

		uc := NewAuthUseCase(customerRepo, salespersonRepo, tokens)
		s, err := uc.Login(ctx, " mario ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Username != "mario" {
			t.Fatalf("unexpected session username: %q", s.Username)
		}
	})

	t.Run("salesperson fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		salespersonRepo := mock_interfaces.NewMockISalespersonRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)

		customerRepo.EXPECT().GetByUsername(gomock.Any(), "luigi").Return(entities.Customer{}, nil)
		salespersonRepo.EXPECT().GetByUsername(gomock.Any(), "luigi").Return(entities.Salesperson{
			ID:       "sp-1",
			Username: "luigi",
			Password: hashPassword(t, "secret"),
			Active:   true,
		}, nil)
		tokens.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewAuthUseCase(customerRepo, salespersonRepo, tokens)
		s, err := uc.Login(ctx, "luigi", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Role != string(entities.RoleSalesperson) {
			t.Fatalf("expected salesperson role, got %q", s.Role)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		salespersonRepo := mock_interfaces.NewMockISalespersonRepository(ctrl)

		customerRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.Customer{}, nil)
		salespersonRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.Salesperson{}, nil)

		uc := NewAuthUseCase(customerRepo, salespersonRepo, nil)
		if _, err := uc.Login(ctx, "ghost", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)

		customerRepo.EXPECT().GetByUsername(gomock.Any(), "mario").Return(entities.Customer{
			ID:       "cust-1",
			Username: "mario",
			Password: hashPassword(t, "secret"),
			Active:   true,
		}, nil)

		uc := NewAuthUseCase(customerRepo, nil, nil)
		if _, err := uc.Login(ctx, "mario", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)

		customerRepo.EXPECT().GetByUsername(gomock.Any(), "mario").Return(entities.Customer{
			ID:       "cust-1",
			Username: "mario",
			Password: hashPassword(t, "secret"),
			Active:   false,
		}, nil)

		uc := NewAuthUseCase(customerRepo, nil, nil)
		if _, err := uc.Login(ctx, "mario", "secret"); !errors.Is(err, ErrAccountDisabled) {
			t.Fatalf("expected ErrAccountDisabled, got %v", err)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if err := uc.Logout(ctx, " "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("deletes the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		tokens.EXPECT().Delete(gomock.Any(), "tok-1").Return(nil)

		uc := NewAuthUseCase(nil, nil, tokens)
		if err := uc.Logout(ctx, "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		tokens.EXPECT().Get(gomock.Any(), "tok-404").Return(interfaces.Session{}, false, nil)

		uc := NewAuthUseCase(nil, nil, tokens)
		if _, err := uc.Authenticate(ctx, "tok-404"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("resolves the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		tokens.EXPECT().Get(gomock.Any(), "tok-1").Return(interfaces.Session{Token: "tok-1", UserID: "cust-1"}, true, nil)

		uc := NewAuthUseCase(nil, nil, tokens)
		s, err := uc.Authenticate(ctx, "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UserID != "cust-1" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}
