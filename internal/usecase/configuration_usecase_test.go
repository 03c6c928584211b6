package usecase

import (
	"context"
	"errors"
	"testing"

	"autoflow/internal/domain/entities"
	mock_interfaces "autoflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestConfigurationUseCase_CreateConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-404").Return(entities.Customer{}, nil)

		uc := NewConfigurationUseCase(nil, customerRepo, nil, nil)
		_, err := uc.CreateConfiguration(ctx, CreateConfigurationCommand{CustomerID: "cust-404", VehicleID: "veh-1"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("vehicle not sellable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		hidden := sellableVehicle("veh-1")
		hidden.PublicVisible = false
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(hidden, nil)

		uc := NewConfigurationUseCase(nil, customerRepo, vehicleRepo, nil)
		_, err := uc.CreateConfiguration(ctx, CreateConfigurationCommand{CustomerID: "cust-1", VehicleID: "veh-1"})
		if !errors.Is(err, ErrVehicleUnavailable) {
			t.Fatalf("expected ErrVehicleUnavailable, got %v", err)
		}
	})

	t.Run("unknown optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		optionalRepo := mock_interfaces.NewMockIOptionalAccessoryRepository(ctrl)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)
		optionalRepo.EXPECT().GetByID(gomock.Any(), "opt-404").Return(entities.OptionalAccessory{}, nil)

		uc := NewConfigurationUseCase(nil, customerRepo, vehicleRepo, optionalRepo)
		_, err := uc.CreateConfiguration(ctx, CreateConfigurationCommand{
			CustomerID:  "cust-1",
			VehicleID:   "veh-1",
			OptionalIDs: []string{"opt-404"},
		})
		if !errors.Is(err, ErrOptionalNotFound) {
			t.Fatalf("expected ErrOptionalNotFound, got %v", err)
		}
	})

	t.Run("total is base price plus optionals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		optionalRepo := mock_interfaces.NewMockIOptionalAccessoryRepository(ctrl)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)
		optionalRepo.EXPECT().GetByID(gomock.Any(), "opt-1").Return(entities.OptionalAccessory{
			ID: "opt-1", Code: "NAV", Name: "Navigatore", Price: decimal.RequireFromString("1200.50"),
		}, nil)
		optionalRepo.EXPECT().GetByID(gomock.Any(), "opt-2").Return(entities.OptionalAccessory{
			ID: "opt-2", Code: "TETTO", Name: "Tetto panoramico", Price: decimal.NewFromInt(800),
		}, nil)

		want := decimal.RequireFromString("17000.50") // 15000 + 1200.50 + 800
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.Configuration) (entities.Configuration, error) {
				if !cfg.TotalPrice.Equal(want) {
					t.Fatalf("expected total %s, got %s", want, cfg.TotalPrice)
				}
				if !cfg.TotalPrice.Equal(cfg.ComputeTotal()) {
					t.Fatalf("stored total must match the recomputed one")
				}
				if len(cfg.Optionals) != 2 {
					t.Fatalf("expected 2 snapshotted optionals, got %d", len(cfg.Optionals))
				}
				return cfg, nil
			})

		uc := NewConfigurationUseCase(repo, customerRepo, vehicleRepo, optionalRepo)
		_, err := uc.CreateConfiguration(ctx, CreateConfigurationCommand{
			CustomerID:  "cust-1",
			VehicleID:   "veh-1",
			OptionalIDs: []string{"opt-1", "opt-2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConfigurationUseCase_CreateOptional(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil, nil, nil, nil)
		cases := []entities.OptionalAccessory{
			{Code: "", Name: "Navigatore"},
			{Code: "NAV", Name: " "},
			{Code: "NAV", Name: "Navigatore", Price: decimal.NewFromInt(-1)},
		}
		for _, o := range cases {
			if _, err := uc.CreateOptional(ctx, o); !errors.Is(err, ErrInvalidOptional) {
				t.Fatalf("expected ErrInvalidOptional for %+v, got %v", o, err)
			}
		}
	})

	t.Run("assigns an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		optionalRepo := mock_interfaces.NewMockIOptionalAccessoryRepository(ctrl)
		optionalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.OptionalAccessory) (entities.OptionalAccessory, error) {
				if o.ID == "" {
					t.Fatalf("expected a generated id")
				}
				return o, nil
			})

		uc := NewConfigurationUseCase(nil, nil, nil, optionalRepo)
		created, err := uc.CreateOptional(ctx, entities.OptionalAccessory{
			Code: " NAV ", Name: " Navigatore ", Price: decimal.NewFromInt(1200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Code != "NAV" || created.Name != "Navigatore" {
			t.Fatalf("expected trimmed fields, got %+v", created)
		}
	})
}

func TestShowroomUseCase_Search(t *testing.T) {
	ctx := context.Background()

	fleet := []entities.Vehicle{
		{ID: "veh-1", Make: "Fiat", Model: "Panda", BasePrice: decimal.NewFromInt(15000), Status: entities.VehicleStatusAvailable, PublicVisible: true},
		{ID: "veh-2", Make: "Fiat", Model: "500", BasePrice: decimal.NewFromInt(19000), Status: entities.VehicleStatusAvailable, PublicVisible: true},
		{ID: "veh-3", Make: "Alfa Romeo", Model: "Giulia", BasePrice: decimal.NewFromInt(45000), Status: entities.VehicleStatusAvailable, PublicVisible: true},
	}

	cases := []struct {
		name   string
		filter ShowroomFilter
		want   []string
	}{
		{"no filter", ShowroomFilter{}, []string{"veh-1", "veh-2", "veh-3"}},
		{"by make case insensitive", ShowroomFilter{Make: "fiat"}, []string{"veh-1", "veh-2"}},
		{"by model", ShowroomFilter{Model: "Giulia"}, []string{"veh-3"}},
		{"price window", ShowroomFilter{PriceMin: decimalPtr(16000), PriceMax: decimalPtr(20000)}, []string{"veh-2"}},
		{"no match", ShowroomFilter{Make: "Tesla"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
			vehicleRepo.EXPECT().ListSellable(gomock.Any()).Return(fleet, nil)

			uc := NewShowroomUseCase(vehicleRepo)
			got, err := uc.Search(ctx, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d vehicles, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %s at position %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestShowroomUseCase_PublicDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("hides non sellable vehicles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		sold := sellableVehicle("veh-1")
		sold.Status = entities.VehicleStatusSold
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sold, nil)

		uc := NewShowroomUseCase(vehicleRepo)
		if _, err := uc.PublicDetail(ctx, "veh-1"); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("returns sellable vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)

		uc := NewShowroomUseCase(vehicleRepo)
		v, err := uc.PublicDetail(ctx, "veh-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID != "veh-1" {
			t.Fatalf("unexpected vehicle: %+v", v)
		}
	})
}

func TestStatisticsUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
	invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

	customerRepo.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
	vehicleRepo.EXPECT().Count(gomock.Any()).Return(int64(4), nil)
	proposalRepo.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	invoiceRepo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	proposalRepo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(7)
	invoiceRepo.EXPECT().SumTotals(gomock.Any()).Return(decimal.NewFromInt(60000), nil)
	invoiceRepo.EXPECT().SumTotalsByYear(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(40000), nil)
	invoiceRepo.EXPECT().SumTotalsByYearMonth(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(5000), nil)
	invoiceRepo.EXPECT().CountUnpaid(gomock.Any()).Return(int64(2), nil)

	uc := NewStatisticsUseCase(customerRepo, vehicleRepo, proposalRepo, invoiceRepo)
	stats, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCustomers != 10 || stats.TotalInvoices != 3 || stats.UnpaidInvoices != 2 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if !stats.RevenueTotal.Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("unexpected revenue total: %s", stats.RevenueTotal)
	}
}
