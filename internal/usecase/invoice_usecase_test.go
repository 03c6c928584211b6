package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"
	mock_interfaces "autoflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestFormatInvoiceNumber(t *testing.T) {
	cases := []struct {
		year int
		seq  int
		want string
	}{
		{2025, 1, "AF-2025-001"},
		{2025, 42, "AF-2025-042"},
		{2026, 999, "AF-2026-999"},
		{2026, 1234, "AF-2026-1234"},
	}
	for _, tc := range cases {
		if got := FormatInvoiceNumber(tc.year, tc.seq); got != tc.want {
			t.Fatalf("FormatInvoiceNumber(%d, %d) = %q, want %q", tc.year, tc.seq, got, tc.want)
		}
	}
}

// Numbering must come from the counter, never from the lexicographic max
// of existing numbers: the three-digit padding keeps string order aligned
// with numeric order only up to 999.
func TestInvoiceNumberStringOrderBreaksPast999(t *testing.T) {
	lo := FormatInvoiceNumber(2026, 999)
	hi := FormatInvoiceNumber(2026, 1000)
	if !(hi < lo) {
		t.Fatalf("expected %q to sort before %q, a max-query would still be safe", hi, lo)
	}
}

type invoiceMocks struct {
	repo         *mock_interfaces.MockIInvoiceRepository
	proposalRepo *mock_interfaces.MockIProposalRepository
	customerRepo *mock_interfaces.MockICustomerRepository
	configRepo   *mock_interfaces.MockIConfigurationRepository
	vehicleRepo  *mock_interfaces.MockIVehicleRepository
	documentRepo *mock_interfaces.MockIDocumentRepository
	storage      *mock_interfaces.MockIFileStorage
	renderer     *mock_interfaces.MockIInvoiceRenderer
}

func newInvoiceUseCaseWithMocks(ctrl *gomock.Controller) (*InvoiceUseCase, invoiceMocks) {
	m := invoiceMocks{
		repo:         mock_interfaces.NewMockIInvoiceRepository(ctrl),
		proposalRepo: mock_interfaces.NewMockIProposalRepository(ctrl),
		customerRepo: mock_interfaces.NewMockICustomerRepository(ctrl),
		configRepo:   mock_interfaces.NewMockIConfigurationRepository(ctrl),
		vehicleRepo:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		documentRepo: mock_interfaces.NewMockIDocumentRepository(ctrl),
		storage:      mock_interfaces.NewMockIFileStorage(ctrl),
		renderer:     mock_interfaces.NewMockIInvoiceRenderer(ctrl),
	}
	uc := NewInvoiceUseCase(m.repo, m.proposalRepo, m.customerRepo, m.configRepo, m.vehicleRepo, m.documentRepo, m.storage, m.renderer)
	return uc, m
}

func acceptedProposal(id string) entities.Proposal {
	return entities.Proposal{
		ID:              id,
		CustomerID:      "cust-1",
		ConfigurationID: "cfg-1",
		ProposedPrice:   decimal.NewFromInt(20000),
		Status:          entities.ProposalStatusAccepted,
		CreatedAt:       time.Now().UTC(),
	}
}

// expectRenderPipeline wires the happy render-store-link tail shared by
// fresh issuance, resume and on-demand rendering.
func expectRenderPipeline(t *testing.T, m invoiceMocks, proposalID string) {
	t.Helper()
	m.customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", FirstName: "Mario", LastName: "Rossi"}, nil)
	m.configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(entities.Configuration{ID: "cfg-1", CustomerID: "cust-1", VehicleID: "veh-1"}, nil)
	m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4"), decimal.NewFromInt(20000), nil)
	m.storage.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, data []byte, fileName, folderKey string) (string, error) {
			if len(data) == 0 {
				t.Fatalf("expected rendered bytes")
			}
			return folderKey + "/" + fileName, nil
		})
	m.documentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.GeneratedDocument) (entities.GeneratedDocument, error) {
			if d.ID == "" || d.StoragePath == "" {
				t.Fatalf("incomplete document record: %+v", d)
			}
			return d, nil
		})
	m.repo.EXPECT().SetDocumentID(gomock.Any(), proposalID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id, documentID string) (entities.Invoice, error) {
			return entities.Invoice{ID: id, ProposalID: id, CustomerID: "cust-1", DocumentID: documentID}, nil
		})
	m.proposalRepo.EXPECT().UpdateStatus(gomock.Any(), proposalID, entities.ProposalStatusCompleted).
		Return(entities.Proposal{ID: proposalID, Status: entities.ProposalStatusCompleted}, nil)
}

func TestInvoiceUseCase_CreateFromProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("empty proposal id", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseWithMocks(gomock.NewController(t))
		_, err := uc.CreateFromProposal(ctx, "  ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-404").Return(entities.Proposal{}, nil)

		_, err := uc.CreateFromProposal(ctx, "prop-404")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("proposal not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)
		p := acceptedProposal("prop-1")
		p.Status = entities.ProposalStatusSent
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.CreateFromProposal(ctx, "prop-1")
		if !errors.Is(err, ErrProposalNotConfirmed) {
			t.Fatalf("expected ErrProposalNotConfirmed, got %v", err)
		}
	})

	t.Run("complete invoice already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{ID: "prop-1", Number: "AF-2025-004", DocumentID: "doc-1"}, nil)

		_, err := uc.CreateFromProposal(ctx, "prop-1")
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("fresh issuance allocates number and links document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		year := time.Now().UTC().Year()
		wantNumber := FormatInvoiceNumber(year, 7)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), year).Return(7, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.ID != "prop-1" || inv.ProposalID != "prop-1" {
					t.Fatalf("invoice key must be the proposal id, got %+v", inv)
				}
				if inv.Number != wantNumber {
					t.Fatalf("expected number %s, got %s", wantNumber, inv.Number)
				}
				if !inv.TotalAmount.Equal(decimal.NewFromInt(20000)) {
					t.Fatalf("expected total from proposed price, got %s", inv.TotalAmount)
				}
				return inv, nil
			})
		expectRenderPipeline(t, m, "prop-1")

		created, err := uc.CreateFromProposal(ctx, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.DocumentID == "" {
			t.Fatalf("expected a linked document id")
		}
	})

	t.Run("incomplete issuance resumes without a new number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		existing := entities.Invoice{
			ID:          "prop-1",
			Number:      "AF-2025-009",
			IssueDate:   time.Now().UTC(),
			CustomerID:  "cust-1",
			ProposalID:  "prop-1",
			TotalAmount: decimal.NewFromInt(20000),
		}
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(existing, nil)
		// No NextSequence and no Create expectation: resuming must not
		// touch the counter or write a second row.
		expectRenderPipeline(t, m, "prop-1")

		resumed, err := uc.CreateFromProposal(ctx, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resumed.DocumentID == "" {
			t.Fatalf("expected a linked document id")
		}
	})

	t.Run("concurrent issuance loser observes conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		year := time.Now().UTC().Year()
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), year).Return(8, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrInvoiceConflict)

		_, err := uc.CreateFromProposal(ctx, "prop-1")
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("rendering failure keeps the created row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		year := time.Now().UTC().Year()
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), year).Return(9, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil })
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(entities.Configuration{ID: "cfg-1", CustomerID: "cust-1", VehicleID: "veh-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, decimal.Zero, errors.New("font missing"))

		_, err := uc.CreateFromProposal(ctx, "prop-1")
		if !errors.Is(err, ErrRenderingFailed) {
			t.Fatalf("expected ErrRenderingFailed, got %v", err)
		}
	})

	t.Run("storage failure leaves document unlinked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		year := time.Now().UTC().Year()
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), year).Return(10, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil })
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(entities.Configuration{ID: "cfg-1", CustomerID: "cust-1", VehicleID: "veh-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(sellableVehicle("veh-1"), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("%PDF-1.4"), decimal.NewFromInt(20000), nil)
		m.storage.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.CreateFromProposal(ctx, "prop-1")
		if !errors.Is(err, ErrStorageFailed) {
			t.Fatalf("expected ErrStorageFailed, got %v", err)
		}
	})
}

func TestInvoiceUseCase_GetByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("empty number", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseWithMocks(gomock.NewController(t))
		_, err := uc.GetByNumber(ctx, "")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByNumber(gomock.Any(), "AF-2025-001").Return(entities.Invoice{ID: "prop-1", Number: "AF-2025-001"}, nil)

		inv, err := uc.GetByNumber(ctx, " AF-2025-001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Number != "AF-2025-001" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}

func TestInvoiceUseCase_GetInvoicePdf(t *testing.T) {
	ctx := context.Background()

	t.Run("stored document is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{ID: "prop-1", DocumentID: "doc-1"}, nil)
		m.documentRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.GeneratedDocument{
			ID:          "doc-1",
			FileName:    "fattura-AF-2025-001.pdf",
			StoragePath: "fatture/2025/01/fattura-AF-2025-001.pdf",
		}, nil)
		m.storage.EXPECT().Load(gomock.Any(), "fatture/2025/01/fattura-AF-2025-001.pdf").Return([]byte("%PDF-1.4"), nil)

		data, name, err := uc.GetInvoicePdf(ctx, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "fattura-AF-2025-001.pdf" || len(data) == 0 {
			t.Fatalf("unexpected document: name=%q len=%d", name, len(data))
		}
	})

	t.Run("missing document record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Invoice{ID: "prop-1", DocumentID: "doc-404"}, nil)
		m.documentRepo.EXPECT().GetByID(gomock.Any(), "doc-404").Return(entities.GeneratedDocument{}, nil)

		_, _, err := uc.GetInvoicePdf(ctx, "prop-1")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("unlinked invoice renders on demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCaseWithMocks(ctrl)

		unlinked := entities.Invoice{
			ID:          "prop-1",
			Number:      "AF-2025-002",
			IssueDate:   time.Now().UTC(),
			CustomerID:  "cust-1",
			ProposalID:  "prop-1",
			TotalAmount: decimal.NewFromInt(20000),
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unlinked, nil)
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(acceptedProposal("prop-1"), nil)
		expectRenderPipeline(t, m, "prop-1")
		m.documentRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.GeneratedDocument, error) {
				return entities.GeneratedDocument{ID: id, FileName: "fattura-AF-2025-002.pdf", StoragePath: "p"}, nil
			})
		m.storage.EXPECT().Load(gomock.Any(), "p").Return([]byte("%PDF-1.4"), nil)

		data, name, err := uc.GetInvoicePdf(ctx, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "fattura-AF-2025-002.pdf" || len(data) == 0 {
			t.Fatalf("unexpected document: name=%q len=%d", name, len(data))
		}
	})
}
