package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrProposalNotConfirmed = errors.New("proposal not accepted")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this proposal")
	ErrDocumentNotFound     = errors.New("invoice document not found")
	ErrRenderingFailed      = errors.New("invoice rendering failed")
	ErrStorageFailed        = errors.New("invoice document storage failed")
)

const invoiceNumberPrefix = "AF"

// FormatInvoiceNumber builds an invoice number from a year and the
// sequence value handed out by the counter, e.g. AF-2025-001. Sequences
// past 999 simply widen the field; correctness never depends on the
// padded width because the counter, not a string max-query, is the
// allocation source.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", invoiceNumberPrefix, year, seq)
}

// IInvoiceUseCase exposes invoice issuance and retrieval.
//
// CreateFromProposal is the proposal-to-invoice pipeline: status check,
// number allocation, PDF rendering, document storage, document linking.
// GetInvoicePdf returns the stored PDF, rendering it on demand when the
// invoice has no linked document yet.
type IInvoiceUseCase interface {
	CreateFromProposal(ctx context.Context, proposalID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByNumber(ctx context.Context, number string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error)
	GetInvoicePdf(ctx context.Context, id string) ([]byte, string, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	proposalRepo interfaces.IProposalRepository
	customerRepo interfaces.ICustomerRepository
	configRepo   interfaces.IConfigurationRepository
	vehicleRepo  interfaces.IVehicleRepository
	documentRepo interfaces.IDocumentRepository
	storage      interfaces.IFileStorage
	renderer     interfaces.IInvoiceRenderer
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	proposalRepo interfaces.IProposalRepository,
	customerRepo interfaces.ICustomerRepository,
	configRepo interfaces.IConfigurationRepository,
	vehicleRepo interfaces.IVehicleRepository,
	documentRepo interfaces.IDocumentRepository,
	storage interfaces.IFileStorage,
	renderer interfaces.IInvoiceRenderer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:         repo,
		proposalRepo: proposalRepo,
		customerRepo: customerRepo,
		configRepo:   configRepo,
		vehicleRepo:  vehicleRepo,
		documentRepo: documentRepo,
		storage:      storage,
		renderer:     renderer,
	}
}

// CreateFromProposal converts an accepted proposal into a numbered,
// documented invoice.
//
// The invoice row uses the proposal id as its key, so a second issuance
// attempt (concurrent or not) hits the uniqueness condition and observes
// ErrInvoiceAlreadyExists instead of creating a duplicate. Retrying
// after a rendering or storage failure resumes on the already-created
// row: the assigned number is kept and never re-consumed.
func (u *InvoiceUseCase) CreateFromProposal(ctx context.Context, proposalID string) (entities.Invoice, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Invoice{}, ErrInvalidProposalID
	}

	proposal, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if proposal.ID == "" {
		return entities.Invoice{}, ErrProposalNotFound
	}
	if proposal.Status != entities.ProposalStatusAccepted {
		return entities.Invoice{}, ErrProposalNotConfirmed
	}

	// Resume an incomplete issuance before allocating anything new.
	existing, err := u.repo.GetByID(ctx, proposal.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		if existing.DocumentID != "" {
			return entities.Invoice{}, ErrInvoiceAlreadyExists
		}
		log.Printf("[invoice][usecase] resuming issuance invoice_id=%s number=%s", existing.ID, existing.Number)
		return u.renderAndAttach(ctx, existing, &proposal)
	}

	now := time.Now().UTC()
	seq, err := u.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return entities.Invoice{}, err
	}
	number := FormatInvoiceNumber(now.Year(), seq)

	inv := entities.Invoice{
		ID:          proposal.ID,
		Number:      number,
		IssueDate:   now,
		CustomerID:  proposal.CustomerID,
		ProposalID:  proposal.ID,
		TotalAmount: proposal.ProposedPrice,
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		// A concurrent issuance won the conditional put between our
		// existence check and this write.
		if errors.Is(err, interfaces.ErrInvoiceConflict) {
			return entities.Invoice{}, ErrInvoiceAlreadyExists
		}
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] invoice created invoice_id=%s number=%s proposal_id=%s", created.ID, created.Number, proposal.ID)

	return u.renderAndAttach(ctx, created, &proposal)
}

// renderAndAttach renders the PDF, stores the bytes and links the
// resulting document to the invoice. Failures leave DocumentID untouched
// so the caller can retry the render without re-running numbering.
func (u *InvoiceUseCase) renderAndAttach(ctx context.Context, inv entities.Invoice, proposal *entities.Proposal) (entities.Invoice, error) {
	var customer *entities.Customer
	if c, err := u.customerRepo.GetByID(ctx, inv.CustomerID); err != nil {
		return entities.Invoice{}, err
	} else if c.ID != "" {
		customer = &c
	}

	var cfg *entities.Configuration
	var vehicle *entities.Vehicle
	if proposal != nil && proposal.ConfigurationID != "" {
		if c, err := u.configRepo.GetByID(ctx, proposal.ConfigurationID); err != nil {
			return entities.Invoice{}, err
		} else if c.ID != "" {
			cfg = &c
			if v, err := u.vehicleRepo.GetByID(ctx, c.VehicleID); err != nil {
				return entities.Invoice{}, err
			} else if v.ID != "" {
				vehicle = &v
			}
		}
	}

	data, computed, err := u.renderer.Render(inv, proposal, customer, cfg, vehicle)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("%w: invoice_id=%s proposal_id=%s: %v", ErrRenderingFailed, inv.ID, inv.ProposalID, err)
	}
	if !computed.Equal(inv.TotalAmount) {
		log.Printf("[invoice][usecase] total drift invoice_id=%s stored=%s computed=%s", inv.ID, inv.TotalAmount, computed)
	}

	fileName := "fattura-" + inv.Number + ".pdf"
	folderKey := fmt.Sprintf("fatture/%d/%02d", inv.IssueDate.Year(), int(inv.IssueDate.Month()))
	path, err := u.storage.Store(ctx, data, fileName, folderKey)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("%w: invoice_id=%s proposal_id=%s: %v", ErrStorageFailed, inv.ID, inv.ProposalID, err)
	}

	now := time.Now().UTC()
	doc := entities.GeneratedDocument{
		ID:          uuid.NewString(),
		FileName:    fileName,
		StoragePath: path,
		SizeBytes:   int64(len(data)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc, err = u.documentRepo.Save(ctx, doc)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("%w: invoice_id=%s proposal_id=%s: %v", ErrStorageFailed, inv.ID, inv.ProposalID, err)
	}

	linked, err := u.repo.SetDocumentID(ctx, inv.ID, doc.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if linked.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	// Issuance completes the proposal; a failure here is logged, not
	// fatal, since the invoice itself is already fully linked.
	if _, err := u.proposalRepo.UpdateStatus(ctx, inv.ProposalID, entities.ProposalStatusCompleted); err != nil {
		log.Printf("[invoice][usecase] failed completing proposal proposal_id=%s err=%v", inv.ProposalID, err)
	}

	log.Printf("[invoice][usecase] document linked invoice_id=%s document_id=%s size=%d", linked.ID, doc.ID, doc.SizeBytes)
	return linked, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetByNumber(ctx context.Context, number string) (entities.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// GetInvoicePdf returns the invoice PDF bytes and file name. When the
// invoice has no linked document yet (an earlier issuance failed after
// numbering), the document is rendered now without consuming a new
// number.
func (u *InvoiceUseCase) GetInvoicePdf(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if inv.DocumentID == "" {
		var proposal *entities.Proposal
		if p, err := u.proposalRepo.GetByID(ctx, inv.ProposalID); err != nil {
			return nil, "", err
		} else if p.ID != "" {
			proposal = &p
		}
		inv, err = u.renderAndAttach(ctx, inv, proposal)
		if err != nil {
			return nil, "", err
		}
	}

	doc, err := u.documentRepo.GetByID(ctx, inv.DocumentID)
	if err != nil {
		return nil, "", err
	}
	if doc.ID == "" {
		return nil, "", ErrDocumentNotFound
	}

	data, err := u.storage.Load(ctx, doc.StoragePath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invoice_id=%s document_id=%s: %v", ErrStorageFailed, inv.ID, doc.ID, err)
	}
	return data, doc.FileName, nil
}
