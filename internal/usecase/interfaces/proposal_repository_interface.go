package interfaces

import (
	"context"

	"autoflow/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// UpdateStatus returns the zero Proposal (no error) when the id does not
// exist, mirroring the conditional-update convention used across the
// repositories.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Proposal, error)
	ListBySalespersonID(ctx context.Context, salespersonID string) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.ProposalStatus) (int64, error)
}
