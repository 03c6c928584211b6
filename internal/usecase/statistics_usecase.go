package usecase

import (
	"context"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardStatistics aggregates the admin dashboard counters.
type DashboardStatistics struct {
	TotalCustomers int64 `json:"total_customers"`
	TotalVehicles  int64 `json:"total_vehicles"`
	TotalProposals int64 `json:"total_proposals"`
	TotalInvoices  int64 `json:"total_invoices"`

	ProposalsDraft     int64 `json:"proposals_draft"`
	ProposalsSent      int64 `json:"proposals_sent"`
	ProposalsAccepted  int64 `json:"proposals_accepted"`
	ProposalsRejected  int64 `json:"proposals_rejected"`
	ProposalsExpired   int64 `json:"proposals_expired"`
	ProposalsCancelled int64 `json:"proposals_cancelled"`
	ProposalsCompleted int64 `json:"proposals_completed"`

	RevenueTotal        decimal.Decimal `json:"revenue_total"`
	RevenueCurrentYear  decimal.Decimal `json:"revenue_current_year"`
	RevenueCurrentMonth decimal.Decimal `json:"revenue_current_month"`

	UnpaidInvoices int64 `json:"unpaid_invoices"`
}

// IStatisticsUseCase computes the dashboard snapshot.
type IStatisticsUseCase interface {
	Dashboard(ctx context.Context) (DashboardStatistics, error)
}

type StatisticsUseCase struct {
	customerRepo interfaces.ICustomerRepository
	vehicleRepo  interfaces.IVehicleRepository
	proposalRepo interfaces.IProposalRepository
	invoiceRepo  interfaces.IInvoiceRepository
}

var _ IStatisticsUseCase = (*StatisticsUseCase)(nil)

func NewStatisticsUseCase(
	customerRepo interfaces.ICustomerRepository,
	vehicleRepo interfaces.IVehicleRepository,
	proposalRepo interfaces.IProposalRepository,
	invoiceRepo interfaces.IInvoiceRepository,
) *StatisticsUseCase {
	return &StatisticsUseCase{
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		proposalRepo: proposalRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func (u *StatisticsUseCase) Dashboard(ctx context.Context) (DashboardStatistics, error) {
	var stats DashboardStatistics
	var err error

	if stats.TotalCustomers, err = u.customerRepo.Count(ctx); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.TotalVehicles, err = u.vehicleRepo.Count(ctx); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.TotalProposals, err = u.proposalRepo.Count(ctx); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.TotalInvoices, err = u.invoiceRepo.Count(ctx); err != nil {
		return DashboardStatistics{}, err
	}

	byStatus := []struct {
		status entities.ProposalStatus
		target *int64
	}{
		{entities.ProposalStatusDraft, &stats.ProposalsDraft},
		{entities.ProposalStatusSent, &stats.ProposalsSent},
		{entities.ProposalStatusAccepted, &stats.ProposalsAccepted},
		{entities.ProposalStatusRejected, &stats.ProposalsRejected},
		{entities.ProposalStatusExpired, &stats.ProposalsExpired},
		{entities.ProposalStatusCancelled, &stats.ProposalsCancelled},
		{entities.ProposalStatusCompleted, &stats.ProposalsCompleted},
	}
	for _, b := range byStatus {
		if *b.target, err = u.proposalRepo.CountByStatus(ctx, b.status); err != nil {
			return DashboardStatistics{}, err
		}
	}

	now := time.Now().UTC()
	if stats.RevenueTotal, err = u.invoiceRepo.SumTotals(ctx); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.RevenueCurrentYear, err = u.invoiceRepo.SumTotalsByYear(ctx, now.Year()); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.RevenueCurrentMonth, err = u.invoiceRepo.SumTotalsByYearMonth(ctx, now.Year(), now.Month()); err != nil {
		return DashboardStatistics{}, err
	}
	if stats.UnpaidInvoices, err = u.invoiceRepo.CountUnpaid(ctx); err != nil {
		return DashboardStatistics{}, err
	}

	return stats, nil
}
