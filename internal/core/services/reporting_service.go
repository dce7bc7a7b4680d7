package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
	"github.com/kreasidigital/erp_ledger/internal/utils/accounting"
)

// balanceTolerance is the maximum absolute difference at which the
// balance sheet still counts as balanced.
var balanceTolerance = decimal.NewFromFloat(0.01)

// reportingService aggregates posted journal entries into statements.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a reporting service instance.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) *reportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

// BalanceSheet builds the assets = liabilities + equity statement as of a
// date. Revenue and expense totals roll into a synthetic current period
// earnings row inside equity. When the two sides differ by more than the
// tolerance the report says so; the difference is never plugged away.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time, branchID *string) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	totals, err := s.reportingRepo.GetAccountTotals(ctx, asOf, branchID)
	if err != nil {
		logger.Error("Failed to load account totals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load account totals: %w", err)
	}

	report := &domain.BalanceSheetReport{AsOfDate: asOf, BranchID: branchID}
	earnings := decimal.Zero

	for _, t := range totals {
		balance := accounting.NetBalance(t.Account.Type, t.DebitSum, t.CreditSum)
		if balance.IsZero() {
			continue
		}

		row := domain.AccountBalance{
			AccountID: t.Account.AccountID,
			Code:      t.Account.Code,
			Name:      t.Account.Name,
			Type:      t.Account.Type,
			Balance:   balance,
		}

		switch t.Account.Type {
		case domain.Asset:
			if t.Account.IsCurrent {
				report.CurrentAssets.Accounts = append(report.CurrentAssets.Accounts, row)
			} else {
				report.FixedAssets.Accounts = append(report.FixedAssets.Accounts, row)
			}
		case domain.ContraAsset:
			report.ContraAssets.Accounts = append(report.ContraAssets.Accounts, row)
		case domain.Liability:
			if t.Account.IsCurrent {
				report.CurrentLiabilities.Accounts = append(report.CurrentLiabilities.Accounts, row)
			} else {
				report.LongTermLiabilities.Accounts = append(report.LongTermLiabilities.Accounts, row)
			}
		case domain.Equity:
			report.Equity.Accounts = append(report.Equity.Accounts, row)
		case domain.Revenue:
			earnings = earnings.Add(balance)
		case domain.Expense:
			earnings = earnings.Sub(balance)
		}
	}

	if !earnings.IsZero() {
		report.Equity.Accounts = append(report.Equity.Accounts, domain.AccountBalance{
			Name:    "Current Period Earnings",
			Type:    domain.Equity,
			Balance: earnings,
		})
	}

	for _, section := range []*domain.ReportSection{
		&report.CurrentAssets, &report.FixedAssets, &report.ContraAssets,
		&report.CurrentLiabilities, &report.LongTermLiabilities, &report.Equity,
	} {
		sort.Slice(section.Accounts, func(i, j int) bool {
			return section.Accounts[i].Code < section.Accounts[j].Code
		})
		total := decimal.Zero
		for _, row := range section.Accounts {
			total = total.Add(row.Balance)
		}
		section.Total = total.Round(2)
	}

	report.TotalAssets = report.CurrentAssets.Total.Add(report.FixedAssets.Total).Sub(report.ContraAssets.Total)
	report.TotalLiabilities = report.CurrentLiabilities.Total.Add(report.LongTermLiabilities.Total)
	report.TotalEquity = report.Equity.Total
	report.TotalLiabEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabEquity)
	report.IsBalanced = report.Difference.Abs().LessThanOrEqual(balanceTolerance)

	if !report.IsBalanced {
		logger.Warn("Balance sheet is out of balance",
			slog.String("as_of", asOf.Format("2006-01-02")),
			slog.String("difference", report.Difference.String()))
	}

	return report, nil
}
