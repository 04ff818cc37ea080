package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/utils/accounting"
)

// balanceService derives opening, movement and closing balances from posted
// entries. Balances are never stored; every call folds the journal again.
type balanceService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	chartRepo   portsrepo.ChartRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(voucherRepo portsrepo.VoucherRepositoryFacade, chartRepo portsrepo.ChartRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{voucherRepo: voucherRepo, chartRepo: chartRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func validateRange(from, to domain.Date) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: date range is required", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: range end %s precedes start %s", apperrors.ErrValidation, to, from)
	}
	return nil
}

// ledgerAccountType resolves a general ledger's account type through its group.
func (s *balanceService) ledgerAccountType(ctx context.Context, ledger *domain.GeneralLedger) (domain.AccountTypeCode, error) {
	group, err := s.chartRepo.FindLedgerGroupByID(ctx, ledger.ProjectID, ledger.GroupID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ledger group %s: %w", ledger.GroupID, err)
	}
	return group.AccountTypeCode, nil
}

// ComputeLedgerBalance computes opening, period movement and closing for a
// general ledger over [from, to].
//
// Opening is the ledger's declared opening balance plus all movement dated
// strictly before from. With rollUp set, sub-ledger openings and postings are
// folded in as well.
func (s *balanceService) ComputeLedgerBalance(ctx context.Context, projectID, ledgerID string, from, to domain.Date, rollUp bool) (*domain.BalanceResult, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	ledger, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, ledgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find general ledger", slog.String("ledger_id", ledgerID))
		}
		return nil, fmt.Errorf("failed to find general ledger %s: %w", ledgerID, err)
	}
	accountType, err := s.ledgerAccountType(ctx, ledger)
	if err != nil {
		return nil, err
	}

	opening := domain.SignedOpening(ledger.OpeningBalance, ledger.OpeningBalanceType, accountType.NormalBalance())
	if rollUp {
		subLedgers, err := s.chartRepo.ListSubLedgers(ctx, projectID, ledgerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sub-ledgers of %s: %w", ledgerID, err)
		}
		for _, sub := range subLedgers {
			opening = opening.Add(domain.SignedOpening(sub.OpeningBalance, sub.OpeningBalanceType, accountType.NormalBalance()))
		}
	}

	// Movement before the period start rolls into the opening figure.
	if prior, err := s.movement(ctx, projectID, portsrepo.EntryFilter{
		LedgerID: ledgerID,
		RollUp:   rollUp,
		To:       datePtr(from.AddDays(-1)),
	}, accountType); err != nil {
		return nil, err
	} else {
		opening = opening.Add(prior)
	}

	period, err := s.movement(ctx, projectID, portsrepo.EntryFilter{
		LedgerID: ledgerID,
		RollUp:   rollUp,
		From:     &from,
		To:       &to,
	}, accountType)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceResult{
		Opening:  opening,
		Movement: period,
		Closing:  opening.Add(period),
		RolledUp: rollUp,
	}, nil
}

// ComputeSubLedgerBalance computes opening, period movement and closing for a
// single sub-ledger over [from, to].
func (s *balanceService) ComputeSubLedgerBalance(ctx context.Context, projectID, subLedgerID string, from, to domain.Date) (*domain.BalanceResult, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	sub, err := s.chartRepo.FindSubLedgerByID(ctx, projectID, subLedgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sub-ledger", slog.String("sub_ledger_id", subLedgerID))
		}
		return nil, fmt.Errorf("failed to find sub-ledger %s: %w", subLedgerID, err)
	}
	ledger, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, sub.LedgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find parent ledger %s: %w", sub.LedgerID, err)
	}
	accountType, err := s.ledgerAccountType(ctx, ledger)
	if err != nil {
		return nil, err
	}

	opening := domain.SignedOpening(sub.OpeningBalance, sub.OpeningBalanceType, accountType.NormalBalance())
	if prior, err := s.movement(ctx, projectID, portsrepo.EntryFilter{
		SubLedgerID: subLedgerID,
		To:          datePtr(from.AddDays(-1)),
	}, accountType); err != nil {
		return nil, err
	} else {
		opening = opening.Add(prior)
	}

	period, err := s.movement(ctx, projectID, portsrepo.EntryFilter{
		SubLedgerID: subLedgerID,
		From:        &from,
		To:          &to,
	}, accountType)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceResult{
		Opening:  opening,
		Movement: period,
		Closing:  opening.Add(period),
	}, nil
}

func (s *balanceService) movement(ctx context.Context, projectID string, filter portsrepo.EntryFilter, accountType domain.AccountTypeCode) (domain.Money, error) {
	entries, err := s.voucherRepo.ListPostedEntries(ctx, projectID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted entries")
		return domain.Zero, fmt.Errorf("failed to list posted entries: %w", err)
	}
	return accounting.NetMovement(entries, accountType), nil
}

func datePtr(d domain.Date) *domain.Date { return &d }
