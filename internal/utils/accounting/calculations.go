package accounting

import (
	"fmt"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryAmounts maps a side and a positive amount onto the (debit, credit)
// column pair. It is the single place where sides become column values.
func EntryAmounts(side domain.EntrySide, amount decimal.Decimal) (debit, credit decimal.Decimal) {
	if side == domain.Debit {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}

// SignedAmount nets a journal entry against the account's normal balance:
// entries on the normal side increase the balance, entries on the opposite
// side decrease it.
func SignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.Valid() {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' for account %s", accountType, entry.AccountID)
	}
	net := entry.Debit.Sub(entry.Credit)
	if accountType.NormalBalance() == domain.CreditNormal {
		net = net.Neg()
	}
	return net, nil
}

// NetBalance nets gross debit/credit sums by the account type's polarity.
func NetBalance(accountType domain.AccountType, debitSum, creditSum decimal.Decimal) decimal.Decimal {
	if accountType.NormalBalance() == domain.DebitNormal {
		return debitSum.Sub(creditSum)
	}
	return creditSum.Sub(debitSum)
}

// UnbalancedError reports an entry set whose debit and credit sums differ.
type UnbalancedError struct {
	DebitSum  decimal.Decimal
	CreditSum decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("journal entries do not balance: debit sum is %s, credit sum is %s",
		e.DebitSum.String(), e.CreditSum.String())
}

func (e *UnbalancedError) Unwrap() error {
	return apperrors.ErrInternal
}

// ValidateEntriesBalance verifies that a set of journal entries is a valid
// double-entry group: at least two entries, each with exactly one positive
// column, and equal debit and credit sums. It must pass before anything is
// persisted.
func ValidateEntriesBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: a posting needs at least two journal entries", apperrors.ErrValidation)
	}

	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("%w: entry for account %s has a negative column", apperrors.ErrValidation, e.AccountID)
		}
		if e.Debit.IsPositive() == e.Credit.IsPositive() {
			return fmt.Errorf("%w: entry for account %s must have exactly one non-zero column", apperrors.ErrValidation, e.AccountID)
		}
		debitSum = debitSum.Add(e.Debit)
		creditSum = creditSum.Add(e.Credit)
	}

	if !debitSum.Equal(creditSum) {
		return &UnbalancedError{DebitSum: debitSum, CreditSum: creditSum}
	}
	return nil
}
