package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is one report row: an account and its net balance as of
// the report date, netted by the account's normal balance.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
}

// ReportSection groups report rows with their subtotal.
type ReportSection struct {
	Accounts []AccountBalance `json:"accounts"`
	Total    decimal.Decimal  `json:"total"`
}

// BalanceSheetReport is the assets = liabilities + equity statement.
// IsBalanced is reported honestly: an unbalanced ledger yields
// IsBalanced=false together with the raw difference, it is never plugged.
type BalanceSheetReport struct {
	AsOfDate            time.Time       `json:"asOfDate"`
	BranchID            *string         `json:"branchID"`
	CurrentAssets       ReportSection   `json:"currentAssets"`
	FixedAssets         ReportSection   `json:"fixedAssets"`
	ContraAssets        ReportSection   `json:"contraAssets"`
	TotalAssets         decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities  ReportSection   `json:"currentLiabilities"`
	LongTermLiabilities ReportSection   `json:"longTermLiabilities"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`
	Equity              ReportSection   `json:"equity"`
	TotalEquity         decimal.Decimal `json:"totalEquity"`
	TotalLiabEquity     decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	IsBalanced          bool            `json:"isBalanced"`
	Difference          decimal.Decimal `json:"difference"`
}

// AccountTotals is the raw aggregation a reporting repository returns:
// gross debit and credit sums per account up to the as-of date.
type AccountTotals struct {
	Account   ChartOfAccount
	DebitSum  decimal.Decimal
	CreditSum decimal.Decimal
}
