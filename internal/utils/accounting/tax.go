package accounting

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxLine is the input to tax-base computation: a quantity, a unit price
// and the line's tax treatment.
type TaxLine struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Mode      domain.TaxMode
	Rate      decimal.Decimal // Percentage, e.g. 11 or 12
}

// ComputeTaxLine returns the tax base (DPP) and tax amount (PPN) for one
// line. Values are kept at full decimal precision; rounding happens only
// when lines are aggregated.
func ComputeTaxLine(line TaxLine) (dpp, ppn decimal.Decimal) {
	gross := line.Quantity.Mul(line.UnitPrice)
	switch line.Mode {
	case domain.TaxInclusive:
		// Back the base out of the gross amount.
		divisor := decimal.NewFromInt(1).Add(line.Rate.Div(hundred))
		dpp = gross.Div(divisor)
		ppn = gross.Sub(dpp)
	case domain.TaxExclusive:
		dpp = gross
		ppn = dpp.Mul(line.Rate).Div(hundred)
	default:
		dpp = gross
		ppn = decimal.Zero
	}
	return dpp, ppn
}

// SummarizeTaxLines aggregates lines into invoice totals. Rounding to two
// decimal places happens here, at the aggregate level, so per-line
// remainders cannot drift the grand total.
func SummarizeTaxLines(lines []TaxLine) (dpp, tax, total decimal.Decimal) {
	dpp = decimal.Zero
	tax = decimal.Zero
	for _, line := range lines {
		lineDPP, linePPN := ComputeTaxLine(line)
		dpp = dpp.Add(lineDPP)
		tax = tax.Add(linePPN)
	}
	dpp = dpp.Round(2)
	tax = tax.Round(2)
	total = dpp.Add(tax)
	return dpp, tax, total
}
