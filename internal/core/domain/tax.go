package domain

// TaxMode determines how a line's unit price relates to the tax base.
type TaxMode string

const (
	// TaxExclusive: the unit price excludes tax; tax is added on top.
	TaxExclusive TaxMode = "exclusive"
	// TaxInclusive: the unit price already contains tax; the base is
	// backed out of the gross amount.
	TaxInclusive TaxMode = "inclusive"
	// TaxNone: no tax applies to the line.
	TaxNone TaxMode = "none"
)

// Valid reports whether m is a known tax mode.
func (m TaxMode) Valid() bool {
	switch m {
	case TaxExclusive, TaxInclusive, TaxNone:
		return true
	}
	return false
}
