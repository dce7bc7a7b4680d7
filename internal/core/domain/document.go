package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalFields record who decided an approval-workflow transition.
type ApprovalFields struct {
	ApprovedBy    *string    `json:"approvedBy"`
	ApprovedAt    *time.Time `json:"approvedAt"`
	ApprovalNotes string     `json:"approvalNotes"`
}

// CashBankTransactionType distinguishes inflows from outflows.
type CashBankTransactionType string

const (
	CashIn  CashBankTransactionType = "cash_in"
	CashOut CashBankTransactionType = "cash_out"
	BankIn  CashBankTransactionType = "bank_in"
	BankOut CashBankTransactionType = "bank_out"
)

// IsInflow reports whether the transaction moves money into the account.
func (t CashBankTransactionType) IsInflow() bool {
	return t == CashIn || t == BankIn
}

// CashBankTransactionDetail is a breakdown line against an offset account.
// Negative amounts flip the leg (tax reductions and similar adjustments).
type CashBankTransactionDetail struct {
	DetailID      string          `json:"detailID"`
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// CashBankTransaction is a cash receipt or disbursement. It posts either
// against a single offset account or against a set of breakdown details
// whose amounts must sum to the declared amount.
type CashBankTransaction struct {
	TransactionID string                      `json:"transactionID"`
	Number        string                      `json:"number"`
	Date          time.Time                   `json:"date"`
	Type          CashBankTransactionType     `json:"type"`
	Amount        decimal.Decimal             `json:"amount"`
	Description   string                      `json:"description"`
	AccountID     string                      `json:"accountID"` // Primary cash/bank COA
	OffsetID      *string                     `json:"offsetID"`  // Counter account when no breakdown
	BranchID      *string                     `json:"branchID"`
	Status        DocumentStatus              `json:"status"`
	VoucherID     *string                     `json:"voucherID"` // Backing voucher request, if any
	Details       []CashBankTransactionDetail `json:"details"`
	AuditFields
}

// CashBankTransfer moves funds between two cash/bank accounts. OtherCosts
// (bank admin fees etc.) are debited to FeeAccountID and credited from the
// source alongside the transferred amount.
type CashBankTransfer struct {
	TransferID   string          `json:"transferID"`
	Number       string          `json:"number"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	OtherCosts   decimal.Decimal `json:"otherCosts"`
	FromID       string          `json:"fromID"`
	ToID         string          `json:"toID"`
	FeeAccountID *string         `json:"feeAccountID"`
	Description  string          `json:"description"`
	BranchID     *string         `json:"branchID"`
	Status       DocumentStatus  `json:"status"`
	AuditFields
}

// OrderRequestItem is a requested purchase line.
type OrderRequestItem struct {
	ItemID      string          `json:"itemID"`
	RequestID   string          `json:"requestID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderRequest is an internal purchase request. Approving it synthesizes a
// linked PurchaseOrder.
type OrderRequest struct {
	RequestID       string             `json:"requestID"`
	Number          string             `json:"number"`
	Date            time.Time          `json:"date"`
	SupplierName    string             `json:"supplierName"`
	Status          DocumentStatus     `json:"status"`
	PurchaseOrderID *string            `json:"purchaseOrderID"`
	BranchID        *string            `json:"branchID"`
	Items           []OrderRequestItem `json:"items"`
	ApprovalFields
	AuditFields
}

// PurchaseOrderItem is an ordered line.
type PurchaseOrderItem struct {
	ItemID      string          `json:"itemID"`
	OrderID     string          `json:"orderID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrder is a confirmed order to a supplier.
type PurchaseOrder struct {
	OrderID      string              `json:"orderID"`
	Number       string              `json:"number"`
	Date         time.Time           `json:"date"`
	SupplierName string              `json:"supplierName"`
	Status       DocumentStatus      `json:"status"`
	RequestID    *string             `json:"requestID"` // Originating order request, if any
	BranchID     *string             `json:"branchID"`
	Items        []PurchaseOrderItem `json:"items"`
	ApprovalFields
	AuditFields
}

// Total sums quantity x unit price over the order's items.
func (o PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return total
}

// PurchaseReceiptItem is a received line carrying its tax treatment.
type PurchaseReceiptItem struct {
	ItemID      string          `json:"itemID"`
	ReceiptID   string          `json:"receiptID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxMode     TaxMode         `json:"taxMode"`
	TaxRate     decimal.Decimal `json:"taxRate"` // Percentage, e.g. 11 or 12
}

// PurchaseReceipt records goods received against a purchase order.
type PurchaseReceipt struct {
	ReceiptID       string                `json:"receiptID"`
	Number          string                `json:"number"`
	Date            time.Time             `json:"date"`
	PurchaseOrderID string                `json:"purchaseOrderID"`
	Status          DocumentStatus        `json:"status"`
	BranchID        *string               `json:"branchID"`
	Items           []PurchaseReceiptItem `json:"items"`
	AuditFields
}

// Invoice is a supplier invoice built from receipt lines. DPP is the tax
// base, Tax the PPN amount and Total their sum, all rounded to two decimal
// places at the aggregate level.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	Number         string          `json:"number"`
	Date           time.Time       `json:"date"`
	ReceiptID      *string         `json:"receiptID"`
	SupplierName   string          `json:"supplierName"`
	DPP            decimal.Decimal `json:"dpp"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	InventoryCoaID string          `json:"inventoryCoaID"` // Debit leg account
	TaxInputCoaID  *string         `json:"taxInputCoaID"`  // PPN-input account; nil skips the tax leg
	PayableCoaID   string          `json:"payableCoaID"`   // Credit leg account
	BranchID       *string         `json:"branchID"`
	Status         DocumentStatus  `json:"status"`
	AuditFields
}

// VoucherRequest is a payment voucher moving through the approval workflow.
type VoucherRequest struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"` // VR-YYYYMMDD-NNNN
	VoucherDate   time.Time       `json:"voucherDate"`
	Amount        decimal.Decimal `json:"amount"`
	RelatedParty  string          `json:"relatedParty"`
	Description   string          `json:"description"`
	Status        DocumentStatus  `json:"status"`
	TransactionID *string         `json:"transactionID"` // Linked cash/bank transaction after approval
	BranchID      *string         `json:"branchID"`
	ApprovalFields
	AuditFields
}
