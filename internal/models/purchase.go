package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequestItem is a requested purchase line row.
type OrderRequestItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	RequestID   string          `json:"requestID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderRequest is the database representation of an order request.
type OrderRequest struct {
	RequestID       string     `json:"requestID"` // Primary Key (UUID)
	Number          string     `json:"number"`
	Date            time.Time  `json:"date"`
	SupplierName    string     `json:"supplierName"`
	Status          string     `json:"status"`
	PurchaseOrderID *string    `json:"purchaseOrderID"`
	BranchID        *string    `json:"branchID"`
	ApprovedBy      *string    `json:"approvedBy"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	ApprovalNotes   string     `json:"approvalNotes"`
	AuditFields
}

// PurchaseOrderItem is an ordered line row.
type PurchaseOrderItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrder is the database representation of a purchase order.
type PurchaseOrder struct {
	OrderID       string     `json:"orderID"` // Primary Key (UUID)
	Number        string     `json:"number"`
	Date          time.Time  `json:"date"`
	SupplierName  string     `json:"supplierName"`
	Status        string     `json:"status"`
	RequestID     *string    `json:"requestID"`
	BranchID      *string    `json:"branchID"`
	ApprovedBy    *string    `json:"approvedBy"`
	ApprovedAt    *time.Time `json:"approvedAt"`
	ApprovalNotes string     `json:"approvalNotes"`
	AuditFields
}

// PurchaseReceiptItem is a received line row with its tax treatment.
type PurchaseReceiptItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	ReceiptID   string          `json:"receiptID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxMode     string          `json:"taxMode"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// PurchaseReceipt is the database representation of a goods receipt.
type PurchaseReceipt struct {
	ReceiptID       string    `json:"receiptID"` // Primary Key (UUID)
	Number          string    `json:"number"`
	Date            time.Time `json:"date"`
	PurchaseOrderID string    `json:"purchaseOrderID"`
	Status          string    `json:"status"`
	BranchID        *string   `json:"branchID"`
	AuditFields
}

// Invoice is the database representation of a supplier invoice.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	Number         string          `json:"number"`
	Date           time.Time       `json:"date"`
	ReceiptID      *string         `json:"receiptID"`
	SupplierName   string          `json:"supplierName"`
	DPP            decimal.Decimal `json:"dpp"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	InventoryCoaID string          `json:"inventoryCoaID"`
	TaxInputCoaID  *string         `json:"taxInputCoaID"`
	PayableCoaID   string          `json:"payableCoaID"`
	BranchID       *string         `json:"branchID"`
	Status         string          `json:"status"`
	AuditFields
}
