package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest is a requested or ordered purchase line.
type OrderItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateOrderRequestRequest defines the payload for a draft order request.
type CreateOrderRequestRequest struct {
	Date         time.Time          `json:"date" binding:"required"`
	SupplierName string             `json:"supplierName" binding:"required"`
	BranchID     *string            `json:"branchID"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReceiptItemRequest is a received line with its tax treatment.
type ReceiptItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxMode     string          `json:"taxMode" binding:"required,taxmode"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// CreatePurchaseReceiptRequest defines the payload for a goods receipt.
type CreatePurchaseReceiptRequest struct {
	Date            time.Time            `json:"date" binding:"required"`
	PurchaseOrderID string               `json:"purchaseOrderID" binding:"required"`
	BranchID        *string              `json:"branchID"`
	Items           []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInvoiceRequest builds a supplier invoice from a receipt's lines.
// Totals (DPP, tax, total) are computed server-side from the receipt.
type CreateInvoiceRequest struct {
	Date           time.Time `json:"date" binding:"required"`
	ReceiptID      string    `json:"receiptID" binding:"required"`
	SupplierName   string    `json:"supplierName"`
	InventoryCoaID string    `json:"inventoryCoaID" binding:"required"`
	TaxInputCoaID  *string   `json:"taxInputCoaID"`
	PayableCoaID   string    `json:"payableCoaID" binding:"required"`
	BranchID       *string   `json:"branchID"`
}
