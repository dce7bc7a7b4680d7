package repositories

import (
	"context"
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// StatusUpdate carries an approval-workflow transition to persistence.
type StatusUpdate struct {
	Status        domain.DocumentStatus
	ApprovedBy    *string
	ApprovedAt    *time.Time
	ApprovalNotes string
	UpdatedBy     string
	UpdatedAt     time.Time
}

// CashBankRepositoryFacade persists cash/bank transactions and transfers.
type CashBankRepositoryFacade interface {
	SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error)
	SaveTransfer(ctx context.Context, trf domain.CashBankTransfer) error
	FindTransferByID(ctx context.Context, transferID string) (*domain.CashBankTransfer, error)
}

// PurchaseRepositoryFacade persists the procurement document chain.
type PurchaseRepositoryFacade interface {
	SaveOrderRequest(ctx context.Context, req domain.OrderRequest) error
	FindOrderRequestByID(ctx context.Context, requestID string) (*domain.OrderRequest, error)
	UpdateOrderRequestStatus(ctx context.Context, requestID string, update StatusUpdate) error
	// SavePurchaseOrderForRequest creates the purchase order and links it
	// to the approved order request within one database transaction.
	SavePurchaseOrderForRequest(ctx context.Context, order domain.PurchaseOrder, requestID string, update StatusUpdate) error

	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error
	FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)
	UpdatePurchaseOrderStatus(ctx context.Context, orderID string, update StatusUpdate) error

	SavePurchaseReceipt(ctx context.Context, receipt domain.PurchaseReceipt) error
	FindPurchaseReceiptByID(ctx context.Context, receiptID string) (*domain.PurchaseReceipt, error)
}

// InvoiceRepositoryFacade persists supplier invoices.
type InvoiceRepositoryFacade interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// VoucherRepositoryFacade persists voucher requests.
type VoucherRepositoryFacade interface {
	SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error)
	ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherRequest, error)
	UpdateVoucherStatus(ctx context.Context, voucherID string, update StatusUpdate) error
	// LinkVoucherTransaction stamps both sides of the voucher/transaction
	// link in one database transaction.
	LinkVoucherTransaction(ctx context.Context, voucherID, transactionID string, userID string, now time.Time) error
	CountTransactionsForVoucher(ctx context.Context, voucherID string) (int, error)
}
