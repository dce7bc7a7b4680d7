package services

import (
	"context"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/dto"
)

// CashBankSvcFacade creates cash/bank documents. Posting them to the
// ledger goes through PostingSvcFacade.
type CashBankSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateCashBankTransactionRequest, creatorUserID string) (*domain.CashBankTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error)
	CreateTransfer(ctx context.Context, req dto.CreateCashBankTransferRequest, creatorUserID string) (*domain.CashBankTransfer, error)
	GetTransfer(ctx context.Context, transferID string) (*domain.CashBankTransfer, error)
}

// VoucherSvcFacade drives the voucher request approval workflow.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.VoucherRequest, error)
	GetVoucher(ctx context.Context, voucherID string) (*domain.VoucherRequest, error)
	ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherRequest, error)
	SubmitVoucher(ctx context.Context, voucherID string, userID string) (*domain.VoucherRequest, error)
	ApproveVoucher(ctx context.Context, voucherID string, req dto.ApproveVoucherRequest, userID string) (*domain.VoucherRequest, error)
	RejectVoucher(ctx context.Context, voucherID string, reason string, userID string) (*domain.VoucherRequest, error)
	CancelVoucher(ctx context.Context, voucherID string, userID string) (*domain.VoucherRequest, error)
}

// PurchaseSvcFacade drives the procurement document chain: order request
// approval (which synthesizes a purchase order), goods receipt and the
// tax-aware invoice built from receipt lines.
type PurchaseSvcFacade interface {
	CreateOrderRequest(ctx context.Context, req dto.CreateOrderRequestRequest, creatorUserID string) (*domain.OrderRequest, error)
	GetOrderRequest(ctx context.Context, requestID string) (*domain.OrderRequest, error)
	SubmitOrderRequest(ctx context.Context, requestID string, userID string) (*domain.OrderRequest, error)
	ApproveOrderRequest(ctx context.Context, requestID string, notes string, userID string) (*domain.OrderRequest, error)
	RejectOrderRequest(ctx context.Context, requestID string, reason string, userID string) (*domain.OrderRequest, error)
	CancelOrderRequest(ctx context.Context, requestID string, userID string) (*domain.OrderRequest, error)

	GetPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)
	CreatePurchaseReceipt(ctx context.Context, req dto.CreatePurchaseReceiptRequest, creatorUserID string) (*domain.PurchaseReceipt, error)
	GetPurchaseReceipt(ctx context.Context, receiptID string) (*domain.PurchaseReceipt, error)
	CreateInvoiceFromReceipt(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}
