package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
	"github.com/kreasidigital/erp_ledger/internal/utils/accounting"
)

// purchaseService drives the procurement chain: order request, the
// purchase order synthesized on approval, goods receipt and the tax-aware
// supplier invoice built from receipt lines.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	sequenceSvc  portssvc.SequenceSvcFacade
}

// NewPurchaseService creates a purchase service instance.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
) *purchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		invoiceRepo:  invoiceRepo,
		accountRepo:  accountRepo,
		sequenceSvc:  sequenceSvc,
	}
}

// CreateOrderRequest creates a draft order request with at least one line.
func (s *purchaseService) CreateOrderRequest(ctx context.Context, req dto.CreateOrderRequestRequest, creatorUserID string) (*domain.OrderRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, item := range req.Items {
		if !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("order line %q needs a positive quantity and non-negative price: %w",
				item.Description, apperrors.ErrValidation)
		}
	}

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixOrderRequest, req.Date)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	items := make([]domain.OrderRequestItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderRequestItem{
			ItemID:      uuid.NewString(),
			RequestID:   requestID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	request := domain.OrderRequest{
		RequestID:    requestID,
		Number:       number,
		Date:         req.Date,
		SupplierName: req.SupplierName,
		Status:       domain.StatusDraft,
		BranchID:     req.BranchID,
		Items:        items,
		AuditFields:  domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.purchaseRepo.SaveOrderRequest(ctx, request); err != nil {
		logger.Error("Failed to save order request", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save order request %s: %w", number, err)
	}

	logger.Info("Order request created", slog.String("request_id", requestID), slog.String("number", number))
	return &request, nil
}

func (s *purchaseService) GetOrderRequest(ctx context.Context, requestID string) (*domain.OrderRequest, error) {
	return s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
}

func (s *purchaseService) SubmitOrderRequest(ctx context.Context, requestID string, userID string) (*domain.OrderRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	next, err := domain.Transition("order request", request.Status, domain.ActionSubmit)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.UpdateOrderRequestStatus(ctx, requestID, portsrepo.StatusUpdate{
		Status:    next,
		UpdatedBy: userID,
		UpdatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update order request %s status: %w", requestID, err)
	}

	logger.Info("Order request submitted", slog.String("request_id", requestID))
	return s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
}

// ApproveOrderRequest approves a pending request and synthesizes the
// linked purchase order in the same database transaction. The order
// copies the request's supplier and lines and starts approved.
func (s *purchaseService) ApproveOrderRequest(ctx context.Context, requestID string, notes string, userID string) (*domain.OrderRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	next, err := domain.Transition("order request", request.Status, domain.ActionApprove)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orderNumber, err := s.sequenceSvc.NextNumber(ctx, PrefixPurchaseOrder, now)
	if err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	orderItems := make([]domain.PurchaseOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		orderItems = append(orderItems, domain.PurchaseOrderItem{
			ItemID:      uuid.NewString(),
			OrderID:     orderID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order := domain.PurchaseOrder{
		OrderID:      orderID,
		Number:       orderNumber,
		Date:         now,
		SupplierName: request.SupplierName,
		Status:       domain.StatusApproved,
		RequestID:    &request.RequestID,
		BranchID:     request.BranchID,
		Items:        orderItems,
		ApprovalFields: domain.ApprovalFields{
			ApprovedBy:    &userID,
			ApprovedAt:    &now,
			ApprovalNotes: notes,
		},
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.purchaseRepo.SavePurchaseOrderForRequest(ctx, order, requestID, portsrepo.StatusUpdate{
		Status:        next,
		ApprovedBy:    &userID,
		ApprovedAt:    &now,
		ApprovalNotes: notes,
		UpdatedBy:     userID,
		UpdatedAt:     now,
	}); err != nil {
		logger.Error("Failed to approve order request", slog.String("request_id", requestID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to approve order request %s: %w", requestID, err)
	}

	logger.Info("Order request approved",
		slog.String("request_id", requestID), slog.String("order_id", orderID), slog.String("order_number", orderNumber))
	return s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
}

func (s *purchaseService) RejectOrderRequest(ctx context.Context, requestID string, reason string, userID string) (*domain.OrderRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
	}

	request, err := s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	next, err := domain.Transition("order request", request.Status, domain.ActionReject)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.purchaseRepo.UpdateOrderRequestStatus(ctx, requestID, portsrepo.StatusUpdate{
		Status:        next,
		ApprovedBy:    &userID,
		ApprovedAt:    &now,
		ApprovalNotes: reason,
		UpdatedBy:     userID,
		UpdatedAt:     now,
	}); err != nil {
		return nil, fmt.Errorf("failed to update order request %s status: %w", requestID, err)
	}

	logger.Info("Order request rejected", slog.String("request_id", requestID))
	return s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
}

func (s *purchaseService) CancelOrderRequest(ctx context.Context, requestID string, userID string) (*domain.OrderRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	next, err := domain.Transition("order request", request.Status, domain.ActionCancel)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.UpdateOrderRequestStatus(ctx, requestID, portsrepo.StatusUpdate{
		Status:    next,
		UpdatedBy: userID,
		UpdatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update order request %s status: %w", requestID, err)
	}

	logger.Info("Order request cancelled", slog.String("request_id", requestID))
	return s.purchaseRepo.FindOrderRequestByID(ctx, requestID)
}

func (s *purchaseService) GetPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	return s.purchaseRepo.FindPurchaseOrderByID(ctx, orderID)
}

// CreatePurchaseReceipt records goods received against an approved
// purchase order.
func (s *purchaseService) CreatePurchaseReceipt(ctx context.Context, req dto.CreatePurchaseReceiptRequest, creatorUserID string) (*domain.PurchaseReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.purchaseRepo.FindPurchaseOrderByID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusApproved && order.Status != domain.StatusPosted {
		return nil, fmt.Errorf("purchase order %s is not approved, current status: %s: %w",
			order.Number, order.Status, apperrors.ErrConflict)
	}

	for _, item := range req.Items {
		if !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("receipt line %q needs a positive quantity and non-negative price: %w",
				item.Description, apperrors.ErrValidation)
		}
		if domain.TaxMode(item.TaxMode) != domain.TaxNone && item.TaxRate.IsNegative() {
			return nil, fmt.Errorf("receipt line %q has a negative tax rate: %w", item.Description, apperrors.ErrValidation)
		}
	}

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixPurchaseReceipt, req.Date)
	if err != nil {
		return nil, err
	}

	receiptID := uuid.NewString()
	items := make([]domain.PurchaseReceiptItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.PurchaseReceiptItem{
			ItemID:      uuid.NewString(),
			ReceiptID:   receiptID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxMode:     domain.TaxMode(item.TaxMode),
			TaxRate:     item.TaxRate,
		})
	}

	receipt := domain.PurchaseReceipt{
		ReceiptID:       receiptID,
		Number:          number,
		Date:            req.Date,
		PurchaseOrderID: order.OrderID,
		Status:          domain.StatusDraft,
		BranchID:        req.BranchID,
		Items:           items,
		AuditFields:     domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.purchaseRepo.SavePurchaseReceipt(ctx, receipt); err != nil {
		logger.Error("Failed to save purchase receipt", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save receipt %s: %w", number, err)
	}

	logger.Info("Purchase receipt created", slog.String("receipt_id", receiptID), slog.String("number", number))
	return &receipt, nil
}

func (s *purchaseService) GetPurchaseReceipt(ctx context.Context, receiptID string) (*domain.PurchaseReceipt, error) {
	return s.purchaseRepo.FindPurchaseReceiptByID(ctx, receiptID)
}

// CreateInvoiceFromReceipt builds a draft supplier invoice from a
// receipt's lines. The tax base, tax and total are computed server-side
// from each line's tax treatment and rounded at the aggregate.
func (s *purchaseService) CreateInvoiceFromReceipt(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.purchaseRepo.FindPurchaseReceiptByID(ctx, req.ReceiptID)
	if err != nil {
		return nil, err
	}
	if len(receipt.Items) == 0 {
		return nil, fmt.Errorf("receipt %s has no lines to invoice: %w", receipt.Number, apperrors.ErrValidation)
	}

	supplierName := req.SupplierName
	if supplierName == "" {
		order, err := s.purchaseRepo.FindPurchaseOrderByID(ctx, receipt.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		supplierName = order.SupplierName
	}

	coaIDs := []string{req.InventoryCoaID, req.PayableCoaID}
	if req.TaxInputCoaID != nil {
		coaIDs = append(coaIDs, *req.TaxInputCoaID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, coaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice accounts: %w", err)
	}
	for _, id := range coaIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("account %s not found: %w", id, apperrors.ErrValidation)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("account %s is inactive: %w", account.Code, apperrors.ErrValidation)
		}
	}

	lines := make([]accounting.TaxLine, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		lines = append(lines, accounting.TaxLine{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Mode:      item.TaxMode,
			Rate:      item.TaxRate,
		})
	}
	dpp, tax, total := accounting.SummarizeTaxLines(lines)

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixInvoice, req.Date)
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         number,
		Date:           req.Date,
		ReceiptID:      &receipt.ReceiptID,
		SupplierName:   supplierName,
		DPP:            dpp,
		Tax:            tax,
		Total:          total,
		InventoryCoaID: req.InventoryCoaID,
		TaxInputCoaID:  req.TaxInputCoaID,
		PayableCoaID:   req.PayableCoaID,
		BranchID:       req.BranchID,
		Status:         domain.StatusDraft,
		AuditFields:    domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invoice %s: %w", number, err)
	}

	logger.Info("Invoice created from receipt",
		slog.String("invoice_id", invoice.InvoiceID), slog.String("number", number),
		slog.String("receipt_id", receipt.ReceiptID), slog.String("total", total.String()))
	return &invoice, nil
}

func (s *purchaseService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}
