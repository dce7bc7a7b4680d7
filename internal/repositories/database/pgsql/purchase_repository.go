package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/models"
	"github.com/kreasidigital/erp_ledger/internal/utils/mapping"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const orderRequestColumns = `request_id, number, date, supplier_name, status, purchase_order_id, branch_id,
	       approved_by, approved_at, approval_notes,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanOrderRequest(row pgx.Row) (models.OrderRequest, error) {
	var m models.OrderRequest
	err := row.Scan(
		&m.RequestID,
		&m.Number,
		&m.Date,
		&m.SupplierName,
		&m.Status,
		&m.PurchaseOrderID,
		&m.BranchID,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrderRequest inserts an order request and its item rows in one
// database transaction.
func (r *PgxPurchaseRepository) SaveOrderRequest(ctx context.Context, req domain.OrderRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOrderRequest(req)
	query := `
		INSERT INTO order_requests (` + orderRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		m.RequestID,
		m.Number,
		m.Date,
		m.SupplierName,
		m.Status,
		m.PurchaseOrderID,
		m.BranchID,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert order request "+m.RequestID, err)
	}

	if err := insertOrderRequestItems(ctx, tx, req.Items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertOrderRequestItems(ctx context.Context, tx pgx.Tx, items []domain.OrderRequestItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO order_request_items (item_id, request_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		batch.Queue(query, item.ItemID, item.RequestID, item.Description, item.Quantity, item.UnitPrice)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert order request items", err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindOrderRequestByID(ctx context.Context, requestID string) (*domain.OrderRequest, error) {
	query := `SELECT ` + orderRequestColumns + ` FROM order_requests WHERE request_id = $1;`
	m, err := scanOrderRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("order request " + requestID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find order request "+requestID, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, request_id, description, quantity, unit_price
		FROM order_request_items
		WHERE request_id = $1
		ORDER BY item_id;
	`, requestID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for order request "+requestID, err)
	}
	defer rows.Close()

	items := []models.OrderRequestItem{}
	for rows.Next() {
		var item models.OrderRequestItem
		if err := rows.Scan(&item.ItemID, &item.RequestID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order request item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order request item rows", err)
	}

	request := mapping.ToDomainOrderRequest(m, items)
	return &request, nil
}

func (r *PgxPurchaseRepository) UpdateOrderRequestStatus(ctx context.Context, requestID string, update portsrepo.StatusUpdate) error {
	query := `
		UPDATE order_requests
		SET status = $2,
		    approved_by = COALESCE($3, approved_by),
		    approved_at = COALESCE($4, approved_at),
		    approval_notes = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE request_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		requestID,
		string(update.Status),
		update.ApprovedBy,
		update.ApprovedAt,
		update.ApprovalNotes,
		update.UpdatedAt,
		update.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update order request "+requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order request " + requestID + " not found for update")
	}
	return nil
}

// SavePurchaseOrderForRequest creates the purchase order with its items,
// transitions the originating request and links the two, all in one
// database transaction.
func (r *PgxPurchaseRepository) SavePurchaseOrderForRequest(ctx context.Context, order domain.PurchaseOrder, requestID string, update portsrepo.StatusUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPurchaseOrder(ctx, tx, order); err != nil {
		return err
	}

	query := `
		UPDATE order_requests
		SET status = $2,
		    purchase_order_id = $3,
		    approved_by = $4,
		    approved_at = $5,
		    approval_notes = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE request_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		requestID,
		string(update.Status),
		order.OrderID,
		update.ApprovedBy,
		update.ApprovedAt,
		update.ApprovalNotes,
		update.UpdatedAt,
		update.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve order request "+requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order request " + requestID + " not found for approval")
	}

	return r.Commit(ctx, tx)
}

const purchaseOrderColumns = `order_id, number, date, supplier_name, status, request_id, branch_id,
	       approved_by, approved_at, approval_notes,
	       created_at, created_by, last_updated_at, last_updated_by`

func insertPurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(order)
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.OrderID,
		m.Number,
		m.Date,
		m.SupplierName,
		m.Status,
		m.RequestID,
		m.BranchID,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase order "+m.OrderID, err)
	}

	if len(order.Items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO purchase_order_items (item_id, order_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range order.Items {
		batch.Queue(itemQuery, item.ItemID, item.OrderID, item.Description, item.Quantity, item.UnitPrice)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase order items", err)
	}
	return nil
}

func (r *PgxPurchaseRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPurchaseOrder(ctx, tx, order); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE order_id = $1;`
	var m models.PurchaseOrder
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&m.OrderID,
		&m.Number,
		&m.Date,
		&m.SupplierName,
		&m.Status,
		&m.RequestID,
		&m.BranchID,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase order " + orderID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase order "+orderID, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, order_id, description, quantity, unit_price
		FROM purchase_order_items
		WHERE order_id = $1
		ORDER BY item_id;
	`, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for purchase order "+orderID, err)
	}
	defer rows.Close()

	items := []models.PurchaseOrderItem{}
	for rows.Next() {
		var item models.PurchaseOrderItem
		if err := rows.Scan(&item.ItemID, &item.OrderID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase order item rows", err)
	}

	order := mapping.ToDomainPurchaseOrder(m, items)
	return &order, nil
}

func (r *PgxPurchaseRepository) UpdatePurchaseOrderStatus(ctx context.Context, orderID string, update portsrepo.StatusUpdate) error {
	query := `
		UPDATE purchase_orders
		SET status = $2,
		    approved_by = COALESCE($3, approved_by),
		    approved_at = COALESCE($4, approved_at),
		    approval_notes = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE order_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		orderID,
		string(update.Status),
		update.ApprovedBy,
		update.ApprovedAt,
		update.ApprovalNotes,
		update.UpdatedAt,
		update.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase order "+orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase order " + orderID + " not found for update")
	}
	return nil
}

const receiptColumns = `receipt_id, number, date, purchase_order_id, status, branch_id,
	       created_at, created_by, last_updated_at, last_updated_by`

// SavePurchaseReceipt inserts a receipt and its item rows in one database
// transaction.
func (r *PgxPurchaseRepository) SavePurchaseReceipt(ctx context.Context, receipt domain.PurchaseReceipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPurchaseReceipt(receipt)
	query := `
		INSERT INTO purchase_receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.ReceiptID,
		m.Number,
		m.Date,
		m.PurchaseOrderID,
		m.Status,
		m.BranchID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase receipt "+m.ReceiptID, err)
	}

	if len(receipt.Items) > 0 {
		batch := &pgx.Batch{}
		itemQuery := `
			INSERT INTO purchase_receipt_items (item_id, receipt_id, description, quantity, unit_price, tax_mode, tax_rate)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		for _, item := range receipt.Items {
			batch.Queue(itemQuery, item.ItemID, item.ReceiptID, item.Description, item.Quantity, item.UnitPrice, string(item.TaxMode), item.TaxRate)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert purchase receipt items", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) FindPurchaseReceiptByID(ctx context.Context, receiptID string) (*domain.PurchaseReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM purchase_receipts WHERE receipt_id = $1;`
	var m models.PurchaseReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID,
		&m.Number,
		&m.Date,
		&m.PurchaseOrderID,
		&m.Status,
		&m.BranchID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase receipt " + receiptID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase receipt "+receiptID, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, receipt_id, description, quantity, unit_price, tax_mode, tax_rate
		FROM purchase_receipt_items
		WHERE receipt_id = $1
		ORDER BY item_id;
	`, receiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for purchase receipt "+receiptID, err)
	}
	defer rows.Close()

	items := []models.PurchaseReceiptItem{}
	for rows.Next() {
		var item models.PurchaseReceiptItem
		if err := rows.Scan(&item.ItemID, &item.ReceiptID, &item.Description, &item.Quantity, &item.UnitPrice, &item.TaxMode, &item.TaxRate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase receipt item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase receipt item rows", err)
	}

	receipt := mapping.ToDomainPurchaseReceipt(m, items)
	return &receipt, nil
}
