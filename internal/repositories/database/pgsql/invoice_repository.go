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

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, number, date, receipt_id, supplier_name, dpp, tax, total,
	       inventory_coa_id, tax_input_coa_id, payable_coa_id, branch_id, status,
	       created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.Number,
		m.Date,
		m.ReceiptID,
		m.SupplierName,
		m.DPP,
		m.Tax,
		m.Total,
		m.InventoryCoaID,
		m.TaxInputCoaID,
		m.PayableCoaID,
		m.BranchID,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.Number,
		&m.Date,
		&m.ReceiptID,
		&m.SupplierName,
		&m.DPP,
		&m.Tax,
		&m.Total,
		&m.InventoryCoaID,
		&m.TaxInputCoaID,
		&m.PayableCoaID,
		&m.BranchID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice " + invoiceID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}
