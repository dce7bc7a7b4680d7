package mapping

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/models"
)

// ToModelOrderRequest converts a domain order request to its model form
func ToModelOrderRequest(d domain.OrderRequest) models.OrderRequest {
	return models.OrderRequest{
		RequestID:       d.RequestID,
		Number:          d.Number,
		Date:            d.Date,
		SupplierName:    d.SupplierName,
		Status:          string(d.Status),
		PurchaseOrderID: d.PurchaseOrderID,
		BranchID:        d.BranchID,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		ApprovalNotes:   d.ApprovalNotes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrderRequest converts a model order request and its item rows to
// the domain form
func ToDomainOrderRequest(m models.OrderRequest, items []models.OrderRequestItem) domain.OrderRequest {
	domainItems := make([]domain.OrderRequestItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.OrderRequestItem{
			ItemID:      item.ItemID,
			RequestID:   item.RequestID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return domain.OrderRequest{
		RequestID:       m.RequestID,
		Number:          m.Number,
		Date:            m.Date,
		SupplierName:    m.SupplierName,
		Status:          domain.DocumentStatus(m.Status),
		PurchaseOrderID: m.PurchaseOrderID,
		BranchID:        m.BranchID,
		Items:           domainItems,
		ApprovalFields: domain.ApprovalFields{
			ApprovedBy:    m.ApprovedBy,
			ApprovedAt:    m.ApprovedAt,
			ApprovalNotes: m.ApprovalNotes,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrder converts a domain purchase order to its model form
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		OrderID:       d.OrderID,
		Number:        d.Number,
		Date:          d.Date,
		SupplierName:  d.SupplierName,
		Status:        string(d.Status),
		RequestID:     d.RequestID,
		BranchID:      d.BranchID,
		ApprovedBy:    d.ApprovedBy,
		ApprovedAt:    d.ApprovedAt,
		ApprovalNotes: d.ApprovalNotes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model purchase order and its item rows
// to the domain form
func ToDomainPurchaseOrder(m models.PurchaseOrder, items []models.PurchaseOrderItem) domain.PurchaseOrder {
	domainItems := make([]domain.PurchaseOrderItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.PurchaseOrderItem{
			ItemID:      item.ItemID,
			OrderID:     item.OrderID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return domain.PurchaseOrder{
		OrderID:      m.OrderID,
		Number:       m.Number,
		Date:         m.Date,
		SupplierName: m.SupplierName,
		Status:       domain.DocumentStatus(m.Status),
		RequestID:    m.RequestID,
		BranchID:     m.BranchID,
		Items:        domainItems,
		ApprovalFields: domain.ApprovalFields{
			ApprovedBy:    m.ApprovedBy,
			ApprovedAt:    m.ApprovedAt,
			ApprovalNotes: m.ApprovalNotes,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseReceipt converts a domain receipt to its model form
func ToModelPurchaseReceipt(d domain.PurchaseReceipt) models.PurchaseReceipt {
	return models.PurchaseReceipt{
		ReceiptID:       d.ReceiptID,
		Number:          d.Number,
		Date:            d.Date,
		PurchaseOrderID: d.PurchaseOrderID,
		Status:          string(d.Status),
		BranchID:        d.BranchID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseReceipt converts a model receipt and its item rows to
// the domain form
func ToDomainPurchaseReceipt(m models.PurchaseReceipt, items []models.PurchaseReceiptItem) domain.PurchaseReceipt {
	domainItems := make([]domain.PurchaseReceiptItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.PurchaseReceiptItem{
			ItemID:      item.ItemID,
			ReceiptID:   item.ReceiptID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxMode:     domain.TaxMode(item.TaxMode),
			TaxRate:     item.TaxRate,
		}
	}
	return domain.PurchaseReceipt{
		ReceiptID:       m.ReceiptID,
		Number:          m.Number,
		Date:            m.Date,
		PurchaseOrderID: m.PurchaseOrderID,
		Status:          domain.DocumentStatus(m.Status),
		BranchID:        m.BranchID,
		Items:           domainItems,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoice converts a domain invoice to its model form
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		Number:         d.Number,
		Date:           d.Date,
		ReceiptID:      d.ReceiptID,
		SupplierName:   d.SupplierName,
		DPP:            d.DPP,
		Tax:            d.Tax,
		Total:          d.Total,
		InventoryCoaID: d.InventoryCoaID,
		TaxInputCoaID:  d.TaxInputCoaID,
		PayableCoaID:   d.PayableCoaID,
		BranchID:       d.BranchID,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model invoice to its domain form
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		Number:         m.Number,
		Date:           m.Date,
		ReceiptID:      m.ReceiptID,
		SupplierName:   m.SupplierName,
		DPP:            m.DPP,
		Tax:            m.Tax,
		Total:          m.Total,
		InventoryCoaID: m.InventoryCoaID,
		TaxInputCoaID:  m.TaxInputCoaID,
		PayableCoaID:   m.PayableCoaID,
		BranchID:       m.BranchID,
		Status:         domain.DocumentStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
