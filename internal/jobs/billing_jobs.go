package jobs

import (
	"context"
	"fmt"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/logger"
	"ansimaq-erp-backend/internal/rules"
)

// GenerateMonthlyInvoices writes one rent invoice per active contract for the
// current period, skipping contracts already invoiced for it. The amount is
// computed by the billing service exactly as a hand-entered invoice would be.
func (jr *JobRunner) GenerateMonthlyInvoices() {
	jr.runWithRecovery("GenerateMonthlyInvoices", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		year, month := now.Year(), int(now.Month())
		dueDate := fmt.Sprintf("%04d-%02d-%02d", year, month, jr.config.Billing.InvoiceDueDay)

		contracts, err := jr.store.Contracts().List(ctx)
		if err != nil {
			logger.Error("Failed to list contracts", "error", err)
			return
		}

		generated := 0
		for i := range contracts {
			c := &contracts[i]
			if !rules.IsActive(c, now) {
				continue
			}

			records, err := jr.store.Billing().ListByFolio(ctx, c.Folio)
			if err != nil {
				logger.Error("Failed to list billing records", "folio", c.Folio, "error", err)
				continue
			}
			if hasInvoiceForPeriod(records, year, month) {
				continue
			}

			invoice := &domain.BillingRecord{
				Kind:        domain.BillingRentInvoice,
				Folio:       c.Folio,
				Month:       month,
				Year:        year,
				PaymentDate: dueDate,
				Status:      domain.InvoicePending,
			}
			if err := jr.services.Billing.CreateInvoice(ctx, invoice); err != nil {
				logger.Error("Failed to generate invoice", "folio", c.Folio, "error", err)
				continue
			}
			generated++
		}

		logger.Info("Monthly invoices generated",
			"count", generated,
			"period", fmt.Sprintf("%04d-%02d", year, month))
	})
}

func hasInvoiceForPeriod(records []domain.BillingRecord, year, month int) bool {
	for i := range records {
		r := &records[i]
		if r.IsRentInvoice() && r.Year == year && r.Month == month {
			return true
		}
	}
	return false
}

// SendOverdueReminders emails clients whose rent invoices are pending past
// their payment date.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.Billing().ListOverduePending(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue invoices", "error", err)
			return
		}

		sent := 0
		for i := range overdue {
			inv := &overdue[i]
			contract, err := jr.store.Contracts().GetByFolio(ctx, inv.Folio)
			if err != nil {
				logger.Error("Failed to load contract for overdue invoice", "folio", inv.Folio, "error", err)
				continue
			}
			client, err := jr.store.Clients().GetByTaxID(ctx, contract.ClientTaxID)
			if err != nil {
				logger.Error("Failed to load client for overdue invoice", "tax_id", contract.ClientTaxID, "error", err)
				continue
			}
			if client.Email == "" {
				continue
			}
			if err := jr.services.Email.SendOverdueInvoiceReminder(ctx, client.Email, client.CompanyName, inv.Folio, inv.Amount, inv.PaymentDate); err != nil {
				logger.Error("Failed to send overdue reminder", "folio", inv.Folio, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue reminders sent", "count", sent, "overdue", len(overdue))
	})
}

// SendExpiryNotices emails clients whose contracts end within the configured
// notice window.
func (jr *JobRunner) SendExpiryNotices() {
	jr.runWithRecovery("SendExpiryNotices", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		cutoff := now.AddDate(0, 0, jr.config.Billing.ExpiryNoticeDays)

		contracts, err := jr.store.Contracts().List(ctx)
		if err != nil {
			logger.Error("Failed to list contracts", "error", err)
			return
		}

		sent := 0
		for i := range contracts {
			c := &contracts[i]
			if c.Indefinite() || !rules.IsActive(c, now) {
				continue
			}
			end, err := rules.ParseDate(c.EndDate)
			if err != nil || end.After(cutoff) {
				continue
			}
			client, err := jr.store.Clients().GetByTaxID(ctx, c.ClientTaxID)
			if err != nil {
				logger.Error("Failed to load client for expiring contract", "folio", c.Folio, "error", err)
				continue
			}
			if client.Email == "" {
				continue
			}
			if err := jr.services.Email.SendContractExpiryNotice(ctx, client.Email, client.CompanyName, c.Folio, c.EndDate); err != nil {
				logger.Error("Failed to send expiry notice", "folio", c.Folio, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Expiry notices sent", "count", sent)
	})
}
