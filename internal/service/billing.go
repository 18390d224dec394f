package service

import (
	"context"
	"strconv"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

const confirmKindBilling = "billing"

type billingService struct {
	store     repository.Store
	confirmer *DeleteConfirmer
}

func NewBillingService(store repository.Store, confirmer *DeleteConfirmer) BillingService {
	return &billingService{store: store, confirmer: confirmer}
}

func (s *billingService) validate(b *domain.BillingRecord) error {
	if b.Kind != domain.BillingRentInvoice {
		return &domain.ValidationError{Field: "kind", Reason: "only rent invoices are managed here; expense records follow their history entry"}
	}
	if b.Month < 1 || b.Month > 12 {
		return &domain.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	if b.Year < 1000 || b.Year > 9999 {
		return &domain.ValidationError{Field: "year", Reason: "must be a four-digit year"}
	}
	if _, err := rules.ParseDate(b.PaymentDate); err != nil {
		return &domain.ValidationError{Field: "payment_date", Reason: "expected yyyy-mm-dd"}
	}
	if b.Status == 0 {
		b.Status = domain.InvoicePending
	}
	if !b.Status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: "unknown invoice status"}
	}
	return nil
}

// CreateInvoice writes a rent invoice. The amount is always computed from the
// contract's terms; whatever the caller put in Amount is ignored.
func (s *billingService) CreateInvoice(ctx context.Context, b *domain.BillingRecord) error {
	if err := s.validate(b); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		contract, err := tx.Contracts().GetByFolio(ctx, b.Folio)
		if err != nil {
			return err
		}
		records, err := tx.Billing().ListByFolio(ctx, b.Folio)
		if err != nil {
			return err
		}
		first := rules.FirstInvoice(records, b.Year, b.Month, 0)
		amount, err := rules.ComputeRentInvoice(contract, first, b.OvertimeHours, b.OvertimeRate)
		if err != nil {
			return err
		}
		b.Amount = amount
		b.Expense = 0
		b.ServiceEntryID = nil
		b.EquipmentCode = contract.CurrentEquipment
		return tx.Billing().Create(ctx, b)
	})
}

// UpdateInvoice edits a rent invoice and recomputes the amount under the new
// period and overtime values.
func (s *billingService) UpdateInvoice(ctx context.Context, b *domain.BillingRecord) error {
	if err := s.validate(b); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Billing().GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		if !existing.IsRentInvoice() {
			return &domain.ValidationError{Field: "kind", Reason: "expense records follow their history entry"}
		}
		if existing.Folio != b.Folio {
			return &domain.ValidationError{Field: "folio", Reason: "invoices cannot move between contracts"}
		}
		contract, err := tx.Contracts().GetByFolio(ctx, b.Folio)
		if err != nil {
			return err
		}
		records, err := tx.Billing().ListByFolio(ctx, b.Folio)
		if err != nil {
			return err
		}
		first := rules.FirstInvoice(records, b.Year, b.Month, b.ID)
		amount, err := rules.ComputeRentInvoice(contract, first, b.OvertimeHours, b.OvertimeRate)
		if err != nil {
			return err
		}
		b.Amount = amount
		b.Expense = 0
		b.ServiceEntryID = nil
		b.EquipmentCode = existing.EquipmentCode
		return tx.Billing().Update(ctx, b)
	})
}

func (s *billingService) Get(ctx context.Context, id int32) (*domain.BillingRecord, error) {
	return s.store.Billing().GetByID(ctx, id)
}

func (s *billingService) ListByFolio(ctx context.Context, folio int64) ([]domain.BillingRecord, error) {
	return s.store.Billing().ListByFolio(ctx, folio)
}

func (s *billingService) RequestDelete(ctx context.Context, id int32) (string, error) {
	rec, err := s.store.Billing().GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !rec.IsRentInvoice() {
		return "", &domain.ValidationError{Field: "kind", Reason: "expense records follow their history entry"}
	}
	return s.confirmer.Request(confirmKindBilling, strconv.FormatInt(int64(id), 10)), nil
}

func (s *billingService) ConfirmDelete(ctx context.Context, id int32, token string) error {
	if err := s.confirmer.Consume(confirmKindBilling, strconv.FormatInt(int64(id), 10), token); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		rec, err := tx.Billing().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !rec.IsRentInvoice() {
			return &domain.ValidationError{Field: "kind", Reason: "expense records follow their history entry"}
		}
		return tx.Billing().Delete(ctx, id)
	})
}
