package service

import (
	"context"
	"errors"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

type historyService struct {
	store repository.Store
}

func NewHistoryService(store repository.Store) HistoryService {
	return &historyService{store: store}
}

func (s *historyService) validate(e *domain.ServiceEntry) error {
	if !e.Type.Valid() {
		return &domain.ValidationError{Field: "type", Reason: "unknown service type"}
	}
	if _, err := rules.ParseDate(e.ServiceDate); err != nil {
		return &domain.ValidationError{Field: "service_date", Reason: "expected yyyy-mm-dd"}
	}
	if e.EquipmentCode == "" {
		return &domain.ValidationError{Field: "equipment_code", Reason: "must not be empty"}
	}
	if e.HourMeter < 0 {
		return &domain.ValidationError{Field: "hour_meter", Reason: "must be non-negative"}
	}
	if e.Expense < 0 {
		return &domain.ValidationError{Field: "expense", Reason: "must be non-negative"}
	}
	if !e.Type.HasExpense() && e.Expense != 0 {
		return &domain.ValidationError{Field: "expense", Reason: "only maintenance and repair entries carry an expense"}
	}
	return nil
}

// Create writes a history entry with its side effects: maintenance and
// repair costs accumulate on the contract and produce an expense billing
// record; an entry against a different unit swaps the contract onto it.
func (s *historyService) Create(ctx context.Context, e *domain.ServiceEntry) error {
	if err := s.validate(e); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		contract, err := tx.Contracts().GetByFolio(ctx, e.Folio)
		if err != nil {
			return err
		}

		if e.Type == domain.ServiceDelivery {
			n, err := tx.History().CountDeliveries(ctx, e.Folio)
			if err != nil {
				return err
			}
			if n > 0 {
				return &domain.ValidationError{Field: "type", Reason: "contract already has its delivery entry"}
			}
		}

		contractDirty := false
		if e.EquipmentCode != contract.CurrentEquipment {
			if err := s.swapEquipment(ctx, tx, contract, e.EquipmentCode); err != nil {
				return err
			}
			contractDirty = true
		}

		if err := tx.History().Create(ctx, e); err != nil {
			return err
		}

		if e.Type.HasExpense() && e.Expense > 0 {
			if err := rules.ApplyServiceExpense(contract, e.Expense); err != nil {
				return err
			}
			contractDirty = true
			if err := tx.Billing().Create(ctx, expenseRecordFor(e)); err != nil {
				return err
			}
		}

		if contractDirty {
			return tx.Contracts().Update(ctx, contract)
		}
		return nil
	})
}

func (s *historyService) Get(ctx context.Context, id int32) (*domain.ServiceEntry, error) {
	return s.store.History().GetByID(ctx, id)
}

func (s *historyService) ListByFolio(ctx context.Context, folio int64) ([]domain.ServiceEntry, error) {
	return s.store.History().ListByFolio(ctx, folio)
}

// Update edits an entry and reconciles its side effects: the previously
// applied expense is reverted and the new one applied, so repeating the same
// edit leaves the contract accumulator unchanged.
func (s *historyService) Update(ctx context.Context, e *domain.ServiceEntry) error {
	if err := s.validate(e); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		prev, err := tx.History().GetByID(ctx, e.ID)
		if err != nil {
			return err
		}
		if prev.Folio != e.Folio {
			return &domain.ValidationError{Field: "folio", Reason: "entries cannot move between contracts"}
		}
		// The delivery entry anchors the contract; its type is fixed.
		if prev.Type == domain.ServiceDelivery && e.Type != domain.ServiceDelivery {
			return &domain.ValidationError{Field: "type", Reason: "the delivery entry cannot change type"}
		}
		if prev.Type != domain.ServiceDelivery && e.Type == domain.ServiceDelivery {
			return &domain.ValidationError{Field: "type", Reason: "contract already has its delivery entry"}
		}

		contract, err := tx.Contracts().GetByFolio(ctx, e.Folio)
		if err != nil {
			return err
		}

		contractDirty := false
		if e.EquipmentCode != prev.EquipmentCode && prev.EquipmentCode == contract.CurrentEquipment {
			if err := s.swapEquipment(ctx, tx, contract, e.EquipmentCode); err != nil {
				return err
			}
			contractDirty = true
		}

		oldExpense := int64(0)
		if prev.Type.HasExpense() {
			oldExpense = prev.Expense
		}
		newExpense := int64(0)
		if e.Type.HasExpense() {
			newExpense = e.Expense
		}
		if oldExpense != newExpense {
			rules.RevertServiceExpense(contract, oldExpense)
			if err := rules.ApplyServiceExpense(contract, newExpense); err != nil {
				return err
			}
			contractDirty = true
		}

		if err := s.reconcileExpenseRecord(ctx, tx, prev, e, oldExpense, newExpense); err != nil {
			return err
		}

		if err := tx.History().Update(ctx, e); err != nil {
			return err
		}
		if contractDirty {
			return tx.Contracts().Update(ctx, contract)
		}
		return nil
	})
}

// Delete removes an entry and rolls back its side effects. The delivery
// entry is not deletable while its contract exists; deleting the entry that
// swapped the contract onto its current unit restores the previous unit.
func (s *historyService) Delete(ctx context.Context, id int32) error {
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		entry, err := tx.History().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry.Type == domain.ServiceDelivery {
			return &domain.ValidationError{Field: "type", Reason: "the delivery entry cannot be deleted while the contract exists"}
		}

		contract, err := tx.Contracts().GetByFolio(ctx, entry.Folio)
		if err != nil {
			return err
		}

		contractDirty := false
		if entry.Type.HasExpense() && entry.Expense > 0 {
			rules.RevertServiceExpense(contract, entry.Expense)
			contractDirty = true
			if err := tx.Billing().DeleteByServiceEntry(ctx, entry.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}

		// Undo the swap only when this entry put the contract on its current
		// unit; older swaps in the middle of the history stay as written.
		if entry.EquipmentCode == contract.CurrentEquipment {
			prev, err := tx.History().LastBefore(ctx, entry.Folio, entry.ID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if prev != nil && prev.EquipmentCode != entry.EquipmentCode {
				current, err := tx.Equipment().GetByCode(ctx, entry.EquipmentCode)
				if err != nil {
					return err
				}
				restored, err := tx.Equipment().GetByCode(ctx, prev.EquipmentCode)
				if err != nil {
					return err
				}
				rules.Release(current)
				rules.RestoreRented(restored)
				if err := tx.Equipment().Update(ctx, current.UnitCode, current); err != nil {
					return err
				}
				if err := tx.Equipment().Update(ctx, restored.UnitCode, restored); err != nil {
					return err
				}
				contract.CurrentEquipment = prev.EquipmentCode
				contractDirty = true
			}
		}

		if err := tx.History().Delete(ctx, entry.ID); err != nil {
			return err
		}
		if contractDirty {
			return tx.Contracts().Update(ctx, contract)
		}
		return nil
	})
}

// swapEquipment moves the contract onto unitCode: the old unit is released,
// the new one rented, and the contract's current assignment updated. The
// caller persists the contract.
func (s *historyService) swapEquipment(ctx context.Context, tx repository.Store, contract *domain.Contract, unitCode string) error {
	oldUnit, err := tx.Equipment().GetByCode(ctx, contract.CurrentEquipment)
	if err != nil {
		return err
	}
	newUnit, err := tx.Equipment().GetByCode(ctx, unitCode)
	if err != nil {
		return err
	}
	rules.Reassign(oldUnit, newUnit)
	if err := tx.Equipment().Update(ctx, oldUnit.UnitCode, oldUnit); err != nil {
		return err
	}
	if err := tx.Equipment().Update(ctx, newUnit.UnitCode, newUnit); err != nil {
		return err
	}
	contract.CurrentEquipment = unitCode
	return nil
}

// reconcileExpenseRecord keeps the linked expense billing row in step with an
// edited entry: created, rewritten or removed as the expense comes and goes.
func (s *historyService) reconcileExpenseRecord(ctx context.Context, tx repository.Store, prev, e *domain.ServiceEntry, oldExpense, newExpense int64) error {
	switch {
	case oldExpense > 0 && newExpense > 0:
		rec, err := tx.Billing().GetByServiceEntry(ctx, e.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return tx.Billing().Create(ctx, expenseRecordFor(e))
			}
			return err
		}
		rec.EquipmentCode = e.EquipmentCode
		rec.Expense = newExpense
		rec.Month, rec.Year = expensePeriod(e)
		return tx.Billing().Update(ctx, rec)
	case oldExpense > 0:
		if err := tx.Billing().DeleteByServiceEntry(ctx, e.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return nil
	case newExpense > 0:
		return tx.Billing().Create(ctx, expenseRecordFor(e))
	}
	return nil
}

func expenseRecordFor(e *domain.ServiceEntry) *domain.BillingRecord {
	id := e.ID
	month, year := expensePeriod(e)
	return &domain.BillingRecord{
		Kind:           domain.BillingExpense,
		Folio:          e.Folio,
		EquipmentCode:  e.EquipmentCode,
		ServiceEntryID: &id,
		Month:          month,
		Year:           year,
		PaymentDate:    e.ServiceDate,
		Expense:        e.Expense,
	}
}

func expensePeriod(e *domain.ServiceEntry) (month, year int) {
	d, err := rules.ParseDate(e.ServiceDate)
	if err != nil {
		return 0, 0
	}
	return int(d.Month()), d.Year()
}
