package service

import (
	"context"
	"fmt"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

const confirmKindEquipment = "equipment"

type equipmentService struct {
	store     repository.Store
	confirmer *DeleteConfirmer
}

func NewEquipmentService(store repository.Store, confirmer *DeleteConfirmer) EquipmentService {
	return &equipmentService{store: store, confirmer: confirmer}
}

func (s *equipmentService) Create(ctx context.Context, e *domain.Equipment) error {
	if e.UnitCode == "" {
		return &domain.ValidationError{Field: "unit_code", Reason: "must not be empty"}
	}
	if e.ModelName == "" {
		return &domain.ValidationError{Field: "model_name", Reason: "must not be empty"}
	}
	// New units always enter the pool available, whatever the caller sent.
	e.State = domain.EquipmentAvailable
	return s.store.Equipment().Create(ctx, e)
}

func (s *equipmentService) Get(ctx context.Context, unitCode string) (*domain.Equipment, error) {
	return s.store.Equipment().GetByCode(ctx, unitCode)
}

func (s *equipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.store.Equipment().List(ctx)
}

// Update edits unit data including a manual state override from the
// equipment screen.
func (s *equipmentService) Update(ctx context.Context, prevCode string, e *domain.Equipment) error {
	if e.UnitCode == "" {
		return &domain.ValidationError{Field: "unit_code", Reason: "must not be empty"}
	}
	current, err := s.store.Equipment().GetByCode(ctx, prevCode)
	if err != nil {
		return err
	}
	if err := rules.Override(current, e.State); err != nil {
		return err
	}
	current.UnitCode = e.UnitCode
	current.ModelName = e.ModelName
	if err := s.store.Equipment().Update(ctx, prevCode, current); err != nil {
		return err
	}
	*e = *current
	return nil
}

func (s *equipmentService) RequestDelete(ctx context.Context, unitCode string) (string, error) {
	if _, err := s.store.Equipment().GetByCode(ctx, unitCode); err != nil {
		return "", err
	}
	n, err := s.store.Contracts().CountByEquipment(ctx, unitCode)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return "", &domain.ValidationError{
			Field:  "unit_code",
			Reason: fmt.Sprintf("equipment is assigned to %d contract(s)", n),
		}
	}
	return s.confirmer.Request(confirmKindEquipment, unitCode), nil
}

func (s *equipmentService) ConfirmDelete(ctx context.Context, unitCode, token string) error {
	if err := s.confirmer.Consume(confirmKindEquipment, unitCode, token); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		n, err := tx.Contracts().CountByEquipment(ctx, unitCode)
		if err != nil {
			return err
		}
		if n > 0 {
			return &domain.ValidationError{
				Field:  "unit_code",
				Reason: fmt.Sprintf("equipment is assigned to %d contract(s)", n),
			}
		}
		return tx.Equipment().Delete(ctx, unitCode)
	})
}
