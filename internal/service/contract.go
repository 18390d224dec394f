package service

import (
	"context"
	"strconv"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

const confirmKindContract = "contract"

type contractService struct {
	store     repository.Store
	confirmer *DeleteConfirmer
	now       func() time.Time
}

func NewContractService(store repository.Store, confirmer *DeleteConfirmer) ContractService {
	return &contractService{store: store, confirmer: confirmer, now: time.Now}
}

func (s *contractService) validate(c *domain.Contract) error {
	if c.CurrentEquipment == "" {
		return &domain.ValidationError{Field: "equipment", Reason: "must not be empty"}
	}
	taxID, err := rules.NormalizeTaxID(c.ClientTaxID)
	if err != nil {
		return err
	}
	c.ClientTaxID = taxID
	if c.EndDate == "" {
		c.EndDate = domain.IndefiniteEndDate
	}
	if err := rules.ValidateDateRange(c.StartDate, c.EndDate); err != nil {
		return err
	}
	if c.MonthlyRent < 0 {
		return &domain.ValidationError{Field: "monthly_rent", Reason: "must be non-negative"}
	}
	if c.ShippingFee < 0 {
		return &domain.ValidationError{Field: "shipping_fee", Reason: "must be non-negative"}
	}
	if c.ContractedHours < 0 {
		return &domain.ValidationError{Field: "contracted_hours", Reason: "must be non-negative"}
	}
	return nil
}

func (s *contractService) Create(ctx context.Context, c *domain.Contract, deliveryHourMeter int32) (*domain.Contract, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}
	if deliveryHourMeter < 0 {
		return nil, &domain.ValidationError{Field: "hour_meter", Reason: "must be non-negative"}
	}
	// Folios are numbered under the year the contract is entered, which can
	// differ from the start date's year for contracts booked in advance.
	year := s.now().Year()

	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Clients().GetByTaxID(ctx, c.ClientTaxID); err != nil {
			return err
		}

		folios, err := tx.Contracts().ListFoliosByYear(ctx, year)
		if err != nil {
			return err
		}
		folio, err := rules.NextFolio(year, folios)
		if err != nil {
			return err
		}

		equip, err := tx.Equipment().GetByCode(ctx, c.CurrentEquipment)
		if err != nil {
			return err
		}
		if err := rules.RentForNewContract(equip); err != nil {
			return err
		}
		if err := tx.Equipment().Update(ctx, equip.UnitCode, equip); err != nil {
			return err
		}

		c.Folio = folio
		c.AccumulatedExpense = 0
		if err := tx.Contracts().Create(ctx, c); err != nil {
			return err
		}

		delivery := &domain.ServiceEntry{
			Folio:         c.Folio,
			EquipmentCode: c.CurrentEquipment,
			Type:          domain.ServiceDelivery,
			ServiceDate:   c.StartDate,
			HourMeter:     deliveryHourMeter,
		}
		return tx.History().Create(ctx, delivery)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contractService) Get(ctx context.Context, folio int64) (*domain.Contract, error) {
	return s.store.Contracts().GetByFolio(ctx, folio)
}

func (s *contractService) List(ctx context.Context, activeOnly bool) ([]domain.Contract, error) {
	contracts, err := s.store.Contracts().List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return contracts, nil
	}
	today := s.now()
	active := contracts[:0]
	for i := range contracts {
		if rules.IsActive(&contracts[i], today) {
			active = append(active, contracts[i])
		}
	}
	return active, nil
}

// Update edits contract terms. Changing the assigned equipment releases the
// old unit, rents the new one and rewrites the delivery entry, atomically.
func (s *contractService) Update(ctx context.Context, c *domain.Contract) error {
	if err := s.validate(c); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Contracts().GetByFolio(ctx, c.Folio)
		if err != nil {
			return err
		}

		if c.ClientTaxID != existing.ClientTaxID {
			if _, err := tx.Clients().GetByTaxID(ctx, c.ClientTaxID); err != nil {
				return err
			}
		}

		if c.CurrentEquipment != existing.CurrentEquipment {
			oldUnit, err := tx.Equipment().GetByCode(ctx, existing.CurrentEquipment)
			if err != nil {
				return err
			}
			newUnit, err := tx.Equipment().GetByCode(ctx, c.CurrentEquipment)
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

			entries, err := tx.History().ListByFolio(ctx, c.Folio)
			if err != nil {
				return err
			}
			for i := range entries {
				if entries[i].Type == domain.ServiceDelivery {
					entries[i].EquipmentCode = c.CurrentEquipment
					if err := tx.History().Update(ctx, &entries[i]); err != nil {
						return err
					}
					break
				}
			}
		}

		// The accumulator belongs to the history side effects, never the form.
		c.AccumulatedExpense = existing.AccumulatedExpense
		return tx.Contracts().Update(ctx, c)
	})
}

func (s *contractService) RequestDelete(ctx context.Context, folio int64) (string, error) {
	if _, err := s.store.Contracts().GetByFolio(ctx, folio); err != nil {
		return "", err
	}
	return s.confirmer.Request(confirmKindContract, strconv.FormatInt(folio, 10)), nil
}

// ConfirmDelete removes the contract with its history and billing rows and
// returns the assigned equipment to the available pool.
func (s *contractService) ConfirmDelete(ctx context.Context, folio int64, token string) error {
	if err := s.confirmer.Consume(confirmKindContract, strconv.FormatInt(folio, 10), token); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		c, err := tx.Contracts().GetByFolio(ctx, folio)
		if err != nil {
			return err
		}
		if err := tx.Billing().DeleteByFolio(ctx, folio); err != nil {
			return err
		}
		if err := tx.History().DeleteByFolio(ctx, folio); err != nil {
			return err
		}
		equip, err := tx.Equipment().GetByCode(ctx, c.CurrentEquipment)
		if err != nil {
			return err
		}
		rules.Release(equip)
		if err := tx.Equipment().Update(ctx, equip.UnitCode, equip); err != nil {
			return err
		}
		return tx.Contracts().Delete(ctx, folio)
	})
}
