package service

import (
	"context"
	"fmt"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

const confirmKindClient = "client"

type clientService struct {
	store     repository.Store
	confirmer *DeleteConfirmer
}

func NewClientService(store repository.Store, confirmer *DeleteConfirmer) ClientService {
	return &clientService{store: store, confirmer: confirmer}
}

func (s *clientService) validate(c *domain.Client) error {
	taxID, err := rules.NormalizeTaxID(c.TaxID)
	if err != nil {
		return err
	}
	c.TaxID = taxID
	if c.RepresentativeTaxID != "" {
		repID, err := rules.NormalizeTaxID(c.RepresentativeTaxID)
		if err != nil {
			return &domain.ValidationError{Field: "representative_tax_id", Reason: "must contain only digits after removing separators"}
		}
		c.RepresentativeTaxID = repID
	}
	if c.CompanyName == "" {
		return &domain.ValidationError{Field: "company_name", Reason: "must not be empty"}
	}
	return nil
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if err := s.validate(c); err != nil {
		return err
	}
	return s.store.Clients().Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, taxID string) (*domain.Client, error) {
	return s.store.Clients().GetByTaxID(ctx, taxID)
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.store.Clients().List(ctx)
}

func (s *clientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	return s.store.Clients().Search(ctx, query)
}

func (s *clientService) Update(ctx context.Context, prevTaxID string, c *domain.Client) error {
	if err := s.validate(c); err != nil {
		return err
	}
	if c.TaxID != prevTaxID {
		// Contracts reference the client by tax id; don't strand them.
		n, err := s.store.Contracts().CountByClient(ctx, prevTaxID)
		if err != nil {
			return err
		}
		if n > 0 {
			return &domain.ValidationError{
				Field:  "tax_id",
				Reason: fmt.Sprintf("cannot change tax id while %d contract(s) reference it", n),
			}
		}
	}
	return s.store.Clients().Update(ctx, prevTaxID, c)
}

func (s *clientService) RequestDelete(ctx context.Context, taxID string) (string, error) {
	if _, err := s.store.Clients().GetByTaxID(ctx, taxID); err != nil {
		return "", err
	}
	n, err := s.store.Contracts().CountByClient(ctx, taxID)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return "", &domain.ValidationError{
			Field:  "tax_id",
			Reason: fmt.Sprintf("client has %d contract(s)", n),
		}
	}
	return s.confirmer.Request(confirmKindClient, taxID), nil
}

func (s *clientService) ConfirmDelete(ctx context.Context, taxID, token string) error {
	if err := s.confirmer.Consume(confirmKindClient, taxID, token); err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		n, err := tx.Contracts().CountByClient(ctx, taxID)
		if err != nil {
			return err
		}
		if n > 0 {
			return &domain.ValidationError{
				Field:  "tax_id",
				Reason: fmt.Sprintf("client has %d contract(s)", n),
			}
		}
		return tx.Clients().Delete(ctx, taxID)
	})
}
