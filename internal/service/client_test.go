package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func TestClientCreateNormalizesTaxID(t *testing.T) {
	store := newMockStore()
	svc := NewClientService(store, newTestConfirmer())
	ctx := context.Background()

	store.clients.On("Create", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.TaxID == "123456789"
	})).Return(nil)

	c := &domain.Client{TaxID: "12.345.678-9", CompanyName: "Constructora Sur"}
	require.NoError(t, svc.Create(ctx, c))

	assert.Equal(t, "123456789", c.TaxID)
	store.assertExpectations(t)
}

func TestClientCreateRejectsBadTaxID(t *testing.T) {
	svc := NewClientService(newMockStore(), newTestConfirmer())

	c := &domain.Client{TaxID: "12A45678-9", CompanyName: "Constructora Sur"}
	err := svc.Create(context.Background(), c)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestClientDeleteBlockedWhileReferenced(t *testing.T) {
	store := newMockStore()
	svc := NewClientService(store, newTestConfirmer())
	ctx := context.Background()

	store.clients.On("GetByTaxID", ctx, "123456789").
		Return(&domain.Client{TaxID: "123456789"}, nil)
	store.contracts.On("CountByClient", ctx, "123456789").Return(int32(2), nil)

	_, err := svc.RequestDelete(ctx, "123456789")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestClientUpdateBlockedTaxIDChangeWhileReferenced(t *testing.T) {
	store := newMockStore()
	svc := NewClientService(store, newTestConfirmer())
	ctx := context.Background()

	store.contracts.On("CountByClient", ctx, "123456789").Return(int32(1), nil)

	c := &domain.Client{TaxID: "987654321", CompanyName: "Constructora Sur"}
	err := svc.Update(ctx, "123456789", c)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	store.clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
