package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmerTokenSingleUse(t *testing.T) {
	c := NewDeleteConfirmer(time.Minute)

	token := c.Request("equipment", "G-100")
	require.NoError(t, c.Consume("equipment", "G-100", token))

	// Spent tokens do not work twice.
	assert.Error(t, c.Consume("equipment", "G-100", token))
}

func TestConfirmerTokenBoundToTarget(t *testing.T) {
	c := NewDeleteConfirmer(time.Minute)

	token := c.Request("equipment", "G-100")

	assert.Error(t, c.Consume("equipment", "G-200", token))
	assert.Error(t, c.Consume("client", "G-100", token))
	assert.NoError(t, c.Consume("equipment", "G-100", token))
}

func TestConfirmerTokenMismatch(t *testing.T) {
	c := NewDeleteConfirmer(time.Minute)

	c.Request("equipment", "G-100")

	assert.Error(t, c.Consume("equipment", "G-100", "not-the-token"))
}

func TestConfirmerTokenExpires(t *testing.T) {
	c := NewDeleteConfirmer(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	token := c.Request("equipment", "G-100")

	now = now.Add(2 * time.Minute)
	assert.Error(t, c.Consume("equipment", "G-100", token))
}

func TestConfirmerRepeatRequestReplacesToken(t *testing.T) {
	c := NewDeleteConfirmer(time.Minute)

	first := c.Request("equipment", "G-100")
	second := c.Request("equipment", "G-100")

	assert.Error(t, c.Consume("equipment", "G-100", first))
	// The failed attempt with the stale token does not burn the live one.
	assert.NoError(t, c.Consume("equipment", "G-100", second))
}
