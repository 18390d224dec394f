package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ansimaq-erp-backend/internal/domain"
)

// DeleteConfirmer issues single-use tokens for two-phase deletes. A delete
// request returns a token; the delete only runs when the same token comes
// back for the same target before the TTL expires.
type DeleteConfirmer struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]pendingDelete
	now     func() time.Time
}

type pendingDelete struct {
	token   string
	expires time.Time
}

func NewDeleteConfirmer(ttl time.Duration) *DeleteConfirmer {
	return &DeleteConfirmer{
		ttl:     ttl,
		pending: make(map[string]pendingDelete),
		now:     time.Now,
	}
}

// Request registers a pending delete for the target and returns its token.
// A repeated request replaces the previous token.
func (c *DeleteConfirmer) Request(kind, id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := uuid.NewString()
	c.pending[kind+":"+id] = pendingDelete{
		token:   token,
		expires: c.now().Add(c.ttl),
	}
	return token
}

// Consume validates and spends the token for the target. A token is good for
// exactly one confirmation.
func (c *DeleteConfirmer) Consume(kind, id, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := kind + ":" + id
	p, ok := c.pending[key]
	if !ok {
		return &domain.ValidationError{Field: "token", Reason: fmt.Sprintf("no pending delete for %s %s", kind, id)}
	}
	if c.now().After(p.expires) {
		delete(c.pending, key)
		return &domain.ValidationError{Field: "token", Reason: "confirmation token expired"}
	}
	if p.token != token {
		return &domain.ValidationError{Field: "token", Reason: "confirmation token mismatch"}
	}
	delete(c.pending, key)
	return nil
}
