package repo

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain"
)

type SessionRepo interface {
	Save(ctx context.Context, rec *domain.SessionRecord) error
	FindByTransactionID(ctx context.Context, txnID string) (*domain.SessionRecord, error)
	UpdateStatus(ctx context.Context, txnID string, status domain.SessionStatus) error
	// FindExpiredPending returns pending sessions whose advisory expiry
	// passed before the given instant.
	FindExpiredPending(ctx context.Context, before time.Time) ([]domain.SessionRecord, error)
}

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SessionRecord
}

func NewSessionRepo() SessionRepo {
	return &sessionRepo{sessions: make(map[string]*domain.SessionRecord)}
}

func (r *sessionRepo) Save(ctx context.Context, rec *domain.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.sessions[rec.Session.TransactionID] = &cp
	return nil
}

func (r *sessionRepo) FindByTransactionID(ctx context.Context, txnID string) (*domain.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.sessions[txnID]
	if !ok {
		return nil, nil // not found
	}
	cp := *rec
	return &cp, nil
}

func (r *sessionRepo) UpdateStatus(ctx context.Context, txnID string, status domain.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.sessions[txnID]; ok {
		rec.Session.Status = status
	}
	return nil
}

func (r *sessionRepo) FindExpiredPending(ctx context.Context, before time.Time) ([]domain.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.SessionRecord
	for _, rec := range r.sessions {
		if rec.Session.Status == domain.SessionPending && rec.Session.ExpiresAt.Before(before) {
			out = append(out, *rec)
		}
	}
	return out, nil
}
