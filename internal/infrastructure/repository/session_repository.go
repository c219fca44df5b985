package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/repository"
)

// memorySessionRepository keeps sessions in process memory. Invoices are
// never persisted past the export action, so a mutex-guarded map is the
// whole storage layer.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.InvoiceState
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() repository.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]*entity.InvoiceState),
	}
}

func (r *memorySessionRepository) Save(ctx context.Context, state *entity.InvoiceState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[state.ID] = state.Clone()
	return nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return state.Clone(), nil
}

func (r *memorySessionRepository) List(ctx context.Context) ([]*entity.InvoiceState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.InvoiceState, 0, len(r.sessions))
	for _, state := range r.sessions {
		out = append(out, state.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
