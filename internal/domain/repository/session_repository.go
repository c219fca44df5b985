package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
)

// SessionRepository stores the editing sessions of live invoices. Sessions
// exist only for the lifetime of the process: nothing here is durable, an
// export snapshots a session into a document and that is the only output.
type SessionRepository interface {
	// Save inserts or replaces a session state.
	Save(ctx context.Context, state *entity.InvoiceState) error

	// GetByID returns a session, or nil without error when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceState, error)

	// List returns all open sessions ordered by creation time.
	List(ctx context.Context) ([]*entity.InvoiceState, error)

	// Delete removes a session; deleting an absent session is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
