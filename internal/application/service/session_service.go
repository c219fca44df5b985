package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/repository"
	"github.com/bitsphere-automation/LD-InvGen/pkg/apperror"
	"github.com/bitsphere-automation/LD-InvGen/pkg/money"
	"github.com/bitsphere-automation/LD-InvGen/pkg/pagination"
)

// SessionService handles invoice editing sessions
type SessionService struct {
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, now: time.Now}
}

// SessionView is a session state together with everything derived from it:
// computed totals, the display form of the invoice number, and the currency
// symbol. Derived values are recomputed on every read so they can never go
// stale against the state they came from.
type SessionView struct {
	State          *entity.InvoiceState `json:"state"`
	Totals         entity.Totals        `json:"totals"`
	NumberDisplay  string               `json:"number_display"`
	CurrencySymbol string               `json:"currency_symbol"`
}

func newSessionView(state *entity.InvoiceState) *SessionView {
	return &SessionView{
		State:          state,
		Totals:         entity.ComputeTotals(state.Items, state.GSTPercent, state.InvoiceType, state.PaymentMade),
		NumberDisplay:  entity.FormatInvoiceNumber(state.InvoiceNumber),
		CurrencySymbol: money.SymbolFor(state.Currency),
	}
}

// CreateSession opens a new session with the editor's defaults.
func (s *SessionService) CreateSession(ctx context.Context) (*SessionView, error) {
	state := entity.NewInvoiceState(s.now())
	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return newSessionView(state), nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	return newSessionView(state), nil
}

// ListSessions lists open sessions ordered by creation time.
func (s *SessionService) ListSessions(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[SessionView], error) {
	states, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	total := int64(len(states))
	start := params.Offset()
	if start > len(states) {
		start = len(states)
	}
	end := start + params.PerPage
	if end > len(states) {
		end = len(states)
	}

	views := make([]SessionView, 0, end-start)
	for _, state := range states[start:end] {
		views = append(views, *newSessionView(state))
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(views, pag), nil
}

// ClientInput carries a partial bill-to update; nil fields are left as-is.
type ClientInput struct {
	Name    *string
	Address *string
	City    *string
	State   *string
	Country *string
	Zip     *string
}

// ProjectInput carries a partial project update; nil fields are left as-is.
type ProjectInput struct {
	Name *string
	Code *string
	Type *string
}

// ItemInput is one line item as submitted by the editor.
type ItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// UpdateSessionInput represents a partial session update. Nil fields are
// left untouched; Items, when present, replaces the whole item list.
type UpdateSessionInput struct {
	ID           uuid.UUID
	Date         *time.Time
	SerialNumber *int
	Currency     *string
	InvoiceType  *string
	GSTPercent   *float64
	PaymentMade  *float64
	PreparedBy   *string
	VerifiedBy   *string
	Client       *ClientInput
	Project      *ProjectInput
	Items        *[]ItemInput
}

// UpdateSession applies a partial update and recomputes everything derived
// from the state. The invoice number is regenerated whenever the date,
// serial, or project identity moved underneath it.
func (s *SessionService) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*SessionView, error) {
	state, err := s.sessionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	if input.Date != nil {
		state.Date = *input.Date
	}
	if input.SerialNumber != nil {
		if *input.SerialNumber < 1 {
			return nil, apperror.NewBadRequestError("Serial number must be positive")
		}
		state.SerialNumber = *input.SerialNumber
	}
	if input.Currency != nil {
		state.Currency = enum.ParseCurrency(*input.Currency)
	}
	if input.InvoiceType != nil {
		state.InvoiceType = enum.ParseInvoiceType(*input.InvoiceType)
	}
	if input.GSTPercent != nil {
		state.GSTPercent = *input.GSTPercent
	}
	if input.PaymentMade != nil {
		state.PaymentMade = *input.PaymentMade
	}
	if input.PreparedBy != nil {
		state.PreparedBy = *input.PreparedBy
	}
	if input.VerifiedBy != nil {
		state.VerifiedBy = *input.VerifiedBy
	}
	if input.Client != nil {
		applyClient(&state.Client, input.Client)
	}
	if input.Project != nil {
		applyProject(&state.Project, input.Project)
	}
	if input.Items != nil {
		state.Items = toLineItems(*input.Items)
	}

	state.RefreshInvoiceNumber()
	state.UpdatedAt = s.now()

	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return newSessionView(state), nil
}

// AddItem appends one line item to a session.
func (s *SessionService) AddItem(ctx context.Context, id uuid.UUID, item ItemInput) (*SessionView, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	state.Items = append(state.Items, entity.LineItem{
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
	})
	state.UpdatedAt = s.now()

	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return newSessionView(state), nil
}

// RemoveItem removes the line item at the given position.
func (s *SessionService) RemoveItem(ctx context.Context, id uuid.UUID, index int) (*SessionView, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	if index < 0 || index >= len(state.Items) {
		return nil, apperror.NewBadRequestError("Item index out of range")
	}

	state.Items = append(state.Items[:index], state.Items[index+1:]...)
	state.UpdatedAt = s.now()

	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return newSessionView(state), nil
}

// DeleteSession closes a session and discards its state.
func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if state == nil {
		return apperror.NewNotFoundError("Session")
	}
	return s.sessionRepo.Delete(ctx, id)
}

func applyClient(client *entity.Client, input *ClientInput) {
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.City != nil {
		client.City = *input.City
	}
	if input.State != nil {
		client.State = *input.State
	}
	if input.Country != nil {
		client.Country = *input.Country
	}
	if input.Zip != nil {
		client.Zip = *input.Zip
	}
}

func applyProject(project *entity.Project, input *ProjectInput) {
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Code != nil {
		project.Code = enum.ParseProjectCode(*input.Code)
	}
	if input.Type != nil {
		project.Type = enum.ParseProjectType(*input.Type)
	}
}

func toLineItems(inputs []ItemInput) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		})
	}
	return items
}
