package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/application/service"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/dto/request"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/dto/response"
	"github.com/bitsphere-automation/LD-InvGen/pkg/pagination"
)

// SessionHandler handles invoice session HTTP requests.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create opens a fresh editing session with default state.
func (h *SessionHandler) Create(c *gin.Context) {
	view, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Session created", view)
}

// Get returns one session with its derived totals.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session retrieved", view)
}

// List returns open sessions, paginated.
func (h *SessionHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.sessionService.ListSessions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sessions retrieved", result)
}

// Update applies a partial update to a session.
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateSessionInput{
		ID:           id,
		SerialNumber: req.SerialNumber,
		Currency:     req.Currency,
		InvoiceType:  req.InvoiceType,
		GSTPercent:   req.GSTPercent,
		PaymentMade:  req.PaymentMade,
		PreparedBy:   req.PreparedBy,
		VerifiedBy:   req.VerifiedBy,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}
	if req.Client != nil {
		input.Client = &service.ClientInput{
			Name:    req.Client.Name,
			Address: req.Client.Address,
			City:    req.Client.City,
			State:   req.Client.State,
			Country: req.Client.Country,
			Zip:     req.Client.Zip,
		}
	}
	if req.Project != nil {
		input.Project = &service.ProjectInput{
			Name: req.Project.Name,
			Code: req.Project.Code,
			Type: req.Project.Type,
		}
	}
	if req.Items != nil {
		items := make([]service.ItemInput, 0, len(*req.Items))
		for _, item := range *req.Items {
			items = append(items, service.ItemInput{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		input.Items = &items
	}

	view, err := h.sessionService.UpdateSession(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session updated", view)
}

// AddItem appends one line item to a session.
func (h *SessionHandler) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.AddItem(c.Request.Context(), id, service.ItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added", view)
}

// RemoveItem removes a line item by position.
func (h *SessionHandler) RemoveItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var uri struct {
		Index int `uri:"index" binding:"min=0"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	view, err := h.sessionService.RemoveItem(c.Request.Context(), id, uri.Index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", view)
}

// Delete closes a session.
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// sessionID parses the :id path parameter, replying 400 itself on failure.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}
