package handler

import (
	"log/slog"
	"net/http"

	"crosslink/internal/delivery/http/middleware"
	"crosslink/internal/delivery/http/response"
	"crosslink/internal/domain/entity"
	"crosslink/internal/domain/service"
	"crosslink/internal/infra/presence"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHandler manages platform sessions: connecting an authenticated
// identity, ending the session, and draining queued notifications.
type SessionHandler struct {
	hub      *presence.Hub
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(hub *presence.Hub, tokenSvc service.TokenService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		hub:      hub,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// ConnectInput is the payload for opening a session. The id is the account id
// on the declared platform; platform verification happens upstream of this
// service.
type ConnectInput struct {
	ID       string `json:"id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,max=64"`
	Platform string `json:"platform" validate:"required,oneof=pc console"`
}

// ConnectOutput carries the session token the client uses on every
// subsequent call.
type ConnectOutput struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Platform string `json:"platform"`
}

// Connect opens a session for an identity and mints its session token.
func (h *SessionHandler) Connect(c echo.Context) error {
	var input ConnectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	identity := entity.Identity{
		ID:       id,
		Name:     input.Name,
		Platform: entity.Platform(input.Platform),
	}

	token, err := h.tokenSvc.IssueSessionToken(identity)
	if err != nil {
		return err
	}

	h.hub.Connect(identity)
	h.logger.Info("session opened",
		slog.String("id", identity.ID.String()),
		slog.String("platform", string(identity.Platform)),
	)

	return response.Success(c, http.StatusCreated, ConnectOutput{
		Token:    token,
		ID:       identity.ID.String(),
		Platform: string(identity.Platform),
	}, "Session opened")
}

// Disconnect ends the caller's session. Sticky platform memory survives, so
// the identity stays classifiable for in-flight link work.
func (h *SessionHandler) Disconnect(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	h.hub.Disconnect(c.Request().Context(), identity.ID, "Session closed by client")

	return response.Success(c, http.StatusOK, nil, "Session closed")
}

// Messages drains and returns the caller's queued notifications.
func (h *SessionHandler) Messages(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	messages := h.hub.DrainMessages(identity.ID)

	return response.Success(c, http.StatusOK, map[string]any{"messages": messages}, "")
}
