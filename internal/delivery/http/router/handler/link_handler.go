package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"crosslink/internal/async"
	"crosslink/internal/delivery/http/middleware"
	"crosslink/internal/delivery/http/response"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/domain/service"
	"crosslink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// finalizeTimeout bounds how long a redeeming request waits for the store
// write before giving up the HTTP response. The write itself keeps running.
const finalizeTimeout = 10 * time.Second

// LinkHandler exposes the pairing-code lifecycle and link queries over HTTP.
type LinkHandler struct {
	requestUC usecase.LinkRequestUsecase
	linkUC    usecase.LinkUsecase
	lookupUC  usecase.LinkLookupUsecase
	presence  service.PresenceService
	logger    *slog.Logger
}

// LinkHandlerParams holds dependencies for the LinkHandler.
type LinkHandlerParams struct {
	fx.In

	RequestUC usecase.LinkRequestUsecase
	LinkUC    usecase.LinkUsecase
	LookupUC  usecase.LinkLookupUsecase
	Presence  service.PresenceService
	Logger    *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler, injected by Fx.
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		requestUC: params.RequestUC,
		linkUC:    params.LinkUC,
		lookupUC:  params.LookupUC,
		presence:  params.Presence,
		logger:    params.Logger,
	}
}

// RequestOutput is the response for a freshly issued pairing code.
type RequestOutput struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateRequest issues a pairing code for the caller, superseding any code the
// caller already holds.
func (h *LinkHandler) CreateRequest(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	// A caller whose link is already known has to unlink first.
	if h.lookupUC.CachedLookup(identity.ID) != nil {
		return domainerrors.ErrAlreadyLinked
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, RequestOutput{
		Code:      request.DisplayCode(),
		ExpiresAt: request.ExpiresAt,
	}, "Pairing code issued")
}

// CancelRequest drops the caller's pending pairing code.
func (h *LinkHandler) CancelRequest(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	cancelled := h.requestUC.CancelRequest(c.Request().Context(), identity)

	return response.Success(c, http.StatusOK, map[string]bool{"cancelled": cancelled}, "")
}

// ActiveRequest reports whether the caller holds a valid pairing code.
func (h *LinkHandler) ActiveRequest(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	active := h.requestUC.HasActiveRequest(c.Request().Context(), identity)

	return response.Success(c, http.StatusOK, map[string]bool{"active": active}, "")
}

// RedeemInput carries the pairing code as the four digit string players relay
// between platforms; leading zeros are significant.
type RedeemInput struct {
	Code string `json:"code" validate:"required,len=4,number"`
}

// Redeem consumes a pairing code and finalizes the link between the code's
// owner and the caller. On success both parties are told to reconnect, since
// their link state changed under them.
func (h *LinkHandler) Redeem(c echo.Context) error {
	redeemer, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	var input RedeemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redeem input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	code, err := strconv.Atoi(input.Code)
	if err != nil {
		return domainerrors.ErrLinkCodeOutOfRange
	}

	ctx := c.Request().Context()

	request, err := h.requestUC.RedeemCode(ctx, code)
	if err != nil {
		return err
	}

	ch, err := h.linkUC.FinalizeLink(ctx, request, redeemer)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, finalizeTimeout)
	defer cancel()

	written, err := async.Await(waitCtx, ch)
	if err != nil {
		return err
	}

	// Both sides now answer lookups with the new pairing; stale cache entries
	// must not outlive the write.
	h.lookupUC.Invalidate(request.RequesterID)
	h.lookupUC.Invalidate(redeemer.ID)

	reason := fmt.Sprintf("You are now linked to %s, please reconnect", redeemer.Name)
	h.presence.Disconnect(ctx, request.RequesterID, reason)
	h.presence.Disconnect(ctx, redeemer.ID,
		fmt.Sprintf("You are now linked to %s, please reconnect", request.RequesterName))

	h.logger.Info("link finalized",
		slog.String("requester_id", request.RequesterID.String()),
		slog.String("redeemer_id", redeemer.ID.String()),
		slog.Bool("written", written),
	)

	return response.Success(c, http.StatusOK, map[string]bool{"linked": written}, "Accounts linked")
}

// LinkOutput is the read-side view of a durable link.
type LinkOutput struct {
	Linked      bool   `json:"linked"`
	PCID        string `json:"pcId,omitempty"`
	PCName      string `json:"pcName,omitempty"`
	ConsoleID   string `json:"consoleId,omitempty"`
	ConsoleName string `json:"consoleName,omitempty"`
}

func linkOutput(link *entity.FullLink) LinkOutput {
	if link == nil {
		return LinkOutput{Linked: false}
	}

	return LinkOutput{
		Linked:      true,
		PCID:        link.PCID.String(),
		PCName:      link.PCName,
		ConsoleID:   link.ConsoleID.String(),
		ConsoleName: link.ConsoleName,
	}
}

// Info resolves the caller's link, going to the store when the cache cannot
// answer.
func (h *LinkHandler) Info(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	ctx := c.Request().Context()
	link, err := async.Await(ctx, h.lookupUC.Lookup(ctx, identity))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, linkOutput(link), "")
}

// CachedInfo answers from the cache only. It reports pending while a fetch is
// still outstanding for the caller; otherwise an empty cache means not linked.
func (h *LinkHandler) CachedInfo(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	if !h.lookupUC.IsLookupComplete(identity.ID) {
		return domainerrors.ErrLookupPending
	}

	return response.Success(c, http.StatusOK, linkOutput(h.lookupUC.CachedLookup(identity.ID)), "")
}

// Unlink removes the caller's durable link and invalidates both sides of it.
func (h *LinkHandler) Unlink(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "No authenticated session")
	}

	ctx := c.Request().Context()

	// Remember the other side before the row disappears.
	cached := h.lookupUC.CachedLookup(identity.ID)

	ch, err := h.linkUC.Unlink(ctx, identity)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, finalizeTimeout)
	defer cancel()

	removed, err := async.Await(waitCtx, ch)
	if err != nil {
		return err
	}

	h.lookupUC.Invalidate(identity.ID)
	if cached != nil {
		h.lookupUC.Invalidate(cached.Opposed(identity.ID))
	}

	if !removed {
		return domainerrors.ErrNotLinked
	}

	return response.Success(c, http.StatusOK, map[string]bool{"removed": removed}, "Link removed")
}
