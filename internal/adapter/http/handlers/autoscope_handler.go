package handlers

import (
	"errors"
	"net/http"

	request "claimscope/internal/adapter/http/dto/request"
	response "claimscope/internal/adapter/http/dto/response"
	"claimscope/internal/usecase"
	"claimscope/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAutoScopePayload = pkg.NewDomainErrorSimple("INVALID_AUTOSCOPE_INPUT", "Invalid autoscope payload", http.StatusBadRequest)

// AutoScopeHandler exposes the damage/voice-agent scoping endpoint.

type AutoScopeHandler struct {
	usecase usecase.IAutoScopeUseCase
}

func NewAutoScopeHandler(uc usecase.IAutoScopeUseCase) *AutoScopeHandler {
	return &AutoScopeHandler{usecase: uc}
}

// AutoScope turns a damage observation into scoped line items.
//
// @Summary      Auto-scope a damage observation
// @Tags         scoping
// @Accept       json
// @Produce      json
// @Param        payload body request.AutoScopeRequest true "damage observation"
// @Success      201 {object} response.AutoScopeResponse
// @Router       /autoscope [post]
func (h *AutoScopeHandler) AutoScope(c *gin.Context) {
	var payload request.AutoScopeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAutoScopePayload.HTTPStatus, errInvalidAutoScopePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.AutoScope(c.Request.Context(), payload.ResolveSessionID(), payload.ToInput())
	if err != nil {
		appErr := mapScopeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAutoScopeResult(res))
}

// RemoveItem marks a scope item as removed. Removal is a status flip, the
// row stays behind so parent references keep resolving.
//
// @Summary      Remove a scope item from a session
// @Tags         scoping
// @Produce      json
// @Param        session_id path string true "inspection session id"
// @Param        item_id path string true "scope item id"
// @Success      200 {object} entities.ScopeItem
// @Router       /sessions/{session_id}/items/{item_id} [delete]
func (h *AutoScopeHandler) RemoveItem(c *gin.Context) {
	item, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("session_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapScopeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, item)
}

func mapScopeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidRoomID),
		errors.Is(err, usecase.ErrInvalidDamageType),
		errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Scope item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
