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

var errInvalidRoomPayload = pkg.NewDomainErrorSimple("INVALID_ROOM_INPUT", "Invalid room payload", http.StatusBadRequest)

// RoomHandler exposes the room/geometry interface.

type RoomHandler struct {
	usecase usecase.IRoomUseCase
}

func NewRoomHandler(uc usecase.IRoomUseCase) *RoomHandler {
	return &RoomHandler{usecase: uc}
}

// UpsertRoom stores corrected room geometry and reports which derived
// quantities were recomputed.
//
// @Summary      Create or update a room's geometry
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "room id (empty to create)"
// @Param        payload body request.RoomRequest true "room geometry"
// @Success      200 {object} response.RoomUpdateResponse
// @Router       /rooms/{id} [put]
func (h *RoomHandler) UpsertRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpsertRoom(c.Request.Context(), payload.ToRoom(c.Param("id")))
	if err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomUpdateResult(res))
}

func mapRoomError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidDimensions):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
