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

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler exposes estimate assembly and the advisory validation
// pass. The handler never blocks a workflow on validation findings; it only
// reports them.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// BuildEstimate prices the session's scope and returns summary, lines and
// validation findings.
//
// @Summary      Build the priced estimate for a session
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        session_id path string true "inspection session id"
// @Param        payload body request.BuildEstimateRequest true "pricing context"
// @Success      200 {object} response.EstimateResponse
// @Router       /sessions/{session_id}/estimate [post]
func (h *EstimateHandler) BuildEstimate(c *gin.Context) {
	var payload request.BuildEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.BuildEstimate(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// ValidateSession runs the completeness/consistency checks without pricing.
//
// @Summary      Validate a session's scope
// @Tags         estimates
// @Produce      json
// @Param        session_id path string true "inspection session id"
// @Success      200 {object} entities.ValidationResult
// @Router       /sessions/{session_id}/validation [get]
func (h *EstimateHandler) ValidateSession(c *gin.Context) {
	res, err := h.usecase.ValidateSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidRegionID),
		errors.Is(err, usecase.ErrInvalidDeductible):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
