package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	response "claimscope/internal/adapter/http/dto/response"
	"claimscope/internal/usecase"
	"claimscope/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSeedPayload = pkg.NewDomainErrorSimple("INVALID_SEED_INPUT", "Invalid seed payload", http.StatusBadRequest)

// CatalogHandler exposes the bulk seeding interface for catalog and price
// reference data.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SeedCatalog bulk-loads catalog items. Bad rows are skipped and reported;
// the batch itself never fails on data errors.
//
// @Summary      Seed catalog items
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Success      200 {object} response.SeedResponse
// @Router       /catalog/seed [post]
func (h *CatalogHandler) SeedCatalog(c *gin.Context) {
	h.seed(c, h.usecase.SeedCatalog)
}

// SeedPrices bulk-loads regional price rows.
//
// @Summary      Seed regional prices
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Success      200 {object} response.SeedResponse
// @Router       /prices/seed [post]
func (h *CatalogHandler) SeedPrices(c *gin.Context) {
	h.seed(c, h.usecase.SeedPrices)
}

func (h *CatalogHandler) seed(c *gin.Context, load func(ctx context.Context, payload []byte) (usecase.SeedResult, error)) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidSeedPayload.HTTPStatus, errInvalidSeedPayload.ToHTTPError())
		return
	}

	res, err := load(c.Request.Context(), payload)
	if err != nil {
		appErr := mapSeedError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSeedResult(res))
}

func mapSeedError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySeedPayload), errors.Is(err, usecase.ErrMalformedSeedPayload):
		return errInvalidSeedPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
