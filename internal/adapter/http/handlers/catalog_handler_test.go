package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"claimscope/internal/adapter/http/handlers/mocks"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Seed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICatalogUseCase) *gin.Engine {
		r := gin.New()
		h := NewCatalogHandler(uc)
		r.POST("/v1/catalog/seed", h.SeedCatalog)
		r.POST("/v1/prices/seed", h.SeedPrices)
		return r
	}

	t.Run("empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SeedCatalog(gomock.Any(), gomock.Any()).Return(usecase.SeedResult{}, usecase.ErrEmptySeedPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/seed", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SeedCatalog(gomock.Any(), gomock.Any()).Return(usecase.SeedResult{}, usecase.ErrMalformedSeedPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/seed", bytes.NewBufferString(`{"not":"an array"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SeedCatalog(gomock.Any(), gomock.Any()).Return(usecase.SeedResult{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/seed", bytes.NewBufferString(`[]`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("catalog seed success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		payload := `[{"code":"DRY-REPL","trade_code":"DRY","unit":"SF","quantity_formula":"WALL_SF"}]`
		uc.EXPECT().SeedCatalog(gomock.Any(), []byte(payload)).Return(usecase.SeedResult{
			Loaded:  1,
			Skipped: []usecase.SeedSkip{{Code: "BAD", Reason: "missing unit"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/seed", bytes.NewBufferString(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Loaded  int                `json:"loaded"`
			Skipped []usecase.SeedSkip `json:"skipped"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Loaded != 1 || len(resp.Skipped) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("price seed success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		payload := `[{"region_id":"TX-HOU","line_item_code":"DRY-REPL","material_cost":0.5}]`
		uc.EXPECT().SeedPrices(gomock.Any(), []byte(payload)).Return(usecase.SeedResult{Loaded: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/prices/seed", bytes.NewBufferString(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
