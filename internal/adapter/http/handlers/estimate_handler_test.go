package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"claimscope/internal/adapter/http/handlers/mocks"
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_BuildEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		r := gin.New()
		h := NewEstimateHandler(uc)
		r.POST("/v1/sessions/:session_id/estimate", h.BuildEstimate)
		r.GET("/v1/sessions/:session_id/validation", h.ValidateSession)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing region id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/estimate", bytes.NewBufferString(`{"deductible":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().BuildEstimate(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.EstimateResult{}, usecase.ErrInvalidDeductible)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/estimate", bytes.NewBufferString(`{"region_id":"TX-HOU","deductible":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().BuildEstimate(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.EstimateResult{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/estimate", bytes.NewBufferString(`{"region_id":"TX-HOU"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().BuildEstimate(gomock.Any(), "sess-1", gomock.AssignableToTypeOf(usecase.BuildEstimateInput{})).DoAndReturn(
			func(_ any, _ string, in usecase.BuildEstimateInput) (usecase.EstimateResult, error) {
				if in.RegionID != "TX-HOU" || in.Deductible != 1000 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.AgeByTrade[entities.TradeRoofing] != 12 {
					t.Fatalf("expected roof age carried through, got %+v", in.AgeByTrade)
				}
				return usecase.EstimateResult{
					Summary:    entities.EstimateSummary{TotalRCV: 5000, NetClaim: 4000},
					Lines:      []entities.PricedLineItem{},
					Validation: entities.ValidationResult{Valid: true, Issues: []entities.ValidationIssue{}},
				}, nil
			},
		)

		body := `{"region_id":"TX-HOU","deductible":1000,"age_by_trade":{"RFG":12},"roof_schedule_applies":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Summary entities.EstimateSummary `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Summary.TotalRCV != 5000 {
			t.Fatalf("unexpected summary: %+v", resp.Summary)
		}
	})
}

func TestEstimateHandler_ValidateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/sessions/:session_id/validation", NewEstimateHandler(uc).ValidateSession)

		uc.EXPECT().ValidateSession(gomock.Any(), "sess-1").Return(entities.ValidationResult{
			Valid: false,
			Issues: []entities.ValidationIssue{
				{Severity: entities.SeverityError, Code: "NONPOSITIVE_QUANTITY", Message: "item X has non-positive quantity 0"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/sess-1/validation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp entities.ValidationResult
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Valid || len(resp.Issues) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("invalid session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/sessions/:session_id/validation", NewEstimateHandler(uc).ValidateSession)

		uc.EXPECT().ValidateSession(gomock.Any(), gomock.Any()).Return(entities.ValidationResult{}, usecase.ErrInvalidSessionID)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/%20/validation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
