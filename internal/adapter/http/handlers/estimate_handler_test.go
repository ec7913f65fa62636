package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/The0ne18/jobsbreeze-api/internal/adapter/http/handlers/mocks"
	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase"
)

func sampleEstimate(status entities.EstimateStatus, isDraft bool) entities.Estimate {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID:         "est-1",
		EstimateID: "#1-20250310-2",
		ClientID:   "client-1",
		Status:     status,
		IsDraft:    isDraft,
		Date:       now,
		TaxRate:    decimal.RequireFromString("25"),
		Subtotal:   decimal.RequireFromString("1000"),
		Tax:        decimal.RequireFromString("250"),
		Amount:     decimal.RequireFromString("1250"),
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Labor", Amount: decimal.RequireFromString("500")},
			{ID: "li-2", Description: "Materials", Amount: decimal.RequireFromString("500")},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrClientNotFound)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"client_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created with computed totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.EstimateInput) (entities.Estimate, error) {
				if !in.IsDraft {
					t.Fatal("create should default to draft when is_draft is omitted")
				}
				return sampleEstimate(entities.EstimateStatusPending, true), nil
			})

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		body := `{"client_id":"client-1","line_items":[{"description":"Labor","amount":500},{"description":"Materials","amount":500}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "PENDING" {
			t.Fatalf("expected status PENDING, got %v", resp["status"])
		}
		if resp["is_draft"] != true {
			t.Fatalf("expected is_draft true, got %v", resp["is_draft"])
		}
		if resp["amount"] != "1250" {
			t.Fatalf("expected amount 1250, got %v", resp["amount"])
		}
	})
}

func TestEstimateHandler_PatchEstimateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve clears draft flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "est-1", "APPROVED").
			Return(sampleEstimate(entities.EstimateStatusApproved, false), nil)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.PatchEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"APPROVED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "APPROVED" {
			t.Fatalf("expected status APPROVED, got %v", resp["status"])
		}
		if resp["is_draft"] != false {
			t.Fatalf("expected is_draft false, got %v", resp["is_draft"])
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "est-1", "SHIPPED").
			Return(entities.Estimate{}, usecase.ErrInvalidStatusValue)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.PatchEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"SHIPPED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.PatchEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "missing", "DECLINED").
			Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.PatchEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/missing/status", bytes.NewBufferString(`{"status":"DECLINED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Estimate{}, usecase.ErrEstimateConflict)

		r := gin.New()
		r.PUT("/v1/estimates/:id", h.UpdateEstimate)

		body := `{"client_id":"client-1","line_items":[{"description":"Labor","amount":200}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("updated replaces line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		updated := sampleEstimate(entities.EstimateStatusPending, true)
		updated.LineItems = []entities.LineItem{{ID: "li-3", Description: "Paint", Amount: decimal.RequireFromString("200")}}
		updated.Subtotal = decimal.RequireFromString("200")
		updated.Tax = decimal.RequireFromString("20")
		updated.Amount = decimal.RequireFromString("220")
		updated.Version = 2

		uc.EXPECT().Update(gomock.Any(), "est-1", gomock.Any()).Return(updated, nil)

		r := gin.New()
		r.PUT("/v1/estimates/:id", h.UpdateEstimate)

		body := `{"client_id":"client-1","line_items":[{"description":"Paint","amount":200}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			LineItems []map[string]any `json:"line_items"`
			Amount    string           `json:"amount"`
			Version   int64            `json:"version"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.LineItems) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(resp.LineItems))
		}
		if resp.Amount != "220" {
			t.Fatalf("expected amount 220, got %s", resp.Amount)
		}
		if resp.Version != 2 {
			t.Fatalf("expected version 2, got %d", resp.Version)
		}
	})
}

func TestEstimateHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list passes filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().List(gomock.Any(), "APPROVED", "client-1").
			Return([]entities.Estimate{sampleEstimate(entities.EstimateStatusApproved, false)}, nil)

		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates?status=APPROVED&client_id=client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 estimate, got %d", len(resp))
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").
			Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{}, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrEstimateNotFound)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
