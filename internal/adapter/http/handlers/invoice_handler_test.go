package handlers

import (
	"bytes"
	"encoding/json"
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

func sampleInvoice(status entities.InvoiceStatus) entities.Invoice {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	return entities.Invoice{
		ID:         "inv-1",
		InvoiceID:  "INV-20250312-1",
		EstimateID: "est-1",
		ClientID:   "client-1",
		Status:     status,
		Date:       now,
		DueDate:    now.AddDate(0, 0, 30),
		TaxRate:    decimal.RequireFromString("25"),
		Subtotal:   decimal.RequireFromString("1000"),
		Tax:        decimal.RequireFromString("250"),
		Amount:     decimal.RequireFromString("1250"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestInvoiceHandler_CreateInvoiceFromEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created from approved estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "est-1", nil).
			Return(sampleInvoice(entities.InvoiceStatusPending), nil)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.CreateInvoiceFromEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["invoice_id"] != "INV-20250312-1" {
			t.Fatalf("expected invoice_id INV-20250312-1, got %v", resp["invoice_id"])
		}
		if resp["status"] != "PENDING" {
			t.Fatalf("expected status PENDING, got %v", resp["status"])
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "est-1", nil).
			Return(entities.Invoice{}, usecase.ErrEstimateNotApproved)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.CreateInvoiceFromEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("estimate already invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "est-1", nil).
			Return(entities.Invoice{}, usecase.ErrEstimateAlreadyInvoiced)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.CreateInvoiceFromEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "missing", nil).
			Return(entities.Invoice{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.CreateInvoiceFromEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/missing/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment approved settles invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		payment := entities.Payment{
			ID:        "pay-1",
			InvoiceID: "inv-1",
			Status:    entities.PaymentStatusApproved,
			Date:      time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).Return(payment, nil)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.CreatePayment)

		body := `{"payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(body))
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
		if resp["status"] != "APPROVED" {
			t.Fatalf("expected status APPROVED, got %v", resp["status"])
		}
	})

	t.Run("invoice already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrInvoiceAlreadyPaid)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid payment payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrInvalidPaymentPayload)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.CreatePayment)

		body := `{"payload":"not-json-object"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().List(gomock.Any(), "PAID").
			Return([]entities.Invoice{sampleInvoice(entities.InvoiceStatusPaid)}, nil)

		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?status=PAID", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").
			Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().ListPayments(gomock.Any(), "inv-1").
			Return([]entities.Payment{{ID: "pay-1", InvoiceID: "inv-1", Status: entities.PaymentStatusApproved}}, nil)

		r := gin.New()
		r.GET("/v1/invoices/:id/payments", h.ListPayments)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/payments", nil)
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
			t.Fatalf("expected 1 payment, got %d", len(resp))
		}
	})
}
