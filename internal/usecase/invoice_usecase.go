package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound             = errors.New("invoice not found")
	ErrInvalidInvoiceID            = errors.New("invalid invoice id")
	ErrEstimateNotApproved         = errors.New("estimate not approved")
	ErrEstimateAlreadyInvoiced     = errors.New("estimate already invoiced")
	ErrInvoiceAlreadyPaid          = errors.New("invoice already paid")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IInvoiceUseCase turns approved estimates into invoices and processes
// payments against them through the configured gateway.

type IInvoiceUseCase interface {
	CreateFromEstimate(ctx context.Context, estimateID string, dueDate *time.Time) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, status string) ([]entities.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Payment, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	paymentRepo  interfaces.IPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ISettingsRepository
	gateway      interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	estimateRepo interfaces.IEstimateRepository,
	clientRepo interfaces.IClientRepository,
	settingsRepo interfaces.ISettingsRepository,
	gateway interfaces.IPaymentGateway,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:         repo,
		paymentRepo:  paymentRepo,
		estimateRepo: estimateRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		gateway:      gateway,
	}
}

// CreateFromEstimate snapshots an approved estimate into a new invoice. The
// invoice keeps its own copy of line items and totals; later estimate edits
// never change an issued invoice.
func (u *InvoiceUseCase) CreateFromEstimate(ctx context.Context, estimateID string, dueDate *time.Time) (entities.Invoice, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Invoice{}, ErrInvalidEstimateID
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if est.ID == "" {
		return entities.Invoice{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		return entities.Invoice{}, ErrEstimateNotApproved
	}

	existing, err := u.repo.ListByEstimateID(ctx, est.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(existing) > 0 {
		return entities.Invoice{}, ErrEstimateAlreadyInvoiced
	}

	now := time.Now().UTC()
	due := now
	if dueDate != nil {
		due = *dueDate
	} else if days := u.invoiceDueDays(ctx); days > 0 {
		due = now.AddDate(0, 0, days)
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv := entities.Invoice{
		ID:         uuid.NewString(),
		InvoiceID:  fmt.Sprintf("INV-%s-%d", now.Format("20060102"), seq),
		EstimateID: est.ID,
		ClientID:   est.ClientID,
		Status:     entities.InvoiceStatusPending,
		Date:       now,
		DueDate:    due,
		TaxRate:    est.TaxRate,
		Subtotal:   est.Subtotal,
		Tax:        est.Tax,
		Amount:     est.Amount,
		LineItems:  est.LineItems,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.attachClient(ctx, &created)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.attachClient(ctx, &inv)
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, status string) ([]entities.Invoice, error) {
	var filter entities.InvoiceStatus
	switch s := entities.InvoiceStatus(strings.TrimSpace(status)); s {
	case "", entities.InvoiceStatusPending, entities.InvoiceStatusPaid:
		filter = s
	default:
		return nil, ErrInvalidStatusValue
	}
	return u.repo.List(ctx, filter)
}

// RecordPayment processes a payment for a pending invoice through the
// gateway and persists the outcome. An approved payment marks the invoice
// PAID in the same transaction as the payment insert.
func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Payment{}, ErrInvoiceAlreadyPaid
	}

	payload = u.enrichPayload(payload, inv)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.Payment{}, err
	}

	status := entities.PaymentStatusDeclined
	if strings.EqualFold(providerStatus, "approved") {
		status = entities.PaymentStatusApproved
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		InvoiceID:          inv.ID,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.paymentRepo.CreateAndSettleInvoice(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment recorded invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.paymentRepo.ListByInvoiceID(ctx, invoiceID)
}

// enrichPayload fills the reconciliation fields the provider expects. The
// invoice in the store is the source of truth for the amount.
func (u *InvoiceUseCase) enrichPayload(payload json.RawMessage, inv entities.Invoice) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = inv.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceID)
	}
	m["transaction_amount"] = inv.Amount.InexactFloat64()

	b, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return b
}

func (u *InvoiceUseCase) attachClient(ctx context.Context, inv *entities.Invoice) {
	if u.clientRepo == nil || inv.ClientID == "" {
		return
	}
	if client, err := u.clientRepo.GetByID(ctx, inv.ClientID); err == nil && client.ID != "" {
		inv.Client = &client
	}
}

func (u *InvoiceUseCase) invoiceDueDays(ctx context.Context) int {
	if u.settingsRepo == nil {
		return entities.DefaultSettings().InvoiceDueDays
	}
	s, found, err := u.settingsRepo.Get(ctx)
	if err != nil || !found {
		return entities.DefaultSettings().InvoiceDueDays
	}
	return s.InvoiceDueDays
}
