package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/domain/totals"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidEstimateID  = errors.New("invalid estimate id")
	ErrInvalidStatusValue = errors.New("invalid status value")
	ErrInvalidLineItem    = errors.New("invalid line item")
	ErrTooManyLineItems   = errors.New("too many line items")
	ErrEstimateConflict   = interfaces.ErrVersionConflict
)

// maxLineItems keeps a full replace (header put, old deletes, new puts)
// inside DynamoDB's 100-item transaction cap: 1 + 2*49 < 100.
const maxLineItems = 49

// LineItemInput is one caller-supplied row. When Quantity and UnitPrice are
// both positive the amount is derived server-side; otherwise the supplied
// amount is accepted as-is (it still must be non-negative).
type LineItemInput struct {
	Description string
	Category    string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// EstimateInput carries the full replace payload: updates are never partial
// patches, the whole line item list is supplied every time.
type EstimateInput struct {
	ClientID   string
	Date       time.Time
	ExpiryDate *time.Time
	Notes      string
	Terms      string
	TaxRate    *decimal.Decimal
	IsDraft    bool
	LineItems  []LineItemInput
}

// IEstimateUseCase exposes the estimate lifecycle:
//   - create with computed totals
//   - full replace-and-recompute update
//   - status workflow (PENDING -> APPROVED | DECLINED)
//   - delete with cascading line items

type IEstimateUseCase interface {
	Create(ctx context.Context, in EstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, status string, clientID string) ([]entities.Estimate, error)
	Update(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error)
	SetStatus(ctx context.Context, id string, status string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, clientRepo interfaces.IClientRepository, settingsRepo interfaces.ISettingsRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo}
}

func (u *EstimateUseCase) Create(ctx context.Context, in EstimateInput) (entities.Estimate, error) {
	client, err := u.resolveClient(ctx, in.ClientID)
	if err != nil {
		return entities.Estimate{}, err
	}

	settings := u.loadSettings(ctx)

	items, err := normalizeLineItems(in.LineItems)
	if err != nil {
		return entities.Estimate{}, err
	}

	taxRate := settings.DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	tot, err := totals.Compute(items, taxRate)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	expiry := in.ExpiryDate
	if expiry == nil && settings.EstimateExpiryDays > 0 {
		d := date.AddDate(0, 0, settings.EstimateExpiryDays)
		expiry = &d
	}

	code, err := u.nextDisplayCode(ctx, date, len(items))
	if err != nil {
		return entities.Estimate{}, err
	}

	e := entities.Estimate{
		ID:         uuid.NewString(),
		EstimateID: code,
		ClientID:   client.ID,
		Status:     entities.EstimateStatusPending,
		IsDraft:    in.IsDraft,
		Date:       date,
		ExpiryDate: expiry,
		Notes:      strings.TrimSpace(in.Notes),
		Terms:      strings.TrimSpace(in.Terms),
		TaxRate:    taxRate,
		Subtotal:   tot.Subtotal,
		Tax:        tot.Tax,
		Amount:     tot.Amount,
		LineItems:  items,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	created.Client = &client
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.attachClient(ctx, &e)
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, status string, clientID string) ([]entities.Estimate, error) {
	var filter entities.EstimateStatus
	if s := strings.TrimSpace(status); s != "" {
		parsed, ok := entities.ParseEstimateStatus(s)
		if !ok {
			return nil, ErrInvalidStatusValue
		}
		filter = parsed
	}
	return u.repo.List(ctx, filter, strings.TrimSpace(clientID))
}

// Update is the replace-and-recompute path: every stored line item is
// replaced by the supplied list and the totals are derived from the new list
// alone. The repository performs the whole swap in one transaction guarded by
// the version read here, so a failed update leaves the estimate untouched.
func (u *EstimateUseCase) Update(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	client, err := u.resolveClient(ctx, in.ClientID)
	if err != nil {
		return entities.Estimate{}, err
	}

	items, err := normalizeLineItems(in.LineItems)
	if err != nil {
		return entities.Estimate{}, err
	}

	taxRate := existing.TaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	tot, err := totals.Compute(items, taxRate)
	if err != nil {
		return entities.Estimate{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = existing.Date
	}

	updated := existing
	updated.ClientID = client.ID
	updated.IsDraft = in.IsDraft
	updated.Date = date
	updated.ExpiryDate = in.ExpiryDate
	updated.Notes = strings.TrimSpace(in.Notes)
	updated.Terms = strings.TrimSpace(in.Terms)
	updated.TaxRate = taxRate
	updated.Subtotal = tot.Subtotal
	updated.Tax = tot.Tax
	updated.Amount = tot.Amount
	updated.LineItems = items
	updated.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.ReplaceLineItemsAndUpdate(ctx, updated, existing.Version)
	if err != nil {
		return entities.Estimate{}, err
	}
	saved.Client = &client
	return saved, nil
}

// SetStatus applies the status workflow. Any successful transition clears the
// draft flag, including a transition back to PENDING: once a status decision
// has been recorded the estimate is no longer a draft. Both fields persist as
// a single atomic write.
func (u *EstimateUseCase) SetStatus(ctx context.Context, id string, status string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	parsed, ok := entities.ParseEstimateStatus(strings.TrimSpace(status))
	if !ok {
		return entities.Estimate{}, ErrInvalidStatusValue
	}

	updated, err := u.repo.UpdateStatusAndDraftFlag(ctx, id, parsed, false)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.attachClient(ctx, &updated)
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateNotFound
	}
	return nil
}

func (u *EstimateUseCase) resolveClient(ctx context.Context, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return client, nil
}

func (u *EstimateUseCase) attachClient(ctx context.Context, e *entities.Estimate) {
	if e.ClientID == "" {
		return
	}
	if client, err := u.clientRepo.GetByID(ctx, e.ClientID); err == nil && client.ID != "" {
		e.Client = &client
	}
}

func (u *EstimateUseCase) loadSettings(ctx context.Context) entities.Settings {
	if u.settingsRepo == nil {
		return entities.DefaultSettings()
	}
	s, found, err := u.settingsRepo.Get(ctx)
	if err != nil || !found {
		return entities.DefaultSettings()
	}
	return s
}

// nextDisplayCode produces the human-facing estimate code, e.g.
// "#42-20260829-3". The format is cosmetic; uniqueness comes from the
// sequence counter.
func (u *EstimateUseCase) nextDisplayCode(ctx context.Context, date time.Time, itemCount int) (string, error) {
	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return "", err
	}
	n := itemCount
	if n == 0 {
		n = rand.Intn(9) + 1
	}
	return fmt.Sprintf("#%d-%s-%d", seq, date.Format("20060102"), n), nil
}

func normalizeLineItems(in []LineItemInput) ([]entities.LineItem, error) {
	if len(in) > maxLineItems {
		return nil, fmt.Errorf("%w: at most %d line items per estimate", ErrTooManyLineItems, maxLineItems)
	}
	items := make([]entities.LineItem, 0, len(in))
	for _, li := range in {
		desc := strings.TrimSpace(li.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: description is required", ErrInvalidLineItem)
		}
		if li.Quantity.IsNegative() || li.UnitPrice.IsNegative() || li.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: quantity, unit price and amount must not be negative", ErrInvalidLineItem)
		}

		amount := li.Amount
		if li.Quantity.IsPositive() && li.UnitPrice.IsPositive() {
			amount = totals.Round2(li.Quantity.Mul(li.UnitPrice))
		}

		items = append(items, entities.LineItem{
			ID:          uuid.NewString(),
			Description: desc,
			Category:    strings.TrimSpace(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      amount,
		})
	}
	return items, nil
}
