package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

var (
	ErrInvalidBusinessName = errors.New("business name is required")
	ErrInvalidDefaultTax   = errors.New("default tax rate must be between 0 and 100")
	ErrInvalidDayWindow    = errors.New("expiry and due windows must be positive")
)

type SettingsInput struct {
	BusinessName       string
	Email              string
	Phone              string
	Address            string
	DefaultTaxRate     decimal.Decimal
	EstimateExpiryDays int
	InvoiceDueDays     int
}

// ISettingsUseCase exposes the business settings singleton.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, in SettingsInput) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get never fails with not-found: defaults apply until settings are saved.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, in SettingsInput) (entities.Settings, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return entities.Settings{}, ErrInvalidBusinessName
	}
	if in.DefaultTaxRate.IsNegative() || in.DefaultTaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return entities.Settings{}, ErrInvalidDefaultTax
	}
	if in.EstimateExpiryDays <= 0 || in.InvoiceDueDays <= 0 {
		return entities.Settings{}, ErrInvalidDayWindow
	}

	s := entities.Settings{
		BusinessName:       name,
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		Address:            strings.TrimSpace(in.Address),
		DefaultTaxRate:     in.DefaultTaxRate,
		EstimateExpiryDays: in.EstimateExpiryDays,
		InvoiceDueDays:     in.InvoiceDueDays,
		UpdatedAt:          time.Now().UTC(),
	}
	return u.repo.Put(ctx, s)
}
