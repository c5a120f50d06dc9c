// Package ledger owns the customer aggregate's financial and temporal
// state. It applies billing quotes, appends fee entries, and enforces the
// pending-balance rules. Every multi-step mutation runs inside a single
// database transaction; SMS side effects fire after commit and never roll
// state back.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitzone/memberd/internal/app/service/billing"
	"github.com/fitzone/memberd/internal/app/service/notifylog"
	"github.com/fitzone/memberd/internal/models"
	"github.com/fitzone/memberd/internal/platform/sms"
	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/logctx"
	"github.com/fitzone/memberd/pkg/money"
	"github.com/fitzone/memberd/pkg/phone"
	"github.com/fitzone/memberd/pkg/tool"
	"github.com/fitzone/memberd/pkg/types"
)

// Membership math uses fixed 30-day months, matching the registration-date
// arithmetic of the system this replaces. Calendar-accurate months would
// silently shift existing expiry dates.
const daysPerMonth = 30

type Service struct {
	cfg     *cfgpkg.Config
	db      *gorm.DB
	log     *zap.SugaredLogger
	billing *billing.Service
	sender  sms.Sender
	nlog    *notifylog.Service

	now func() time.Time
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger, bill *billing.Service, sender sms.Sender, nlog *notifylog.Service) *Service {
	return &Service{cfg: cfg, db: db, log: log, billing: bill, sender: sender, nlog: nlog, now: time.Now}
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name        string            `json:"name"`
	Email       *string           `json:"email,omitempty"`
	Phone       string            `json:"phone"`
	PackageType types.PackageTier `json:"package_type"`
	AddOns      types.AddOns      `json:"add_ons"`
	// InitialPayment is the amount paid up front, in paise. The remainder
	// of the quoted total becomes the pending balance.
	InitialPayment int64 `json:"initial_payment"`
	// RegisteredBy is the staff user recording the registration; they
	// become the assigned trainer when personal training is selected.
	RegisteredBy string `json:"-"`
}

func (in *RegisterInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if in.PackageType == "" {
		return fmt.Errorf("%w: package_type is required", ErrValidation)
	}
	if in.InitialPayment < 0 {
		return fmt.Errorf("%w: initial_payment cannot be negative", ErrValidation)
	}
	if in.AddOns.HasPersonalTraining && in.AddOns.PersonalTrainingType == "" {
		return fmt.Errorf("%w: personal_training_type is required", ErrValidation)
	}
	return nil
}

// RegisterCustomer creates a customer from a billing quote. The quoted
// amounts are stored on the record as-is; membership runs for the package
// duration from now. An initial payment above zero produces a registration
// fee entry in the same transaction.
func (s *Service) RegisterCustomer(ctx context.Context, in *RegisterInput) (*models.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	quote, err := s.billing.QuoteRegistration(in.PackageType, in.AddOns)
	if err != nil {
		return nil, err
	}

	now := s.now()
	customer := &models.Customer{
		ID:               tool.GenerateUUIDV7(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		PackageType:      in.PackageType,
		JoinDate:         now,
		MembershipEnd:    now.AddDate(0, 0, quote.DurationMonths*daysPerMonth),
		HasCardio:        in.AddOns.HasCardio,
		TreadmillAccess:  in.AddOns.TreadmillAccess,
		AdmissionFee:     quote.AdmissionFee,
		PackageFee:       quote.PackageFee,
		Discount:         quote.Discount,
		TotalAmount:      quote.Total,
		PendingAmount:    quote.Total - in.InitialPayment,
		NotificationSent: false,
	}
	if in.AddOns.HasPersonalTraining {
		customer.HasPersonalTraining = true
		ptType := in.AddOns.PersonalTrainingType
		customer.PersonalTrainingType = &ptType
		if in.RegisteredBy != "" {
			trainerID := in.RegisteredBy
			customer.TrainerID = &trainerID
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		if in.InitialPayment > 0 {
			fee := &models.Fee{
				ID:          tool.GenerateUUIDV7(),
				CustomerID:  customer.ID,
				Amount:      in.InitialPayment,
				PaymentType: types.PaymentTypeRegistration,
				Description: fmt.Sprintf("registration payment for %s", customer.PackageType),
				PaymentDate: now,
				CollectedBy: in.RegisteredBy,
				Extra: datatypes.NewJSONType(&models.FeeExtra{
					AdmissionFee: quote.AdmissionFee,
					PackageFee:   quote.PackageFee,
					Discount:     quote.Discount,
					Total:        quote.Total,
				}),
			}
			if err := tx.Create(fee).Error; err != nil {
				return fmt.Errorf("failed to create registration fee: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("customer registered",
		"customer_id", customer.ID,
		"package", customer.PackageType,
		"total", money.Format(customer.TotalAmount),
		"pending", money.Format(customer.PendingAmount),
	)

	go s.sendRegisteredEvent(ctx, customer)

	return customer, nil
}

// settle applies a payment to a pending balance. A payment the balance
// cannot cover leaves it unchanged: no clamp to zero, no credit tracking.
func settle(pending, amount int64) int64 {
	if pending >= amount {
		return pending - amount
	}
	return pending
}

// RecordPayment appends a fee entry and, when the pending balance covers
// the amount, decrements it. A payment larger than the pending balance
// leaves the balance untouched but is still recorded — longstanding
// behavior callers reconcile by hand.
func (s *Service) RecordPayment(ctx context.Context, customerID string, amount int64, paymentType types.PaymentType, description, collectedBy string) (*models.Fee, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if paymentType == "" {
		paymentType = types.PaymentTypeAdditional
	}
	if !paymentType.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", ErrValidation, paymentType)
	}

	fee := &models.Fee{
		ID:          tool.GenerateUUIDV7(),
		CustomerID:  customerID,
		Amount:      amount,
		PaymentType: paymentType,
		Description: description,
		PaymentDate: s.now(),
		CollectedBy: collectedBy,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("id = ?", customerID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		if settled := settle(customer.PendingAmount, amount); settled != customer.PendingAmount {
			if err := tx.Model(&customer).Update("pending_amount", settled).Error; err != nil {
				return fmt.Errorf("failed to update pending amount: %w", err)
			}
		}

		if err := tx.Create(fee).Error; err != nil {
			return fmt.Errorf("failed to create fee: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("payment recorded",
		"customer_id", customerID,
		"amount", money.Format(amount),
		"type", paymentType,
	)
	return fee, nil
}

// ExtendMembership prolongs a membership by months at the flat extension
// rate and updates the add-on selection. The extension fee minus the
// initial payment REPLACES any prior pending balance; the membership end
// always moves forward by exactly months * 30 days.
func (s *Service) ExtendMembership(ctx context.Context, customerID string, months int, addOns types.AddOns, initialPayment int64, collectedBy string) (*models.Customer, error) {
	if months <= 0 {
		return nil, ErrInvalidDuration
	}
	if initialPayment < 0 {
		return nil, ErrInvalidAmount
	}

	now := s.now()
	var customer models.Customer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", customerID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		fee, err := s.billing.QuoteExtension(customer.PackageType, months, addOns)
		if err != nil {
			return err
		}

		customer.MembershipEnd = customer.MembershipEnd.AddDate(0, 0, months*daysPerMonth)
		customer.PendingAmount = fee - initialPayment
		customer.HasCardio = addOns.HasCardio
		customer.TreadmillAccess = addOns.TreadmillAccess
		if addOns.HasPersonalTraining {
			if addOns.PersonalTrainingType == "" {
				return fmt.Errorf("%w: personal_training_type is required", ErrValidation)
			}
			ptType := addOns.PersonalTrainingType
			customer.HasPersonalTraining = true
			customer.PersonalTrainingType = &ptType
		} else {
			customer.HasPersonalTraining = false
			customer.PersonalTrainingType = nil
		}

		if err := tx.Save(&customer).Error; err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}

		if initialPayment > 0 {
			entry := &models.Fee{
				ID:          tool.GenerateUUIDV7(),
				CustomerID:  customer.ID,
				Amount:      initialPayment,
				PaymentType: types.PaymentTypeExtension,
				Description: fmt.Sprintf("extension payment for %d month(s)", months),
				PaymentDate: now,
				CollectedBy: collectedBy,
				Extra:       datatypes.NewJSONType(&models.FeeExtra{Total: fee}),
			}
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("failed to create extension fee: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to extend membership: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("membership extended",
		"customer_id", customer.ID,
		"months", months,
		"new_end", customer.MembershipEnd,
		"pending", money.Format(customer.PendingAmount),
	)

	go s.sendExtendedEvent(ctx, &customer)

	return &customer, nil
}

// DeleteCustomer removes the customer and all of its fee entries in one
// transaction; a failure leaves both intact.
func (s *Service) DeleteCustomer(ctx context.Context, customerID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("id = ?", customerID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Fee{}).Error; err != nil {
			return fmt.Errorf("failed to delete fees: %w", err)
		}
		if err := tx.Delete(&customer).Error; err != nil {
			return fmt.Errorf("failed to delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("customer deleted", "customer_id", customerID)
	return nil
}

// GetCustomer loads a single customer by id.
func (s *Service) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return &customer, nil
}

// ListFees returns a customer's fee history, newest first.
func (s *Service) ListFees(ctx context.Context, customerID string) ([]*models.Fee, error) {
	var fees []*models.Fee
	if err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("payment_date desc").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}
	return fees, nil
}

// SearchCustomers does a case-insensitive substring match over name, email
// and phone. An empty query returns everyone. Ordering is by creation time
// so results are stable within a call.
func (s *Service) SearchCustomers(ctx context.Context, query string) ([]*models.Customer, error) {
	var customers []*models.Customer
	q := s.db.WithContext(ctx).Order("created_at")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}
	if err := q.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

func (s *Service) sendRegisteredEvent(ctx context.Context, customer *models.Customer) {
	body := fmt.Sprintf(
		"Dear %s, welcome to The Fitness Zone! Your %s membership is active until %s.",
		customer.Name, customer.PackageType, customer.MembershipEnd.Format("02 Jan 2006"),
	)
	s.sendEvent(ctx, customer, models.NotificationKindRegistered, body)
}

func (s *Service) sendExtendedEvent(ctx context.Context, customer *models.Customer) {
	body := fmt.Sprintf(
		"Dear %s, your %s membership at The Fitness Zone has been extended until %s.",
		customer.Name, customer.PackageType, customer.MembershipEnd.Format("02 Jan 2006"),
	)
	s.sendEvent(ctx, customer, models.NotificationKindExtended, body)
}

func (s *Service) sendEvent(ctx context.Context, customer *models.Customer, kind models.NotificationKind, body string) {
	to := phone.Normalize(customer.Phone, s.cfg.SMS.DefaultCountryCode)
	ok := s.sender.Send(ctx, to, body)
	if !ok {
		logctx.FromCtx(ctx, s.log).Warnw("event sms delivery failed", "customer_id", customer.ID, "kind", kind)
	}
	if s.nlog != nil {
		s.nlog.Save(ctx, &models.NotificationLog{
			CustomerID: customer.ID,
			Kind:       kind,
			Phone:      to,
			Body:       body,
			Success:    ok,
		})
	}
}
