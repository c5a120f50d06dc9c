// Package expiry runs the recurring scan that reminds members before their
// membership lapses. Each customer gets at most one reminder per expiry
// window; the window flag is cleared once the membership actually expires
// so a later extension can trigger a fresh cycle.
package expiry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitzone/memberd/internal/app/service/notifylog"
	"github.com/fitzone/memberd/internal/models"
	"github.com/fitzone/memberd/internal/platform/sms"
	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/phone"
)

// action is the outcome of classifying one customer against the clock.
type action int

const (
	actionNone action = iota
	// actionNotify: inside the expiry window, no reminder sent yet.
	actionNotify
	// actionReset: membership has lapsed with the window flag still set;
	// clear it so a future extension re-arms the reminder.
	actionReset
)

type Service struct {
	cfg    *cfgpkg.Config
	db     *gorm.DB
	log    *zap.SugaredLogger
	sender sms.Sender
	nlog   *notifylog.Service

	now func() time.Time
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger, sender sms.Sender, nlog *notifylog.Service) *Service {
	return &Service{cfg: cfg, db: db, log: log, sender: sender, nlog: nlog, now: time.Now}
}

// classify decides what the scan does with a customer at time now. The
// window boundary is inclusive: a membership ending exactly window from now
// is due; one that already ended is not due and only eligible for reset.
func (s *Service) classify(c *models.Customer, now time.Time) action {
	until := c.MembershipEnd.Sub(now)
	if until <= 0 {
		if c.NotificationSent {
			return actionReset
		}
		return actionNone
	}
	if until <= s.cfg.Scheduler.ExpiryWindow && !c.NotificationSent {
		return actionNotify
	}
	return actionNone
}

// RunOnce performs a single bounded scan over all customers and returns the
// number of reminders sent and flags reset. The full scan is fine at this
// scale; revisit with an indexed due-date cursor if the customer count
// grows past a few thousand.
func (s *Service) RunOnce(ctx context.Context) (notified, reset int, err error) {
	now := s.now()

	var customers []*models.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to scan customers: %w", err)
	}

	for _, c := range customers {
		switch s.classify(c, now) {
		case actionNotify:
			if err := s.notify(ctx, c, now); err != nil {
				s.log.Errorw("expiry notify failed", "customer_id", c.ID, "err", err)
				continue
			}
			notified++
		case actionReset:
			if err := s.db.WithContext(ctx).Model(c).Update("notification_sent", false).Error; err != nil {
				s.log.Errorw("expiry flag reset failed", "customer_id", c.ID, "err", err)
				continue
			}
			reset++
		}
	}

	s.log.Infow("expiry scan completed", "scanned", len(customers), "notified", notified, "reset", reset)
	return notified, reset, nil
}

// notify sends the member reminder, marks the window as notified, and then
// sends the admin copy. The flag is persisted once the member-facing send
// was attempted; delivery failures are logged but do not keep the flag
// from being set, and an admin-side failure never rolls it back.
func (s *Service) notify(ctx context.Context, c *models.Customer, now time.Time) error {
	daysLeft := int(c.MembershipEnd.Sub(now).Hours() / 24)
	to := phone.Normalize(c.Phone, s.cfg.SMS.DefaultCountryCode)

	body := fmt.Sprintf(
		"Dear %s, your %s membership at The Fitness Zone will expire in %d days. Please renew to continue enjoying our services!",
		c.Name, c.PackageType, daysLeft,
	)
	ok := s.sender.Send(ctx, to, body)
	if !ok {
		s.log.Warnw("expiry reminder delivery failed", "customer_id", c.ID, "to", to)
	}
	if s.nlog != nil {
		s.nlog.Save(ctx, &models.NotificationLog{
			CustomerID: c.ID,
			Kind:       models.NotificationKindExpiryReminder,
			Phone:      to,
			Body:       body,
			Success:    ok,
		})
	}

	if err := s.db.WithContext(ctx).Model(c).Update("notification_sent", true).Error; err != nil {
		return fmt.Errorf("failed to set notification flag: %w", err)
	}
	c.NotificationSent = true

	if s.cfg.SMS.AdminPhone != "" {
		adminBody := fmt.Sprintf(
			"ALERT: Customer %s's %s membership at The Fitness Zone will expire in %d days. Contact: %s",
			c.Name, c.PackageType, daysLeft, c.Phone,
		)
		adminOK := s.sender.Send(ctx, s.cfg.SMS.AdminPhone, adminBody)
		if !adminOK {
			s.log.Warnw("admin expiry alert delivery failed", "customer_id", c.ID)
		}
		if s.nlog != nil {
			s.nlog.Save(ctx, &models.NotificationLog{
				CustomerID: c.ID,
				Kind:       models.NotificationKindExpiryAdmin,
				Phone:      s.cfg.SMS.AdminPhone,
				Body:       adminBody,
				Success:    adminOK,
			})
		}
	}

	return nil
}
