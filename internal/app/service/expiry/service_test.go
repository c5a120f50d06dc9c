package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fitzone/memberd/internal/models"
	cfgpkg "github.com/fitzone/memberd/pkg/config"
)

func newTestService() *Service {
	cfg := &cfgpkg.Config{}
	cfg.Scheduler.ExpiryWindow = 7 * 24 * time.Hour
	cfg.SMS.DefaultCountryCode = "+91"
	return NewService(cfg, nil, zap.NewNop().Sugar(), nil, nil)
}

func TestClassify(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		notified bool
		want     action
	}{
		{name: "well before window", end: now.Add(30 * 24 * time.Hour), want: actionNone},
		{name: "just outside window", end: now.Add(8 * 24 * time.Hour), want: actionNone},
		{name: "exactly on window boundary", end: now.Add(7 * 24 * time.Hour), want: actionNotify},
		{name: "inside window", end: now.Add(3 * 24 * time.Hour), want: actionNotify},
		{name: "inside window already notified", end: now.Add(3 * 24 * time.Hour), notified: true, want: actionNone},
		{name: "expired one second ago unsent", end: now.Add(-time.Second), want: actionNone},
		{name: "expired with flag set", end: now.Add(-time.Second), notified: true, want: actionReset},
		{name: "ends exactly now with flag set", end: now, notified: true, want: actionReset},
		{name: "long expired flag clear", end: now.Add(-60 * 24 * time.Hour), want: actionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &models.Customer{MembershipEnd: tc.end, NotificationSent: tc.notified}
			assert.Equal(t, tc.want, svc.classify(c, now))
		})
	}
}

func TestClassify_SecondRunIsNoop(t *testing.T) {
	svc := newTestService()
	now := time.Now()
	c := &models.Customer{MembershipEnd: now.Add(2 * 24 * time.Hour)}

	assert.Equal(t, actionNotify, svc.classify(c, now))
	// a successful notify sets the flag; a later run inside the same
	// window must not fire again
	c.NotificationSent = true
	assert.Equal(t, actionNone, svc.classify(c, now))
	assert.Equal(t, actionNone, svc.classify(c, now.Add(time.Hour)))
}

func TestClassify_ResetReArmsAfterExtension(t *testing.T) {
	svc := newTestService()
	now := time.Now()
	c := &models.Customer{MembershipEnd: now.Add(-time.Hour), NotificationSent: true}

	assert.Equal(t, actionReset, svc.classify(c, now))
	c.NotificationSent = false

	// extension moves the end forward into a fresh window
	c.MembershipEnd = now.Add(5 * 24 * time.Hour)
	assert.Equal(t, actionNotify, svc.classify(c, now))
}
