package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fitzone/memberd/internal/models"
	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/money"
	"github.com/fitzone/memberd/pkg/types"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		pending int64
		amount  int64
		want    int64
	}{
		{name: "partial payment", pending: money.Rupees(600), amount: money.Rupees(400), want: money.Rupees(200)},
		{name: "exact payment", pending: money.Rupees(600), amount: money.Rupees(600), want: 0},
		{name: "overpayment leaves balance untouched", pending: money.Rupees(600), amount: money.Rupees(700), want: money.Rupees(600)},
		{name: "zero pending", pending: 0, amount: money.Rupees(100), want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, settle(tc.pending, tc.amount))
		})
	}
}

func TestRegisterInputValidate(t *testing.T) {
	valid := func() *RegisterInput {
		return &RegisterInput{Name: "Asha Rao", Phone: "9876543210", PackageType: types.PackageTierBasic}
	}

	require.NoError(t, valid().validate())

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{name: "missing name", mutate: func(in *RegisterInput) { in.Name = "" }},
		{name: "missing phone", mutate: func(in *RegisterInput) { in.Phone = "" }},
		{name: "missing package", mutate: func(in *RegisterInput) { in.PackageType = "" }},
		{name: "negative payment", mutate: func(in *RegisterInput) { in.InitialPayment = -1 }},
		{name: "pt without plan", mutate: func(in *RegisterInput) { in.AddOns.HasPersonalTraining = true }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(in)
			assert.ErrorIs(t, in.validate(), ErrValidation)
		})
	}
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(&cfgpkg.Config{}, nil, zap.NewNop().Sugar(), nil, nil, nil)

	_, err := svc.RecordPayment(context.Background(), "c1", 0, types.PaymentTypeMonthly, "", "u1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RecordPayment(context.Background(), "c1", -500, types.PaymentTypeMonthly, "", "u1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPayment_RejectsUnknownType(t *testing.T) {
	svc := NewService(&cfgpkg.Config{}, nil, zap.NewNop().Sugar(), nil, nil, nil)

	_, err := svc.RecordPayment(context.Background(), "c1", money.Rupees(100), "cashback", "", "u1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExtendMembership_RejectsNonPositiveDuration(t *testing.T) {
	svc := NewService(&cfgpkg.Config{}, nil, zap.NewNop().Sugar(), nil, nil, nil)

	_, err := svc.ExtendMembership(context.Background(), "c1", 0, types.AddOns{}, 0, "u1")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = svc.ExtendMembership(context.Background(), "c1", -2, types.AddOns{}, 0, "u1")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = svc.ExtendMembership(context.Background(), "c1", 1, types.AddOns{}, -100, "u1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

type fakeSender struct {
	sent []struct{ to, body string }
	ok   bool
}

func (f *fakeSender) Send(_ context.Context, to, body string) bool {
	f.sent = append(f.sent, struct{ to, body string }{to, body})
	return f.ok
}

func TestSendRegisteredEvent_NormalizesPhoneAndNamesPackage(t *testing.T) {
	cfg := &cfgpkg.Config{}
	cfg.SMS.DefaultCountryCode = "+91"
	sender := &fakeSender{ok: true}
	svc := NewService(cfg, nil, zap.NewNop().Sugar(), nil, sender, nil)

	customer := &models.Customer{
		ID:            "c1",
		Name:          "Asha Rao",
		Phone:         "9876543210",
		PackageType:   types.PackageTierStandard,
		MembershipEnd: time.Date(2026, 12, 9, 0, 0, 0, 0, time.UTC),
	}
	svc.sendRegisteredEvent(context.Background(), customer)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+919876543210", sender.sent[0].to)
	assert.True(t, strings.Contains(sender.sent[0].body, "Asha Rao"))
	assert.True(t, strings.Contains(sender.sent[0].body, "standard"))
	assert.True(t, strings.Contains(sender.sent[0].body, "09 Dec 2026"))
}

func TestSendExtendedEvent_MentionsNewEndDate(t *testing.T) {
	cfg := &cfgpkg.Config{}
	cfg.SMS.DefaultCountryCode = "+91"
	sender := &fakeSender{ok: true}
	svc := NewService(cfg, nil, zap.NewNop().Sugar(), nil, sender, nil)

	customer := &models.Customer{
		ID:            "c1",
		Name:          "Asha Rao",
		Phone:         "+919876543210",
		PackageType:   types.PackageTierBasic,
		MembershipEnd: time.Date(2027, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	svc.sendExtendedEvent(context.Background(), customer)

	require.Len(t, sender.sent, 1)
	assert.True(t, strings.Contains(sender.sent[0].body, "extended until 08 Jan 2027"))
}
