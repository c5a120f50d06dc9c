package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/money"
	"github.com/fitzone/memberd/pkg/types"
)

func newTestService() *Service {
	cfg := &cfgpkg.Config{Catalog: cfgpkg.DefaultCatalog()}
	return NewService(cfg, zap.NewNop().Sugar())
}

func TestQuoteRegistration_PackagesWithoutAddOns(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		tier      types.PackageTier
		total     int64
		admission int64
		months    int
	}{
		{tier: types.PackageTierBasic, total: money.Rupees(1000), admission: money.Rupees(250), months: 1},
		{tier: types.PackageTierStandard, total: money.Rupees(2200), months: 3},
		{tier: types.PackageTierPremium, total: money.Rupees(4200), months: 6},
		{tier: types.PackageTierUltimate, total: money.Rupees(8200), months: 12},
	}
	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			q, err := svc.QuoteRegistration(tc.tier, types.AddOns{})
			require.NoError(t, err)
			assert.Equal(t, tc.total, q.Total)
			assert.Equal(t, tc.admission, q.AdmissionFee)
			assert.Equal(t, tc.months, q.DurationMonths)
			assert.Equal(t, q.PackageFee-q.Discount+q.AdmissionFee, q.Total)
		})
	}
}

func TestQuoteRegistration_UnknownPackage(t *testing.T) {
	svc := newTestService()
	_, err := svc.QuoteRegistration("platinum", types.AddOns{})
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestQuoteRegistration_PersonalTraining(t *testing.T) {
	svc := newTestService()

	// standard total 2200 + quarterly net (12000 - 2000) = 12200
	q, err := svc.QuoteRegistration(types.PackageTierStandard, types.AddOns{
		HasPersonalTraining:  true,
		PersonalTrainingType: "quarterly",
	})
	require.NoError(t, err)
	assert.Equal(t, money.Rupees(12200), q.Total)

	_, err = svc.QuoteRegistration(types.PackageTierStandard, types.AddOns{
		HasPersonalTraining:  true,
		PersonalTrainingType: "weekly",
	})
	assert.ErrorIs(t, err, ErrUnknownPlan)

	_, err = svc.QuoteRegistration(types.PackageTierStandard, types.AddOns{HasPersonalTraining: true})
	assert.ErrorIs(t, err, ErrMissingPlan)
}

func TestQuoteRegistration_Treadmill(t *testing.T) {
	svc := newTestService()

	// premium total 4200 + 500 * 6 months treadmill = 7200
	q, err := svc.QuoteRegistration(types.PackageTierPremium, types.AddOns{TreadmillAccess: true})
	require.NoError(t, err)
	assert.Equal(t, money.Rupees(7200), q.Total)
}

func TestQuoteExtension(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name   string
		tier   types.PackageTier
		months int
		addOns types.AddOns
		want   int64
	}{
		{name: "basic 2 months", tier: types.PackageTierBasic, months: 2, want: money.Rupees(1600)},
		{name: "standard 1 month", tier: types.PackageTierStandard, months: 1, want: money.Rupees(750)},
		{name: "premium with treadmill", tier: types.PackageTierPremium, months: 3, addOns: types.AddOns{TreadmillAccess: true}, want: money.Rupees(3600)},
		{name: "ultimate with pt", tier: types.PackageTierUltimate, months: 1, addOns: types.AddOns{HasPersonalTraining: true, PersonalTrainingType: "monthly"}, want: money.Rupees(4650)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := svc.QuoteExtension(tc.tier, tc.months, tc.addOns)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fee)
		})
	}

	_, err := svc.QuoteExtension("platinum", 1, types.AddOns{})
	assert.ErrorIs(t, err, ErrUnknownPackage)
}
