package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitzone/memberd/pkg/money"
	"github.com/fitzone/memberd/pkg/types"
)

func TestDefaultCatalogTotals(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		tier   types.PackageTier
		months int
		total  int64
	}{
		{tier: types.PackageTierBasic, months: 1, total: money.Rupees(1000)},
		{tier: types.PackageTierStandard, months: 3, total: money.Rupees(2200)},
		{tier: types.PackageTierPremium, months: 6, total: money.Rupees(4200)},
		{tier: types.PackageTierUltimate, months: 12, total: money.Rupees(8200)},
	}
	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			pkg := catalog.GetPackage(tc.tier)
			require.NotNil(t, pkg)
			assert.Equal(t, tc.months, pkg.DurationMonths)
			assert.Equal(t, tc.total, pkg.Total())
		})
	}
}

func TestCatalogLookupMisses(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Nil(t, catalog.GetPackage("platinum"))
	assert.Nil(t, catalog.GetPersonalTrainingPlan("yearly"))
}

func TestDefaultCatalogExtensionRates(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog.ExtensionMonthlyRates, 4)
	assert.Equal(t, money.Rupees(800), catalog.ExtensionMonthlyRates[types.PackageTierBasic])
	assert.Equal(t, money.Rupees(650), catalog.ExtensionMonthlyRates[types.PackageTierUltimate])
	assert.Equal(t, money.Rupees(500), catalog.TreadmillMonthlyRate)
	assert.Equal(t, money.Rupees(4000), catalog.PersonalTrainingExtensionRate)
}
