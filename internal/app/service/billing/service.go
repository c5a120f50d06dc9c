// Package billing computes monetary totals for registration and extension
// events. It is pure: quotes are derived from the injected catalog and have
// no persistence side effects; the ledger decides what to do with them.
package billing

import (
	"fmt"

	"go.uber.org/zap"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/types"
)

type Service struct {
	catalog *cfgpkg.Catalog
	log     *zap.SugaredLogger
}

func NewService(cfg *cfgpkg.Config, log *zap.SugaredLogger) *Service {
	return &Service{catalog: &cfg.Catalog, log: log}
}

// Quote is the cost breakdown for a registration. Amounts are in paise and
// are snapshotted onto the customer record; they are never re-derived from
// the catalog later.
type Quote struct {
	AdmissionFee   int64 `json:"admission_fee"`
	PackageFee     int64 `json:"package_fee"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
	DurationMonths int   `json:"duration_months"`
}

// QuoteRegistration prices a new membership: the package total plus the
// personal-training net fee and the treadmill charge for the package
// duration, when selected.
func (s *Service) QuoteRegistration(packageID types.PackageTier, addOns types.AddOns) (*Quote, error) {
	pkg := s.catalog.GetPackage(packageID)
	if pkg == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, packageID)
	}

	q := &Quote{
		AdmissionFee:   pkg.AdmissionFee,
		PackageFee:     pkg.Fee,
		Discount:       pkg.Discount,
		Total:          pkg.Total(),
		DurationMonths: pkg.DurationMonths,
	}

	if addOns.HasPersonalTraining {
		if addOns.PersonalTrainingType == "" {
			return nil, ErrMissingPlan
		}
		plan := s.catalog.GetPersonalTrainingPlan(addOns.PersonalTrainingType)
		if plan == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, addOns.PersonalTrainingType)
		}
		q.Total += plan.Net()
	}

	if addOns.TreadmillAccess {
		q.Total += s.catalog.TreadmillMonthlyRate * int64(pkg.DurationMonths)
	}

	return q, nil
}

// QuoteExtension prices prolonging a membership by months. Extensions use a
// flat per-tier monthly rate, not the duration-based package totals, plus
// flat monthly surcharges for whichever add-ons stay active.
func (s *Service) QuoteExtension(packageID types.PackageTier, months int, addOns types.AddOns) (int64, error) {
	rate, ok := s.catalog.ExtensionMonthlyRates[packageID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPackage, packageID)
	}

	fee := rate * int64(months)
	if addOns.TreadmillAccess {
		fee += s.catalog.TreadmillMonthlyRate * int64(months)
	}
	if addOns.HasPersonalTraining {
		fee += s.catalog.PersonalTrainingExtensionRate * int64(months)
	}
	return fee, nil
}
