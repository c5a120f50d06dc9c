package types

// PackageTier identifies a membership package in the catalog.
type PackageTier string

const (
	PackageTierBasic    PackageTier = "basic"
	PackageTierStandard PackageTier = "standard"
	PackageTierPremium  PackageTier = "premium"
	PackageTierUltimate PackageTier = "ultimate"
)

// Package is a catalog entry for a membership tier. All amounts are in
// paise. Instances are loaded once at startup and never mutated.
type Package struct {
	ID             PackageTier `json:"id" mapstructure:"id"`
	Name           string      `json:"name" mapstructure:"name"`
	DurationMonths int         `json:"duration_months" mapstructure:"duration_months"`
	AdmissionFee   int64       `json:"admission_fee" mapstructure:"admission_fee"`
	Fee            int64       `json:"fee" mapstructure:"fee"`
	Discount       int64       `json:"discount" mapstructure:"discount"`
}

// Total is the registration price of the package alone, before add-ons.
func (p *Package) Total() int64 {
	return p.Fee - p.Discount + p.AdmissionFee
}

// PersonalTrainingPlan is a catalog entry for a personal-training add-on.
// Amounts are in paise.
type PersonalTrainingPlan struct {
	ID             string `json:"id" mapstructure:"id"`
	DurationMonths int    `json:"duration_months" mapstructure:"duration_months"`
	Fee            int64  `json:"fee" mapstructure:"fee"`
	Discount       int64  `json:"discount" mapstructure:"discount"`
}

// Net is the amount the plan adds to a registration total.
func (p *PersonalTrainingPlan) Net() int64 {
	return p.Fee - p.Discount
}

// AddOns is the add-on selection submitted with a registration or an
// extension. PersonalTrainingType must be set iff HasPersonalTraining is.
type AddOns struct {
	HasCardio            bool   `json:"has_cardio"`
	HasPersonalTraining  bool   `json:"has_personal_training"`
	PersonalTrainingType string `json:"personal_training_type,omitempty"`
	TreadmillAccess      bool   `json:"treadmill_access"`
}
