package types

// PaymentType tags a fee ledger entry with the event that produced it.
type PaymentType string

const (
	PaymentTypeRegistration PaymentType = "registration"
	PaymentTypeMonthly      PaymentType = "monthly"
	PaymentTypeAdditional   PaymentType = "additional"
	PaymentTypeExtension    PaymentType = "extension"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeRegistration, PaymentTypeMonthly, PaymentTypeAdditional, PaymentTypeExtension:
		return true
	}
	return false
}
