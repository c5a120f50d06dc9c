package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fitzone/memberd/pkg/types"
)

// FeeExtra carries the quote breakdown that produced a registration or
// extension fee, so the ledger entry stays interpretable after catalog
// changes.
type FeeExtra struct {
	AdmissionFee int64 `json:"admission_fee,omitempty"`
	PackageFee   int64 `json:"package_fee,omitempty"`
	Discount     int64 `json:"discount,omitempty"`
	Total        int64 `json:"total,omitempty"`
}

// Fee is an append-only ledger entry owned by exactly one customer. Rows
// are immutable once created and removed only by the cascading customer
// delete. Amount is in paise.
type Fee struct {
	ID          string            `gorm:"column:id;type:uuid;primary_key" json:"id"`
	CustomerID  string            `gorm:"column:customer_id;type:uuid;not null;index" json:"customer_id"`
	Amount      int64             `gorm:"column:amount;type:bigint;not null" json:"amount"`
	PaymentType types.PaymentType `gorm:"column:payment_type;type:varchar(20);not null" json:"payment_type"`
	Description string            `gorm:"column:description;type:text" json:"description"`
	PaymentDate time.Time         `gorm:"column:payment_date;not null" json:"payment_date"`
	// CollectedBy references the staff User that recorded the payment.
	CollectedBy string `gorm:"column:collected_by;type:uuid;not null" json:"collected_by"`

	Extra     datatypes.JSONType[*FeeExtra] `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time                     `json:"created_at"`
}

func (Fee) TableName() string {
	return "fee"
}
