package models

import (
	"time"

	"github.com/fitzone/memberd/pkg/types"
)

// Customer is the membership aggregate. The financial columns are
// snapshots taken at registration or extension time; later catalog price
// changes never alter them.
type Customer struct {
	ID    string  `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name  string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email *string `gorm:"column:email;type:varchar(120);uniqueIndex" json:"email"`
	Phone string  `gorm:"column:phone;type:varchar(20);not null" json:"phone"`

	PackageType   types.PackageTier `gorm:"column:package_type;type:varchar(20);not null" json:"package_type"`
	JoinDate      time.Time         `gorm:"column:join_date;not null" json:"join_date"`
	MembershipEnd time.Time         `gorm:"column:membership_end;not null;index" json:"membership_end"`

	HasCardio            bool    `gorm:"column:has_cardio;default:false" json:"has_cardio"`
	HasPersonalTraining  bool    `gorm:"column:has_personal_training;default:false" json:"has_personal_training"`
	PersonalTrainingType *string `gorm:"column:personal_training_type;type:varchar(20);default:null" json:"personal_training_type"`
	TreadmillAccess      bool    `gorm:"column:treadmill_access;default:false" json:"treadmill_access"`

	// TrainerID references the User assigned as trainer; set only when
	// personal training was selected at registration.
	TrainerID *string `gorm:"column:trainer_id;type:uuid;default:null" json:"trainer_id"`

	// Amounts are in paise.
	AdmissionFee  int64 `gorm:"column:admission_fee;type:bigint;not null;default:0" json:"admission_fee"`
	PackageFee    int64 `gorm:"column:package_fee;type:bigint;not null" json:"package_fee"`
	Discount      int64 `gorm:"column:discount;type:bigint;not null;default:0" json:"discount"`
	TotalAmount   int64 `gorm:"column:total_amount;type:bigint;not null" json:"total_amount"`
	PendingAmount int64 `gorm:"column:pending_amount;type:bigint;not null;default:0" json:"pending_amount"`

	// NotificationSent is true once the expiry reminder for the current
	// window went out; it is cleared after membership_end passes.
	NotificationSent bool `gorm:"column:notification_sent;default:false" json:"notification_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customer"
}

// Active reports whether the membership has not yet passed its end date.
func (c *Customer) Active(now time.Time) bool {
	return c != nil && c.MembershipEnd.After(now)
}

// AddOns returns the customer's current add-on selection.
func (c *Customer) AddOns() types.AddOns {
	a := types.AddOns{
		HasCardio:           c.HasCardio,
		HasPersonalTraining: c.HasPersonalTraining,
		TreadmillAccess:     c.TreadmillAccess,
	}
	if c.PersonalTrainingType != nil {
		a.PersonalTrainingType = *c.PersonalTrainingType
	}
	return a
}
