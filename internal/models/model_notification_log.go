package models

import "time"

// NotificationKind classifies outbound SMS messages.
type NotificationKind string

const (
	NotificationKindExpiryReminder NotificationKind = "expiry_reminder"
	NotificationKindExpiryAdmin    NotificationKind = "expiry_admin"
	NotificationKindRegistered     NotificationKind = "registered"
	NotificationKindExtended       NotificationKind = "extended"
)

// NotificationLog records every SMS delivery attempt. Rows are written
// asynchronously and are best-effort; a failed insert never blocks the
// operation that triggered the message.
type NotificationLog struct {
	ID         string           `gorm:"column:id;type:uuid;primary_key" json:"id"`
	CustomerID string           `gorm:"column:customer_id;type:uuid;index" json:"customer_id"`
	Kind       NotificationKind `gorm:"column:kind;type:varchar(32);not null" json:"kind"`
	Phone      string           `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Body       string           `gorm:"column:body;type:text" json:"body"`
	Success    bool             `gorm:"column:success;default:false" json:"success"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (NotificationLog) TableName() string {
	return "notification_log"
}
