package models

import "time"

// User is a staff identity: the administrator or a trainer. The credential
// is stored as given; hashing is a known gap inherited from the system this
// replaces.
type User struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(120);not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "app_user"
}
