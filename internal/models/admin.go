package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents an administrator account for the store dashboard.
type Admin struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// AdminSession is the decoded proof of a prior admin login. It is carried
// inside the bearer token and attached to the request context after
// validation; it is never stored server-side.
type AdminSession struct {
	AdminID   uint      `json:"admin_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
