package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. AccountID references accounts.id;
// the composite index backs the owner-scoped lookups used by every query.
type BookingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_account_id,priority:1"`
	VehicleType string    `gorm:"type:varchar(100);not null"`
	ServiceType string    `gorm:"type:varchar(100);not null"`
	BookingDate time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
