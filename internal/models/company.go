package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is the hiring side of the marketplace. A COMPANY user owns
// exactly one Company record.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Website     string    `gorm:"size:255" json:"website,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
