package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application is a student's request to be considered for one internship,
// unique per (internship, user). The unique index also serializes concurrent
// apply calls for the same pair.
type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InternshipID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_user" json:"internship_id"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_user" json:"user_id"`
	CoverLetter  string            `gorm:"type:text;not null" json:"cover_letter"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Internship Internship `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE" json:"-"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// CanTransition reports whether a company may move an application from one
// status to another. ACCEPTED is terminal; everything else may be
// overwritten, including moving REJECTED back to an earlier state.
func CanTransition(from, to ApplicationStatus) bool {
	if !to.Valid() {
		return false
	}
	if from == ApplicationAccepted {
		return to == ApplicationAccepted
	}
	return true
}
