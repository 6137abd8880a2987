package model

import (
	"time"
)

// User mirrors the profile record owned by the identity provider. Only the
// fields the assessment share view and the analyzer payload need live here,
// plus the onboarding flag that gates CV submission.
type User struct {
	ID                  string    `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName           string    `json:"first_name" gorm:"not null"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone               string    `json:"phone,omitempty"`
	TargetRole          string    `json:"target_role,omitempty"`
	EducationLevel      string    `json:"education_level,omitempty"`
	GraduationYear      *int      `json:"graduation_year,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed" gorm:"default:false"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DisplayName is the redacted identity used on public share pages:
// first name plus last-name initial.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName[:1] + "."
}
