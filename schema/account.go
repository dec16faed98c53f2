package schema

import (
	"time"
)

type Client struct {
	ID           int64     `json:"id" gorm:"primary_key"`
	Name         string    `json:"name" gorm:"not null"`
	NationalID   string    `json:"national_id" gorm:"type:varchar(11);not null;unique_index"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Lawyer struct {
	ID           int64     `json:"id" gorm:"primary_key"`
	Name         string    `json:"name" gorm:"not null;index"`
	NationalID   string    `json:"national_id" gorm:"type:varchar(11);not null;unique_index"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	Bio          string    `json:"bio" gorm:"type:text;not null"`
	PracticeArea string    `json:"practice_area" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LawyerListing is the public directory entry of a lawyer
type LawyerListing struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	PracticeArea string    `json:"practice_area"`
	MemberSince  time.Time `json:"member_since"`
}

// Listing converts a lawyer into its public directory entry
func (l Lawyer) Listing() LawyerListing {
	return LawyerListing{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Bio:          l.Bio,
		PracticeArea: l.PracticeArea,
		MemberSince:  l.CreatedAt,
	}
}
