package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// RequestStatus is the lifecycle state of a service request
type RequestStatus string

const (
	REQUEST_PENDING   RequestStatus = "PENDING"
	REQUEST_ACCEPTED  RequestStatus = "ACCEPTED"
	REQUEST_DECLINED  RequestStatus = "DECLINED"
	REQUEST_CANCELLED RequestStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from the status
func (s RequestStatus) Terminal() bool {
	switch s {
	case REQUEST_ACCEPTED, REQUEST_DECLINED, REQUEST_CANCELLED:
		return true
	}
	return false
}

// Valid reports whether s is one of the known statuses
func (s RequestStatus) Valid() bool {
	return s == REQUEST_PENDING || s.Terminal()
}

// Request is a client's demand for legal services, either directed to one
// lawyer or broadcast to every lawyer.
type Request struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	IsPublic    bool          `json:"is_public" gorm:"not null"`
	ClientID    int64         `json:"client_id" gorm:"not null;index"`
	LawyerID    *int64        `json:"lawyer_id" gorm:"index"`
	CreatedAt   time.Time     `json:"created_at"`
	RespondedAt *time.Time    `json:"responded_at"`
}

// BeforeCreate assigns the request id
func (r *Request) BeforeCreate(scope *gorm.Scope) error {
	if r.ID == uuid.Nil {
		return scope.SetColumn("ID", uuid.New())
	}
	return nil
}

// HasLawyer reports whether a lawyer is assigned to the request
func (r *Request) HasLawyer() bool {
	return r.LawyerID != nil
}

// DirectedTo reports whether the request's lawyer is the given one
func (r *Request) DirectedTo(lawyerID int64) bool {
	return r.LawyerID != nil && *r.LawyerID == lawyerID
}
