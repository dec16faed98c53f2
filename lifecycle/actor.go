package lifecycle

import (
	"fmt"
)

// Role is the kind of an authenticated actor
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleLawyer Role = "LAWYER"
)

// Actor is an authenticated caller, either a ClientActor or a LawyerActor.
// It is resolved once from a verified token and never from request payloads.
type Actor interface {
	ActorID() int64
	Role() Role
	isActor()
}

// ClientActor is a client identified by its account id
type ClientActor int64

func (a ClientActor) ActorID() int64 { return int64(a) }
func (a ClientActor) Role() Role     { return RoleClient }
func (ClientActor) isActor()         {}

// LawyerActor is a lawyer identified by its account id
type LawyerActor int64

func (a LawyerActor) ActorID() int64 { return int64(a) }
func (a LawyerActor) Role() Role     { return RoleLawyer }
func (LawyerActor) isActor()         {}

// NewActor builds an actor from a role name and an id
func NewActor(role string, id int64) (Actor, error) {
	switch Role(role) {
	case RoleClient:
		return ClientActor(id), nil
	case RoleLawyer:
		return LawyerActor(id), nil
	}
	return nil, fmt.Errorf("unknown role: %q", role)
}
