package lifecycle

import (
	"errors"
)

// Kind classifies the failures of lifecycle operations
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidTransition
	KindConflict
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindInvalidTransition:
		return "InvalidTransition"
	case KindConflict:
		return "Conflict"
	case KindInvalidArgument:
		return "InvalidArgument"
	}
	return "Internal"
}

// Error is an expected failure of a lifecycle operation
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrRequestNotFound = &Error{KindNotFound, "request not found"}
	ErrClientNotFound  = &Error{KindNotFound, "client not found"}
	ErrLawyerNotFound  = &Error{KindNotFound, "lawyer not found"}

	ErrNotRequestOwner  = &Error{KindForbidden, "not your request"}
	ErrNotDirectedToYou = &Error{KindForbidden, "request was not directed to you"}
	ErrRoleNotAllowed   = &Error{KindForbidden, "operation is not allowed for your role"}

	ErrOnlyPendingCancellable = &Error{KindInvalidTransition, "only pending requests may be cancelled"}
	ErrAlreadyResponded       = &Error{KindInvalidTransition, "request already responded"}

	ErrDuplicatePendingRequest = &Error{KindConflict, "duplicate pending request"}
	ErrAcceptedRequestExists   = &Error{KindConflict, "the account has accepted requests"}

	ErrInvalidDecision       = &Error{KindInvalidArgument, "decision must be ACCEPTED or DECLINED"}
	ErrDescriptionRequired   = &Error{KindInvalidArgument, "description is required"}
	ErrVisibilityRequired    = &Error{KindInvalidArgument, "is_public is required"}
	ErrLawyerRequired        = &Error{KindInvalidArgument, "a directed request requires a lawyer"}
	ErrPublicRequestOfLawyer = &Error{KindInvalidArgument, "a public request cannot name a lawyer"}
)

// KindOf returns the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
