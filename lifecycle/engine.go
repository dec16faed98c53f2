package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jusconnect/jusconnect-api/schema"
	"github.com/jusconnect/jusconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

// Directory is the account lookup the engine needs to validate references
// and to fill display fields
type Directory interface {
	ClientExists(id int64) (bool, error)
	LawyerExists(id int64) (bool, error)
	GetClient(id int64) (*schema.Client, error)
	GetLawyer(id int64) (*schema.Lawyer, error)
}

// CreateInput carries the client supplied fields of a new request. IsPublic
// is a pointer because it has no default.
type CreateInput struct {
	LawyerID    *int64
	Description string
	IsPublic    *bool
}

// Engine is the only writer of request state. Every transition is validated
// against a freshly loaded record and then applied by a conditional update,
// so a lost race is reported from the state that won it.
type Engine struct {
	requests  store.RequestStore
	directory Directory
	now       func() time.Time
}

func NewEngine(requests store.RequestStore, directory Directory) *Engine {
	return &Engine{
		requests:  requests,
		directory: directory,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a new pending request on behalf of a client
func (e *Engine) Create(actor Actor, in CreateInput) (*RequestView, error) {
	client, ok := actor.(ClientActor)
	if !ok {
		return nil, ErrRoleNotAllowed
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	if in.IsPublic == nil {
		return nil, ErrVisibilityRequired
	}
	isPublic := *in.IsPublic

	if isPublic && in.LawyerID != nil {
		return nil, ErrPublicRequestOfLawyer
	}

	if !isPublic && in.LawyerID == nil {
		return nil, ErrLawyerRequired
	}

	exists, err := e.directory.ClientExists(client.ActorID())
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	var lawyerID *int64
	if !isPublic {
		exists, err := e.directory.LawyerExists(*in.LawyerID)
		if err != nil {
			return nil, fmt.Errorf("check lawyer: %w", err)
		}
		if !exists {
			return nil, ErrLawyerNotFound
		}
		id := *in.LawyerID
		lawyerID = &id
	}

	r := &schema.Request{
		Description: description,
		Status:      schema.REQUEST_PENDING,
		IsPublic:    isPublic,
		ClientID:    client.ActorID(),
		LawyerID:    lawyerID,
		CreatedAt:   e.now(),
	}

	if err := e.requests.CreateRequest(r); err != nil {
		if err == store.ErrDuplicatePendingRequest {
			return nil, ErrDuplicatePendingRequest
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	log.WithField("request", r.ID).WithField("client", r.ClientID).Debug("request created")

	return e.single(actor, r)
}

// Cancel withdraws a pending request of the calling client
func (e *Engine) Cancel(actor Actor, id uuid.UUID) (*RequestView, error) {
	client, ok := actor.(ClientActor)
	if !ok {
		return nil, ErrRoleNotAllowed
	}

	check := func(r *schema.Request) error {
		if r.ClientID != client.ActorID() {
			return ErrNotRequestOwner
		}
		if r.Status != schema.REQUEST_PENDING {
			return ErrOnlyPendingCancellable
		}
		return nil
	}

	r, err := e.load(id)
	if err != nil {
		return nil, err
	}

	if err := check(r); err != nil {
		return nil, err
	}

	now := e.now()
	if err := e.requests.CancelRequest(id, client.ActorID(), now); err != nil {
		if err == store.ErrRequestNotPending {
			return nil, e.lostRace(id, check, ErrOnlyPendingCancellable)
		}
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	r.Status = schema.REQUEST_CANCELLED
	r.RespondedAt = &now

	log.WithField("request", id).WithField("client", client.ActorID()).Debug("request cancelled")

	return e.single(actor, r)
}

// Respond records a lawyer's decision on a pending request. An unclaimed
// public request is claimed by the responding lawyer in the same transition.
func (e *Engine) Respond(actor Actor, id uuid.UUID, decision schema.RequestStatus) (*RequestView, error) {
	lawyer, ok := actor.(LawyerActor)
	if !ok {
		return nil, ErrRoleNotAllowed
	}

	// every lawyer may answer a public request; the first one wins
	check := func(r *schema.Request) error {
		if !r.IsPublic && !r.DirectedTo(lawyer.ActorID()) {
			return ErrNotDirectedToYou
		}
		if r.Status != schema.REQUEST_PENDING {
			return ErrAlreadyResponded
		}
		return nil
	}

	r, err := e.load(id)
	if err != nil {
		return nil, err
	}

	if err := check(r); err != nil {
		return nil, err
	}

	if decision != schema.REQUEST_ACCEPTED && decision != schema.REQUEST_DECLINED {
		return nil, ErrInvalidDecision
	}

	if !r.HasLawyer() {
		exists, err := e.directory.LawyerExists(lawyer.ActorID())
		if err != nil {
			return nil, fmt.Errorf("check lawyer: %w", err)
		}
		if !exists {
			return nil, ErrLawyerNotFound
		}
	}

	now := e.now()
	if err := e.requests.RespondRequest(id, lawyer.ActorID(), decision, now); err != nil {
		if err == store.ErrRequestNotPending {
			return nil, e.lostRace(id, check, ErrAlreadyResponded)
		}
		return nil, fmt.Errorf("respond request: %w", err)
	}

	lawyerID := lawyer.ActorID()
	r.Status = decision
	r.LawyerID = &lawyerID
	r.RespondedAt = &now

	log.WithField("request", id).WithField("lawyer", lawyerID).Debugf("request %s", decision)

	return e.single(actor, r)
}

// View returns a request the actor is allowed to see
func (e *Engine) View(actor Actor, id uuid.UUID) (*RequestView, error) {
	r, err := e.load(id)
	if err != nil {
		return nil, err
	}

	switch a := actor.(type) {
	case ClientActor:
		if r.ClientID != a.ActorID() {
			return nil, ErrNotRequestOwner
		}
	case LawyerActor:
		if !r.DirectedTo(a.ActorID()) && !r.IsPublic {
			return nil, ErrNotDirectedToYou
		}
	default:
		return nil, ErrRoleNotAllowed
	}

	return e.single(actor, r)
}

// ListMine returns every request made by the calling client
func (e *Engine) ListMine(actor Actor) ([]RequestView, error) {
	client, ok := actor.(ClientActor)
	if !ok {
		return nil, ErrRoleNotAllowed
	}

	requests, err := e.requests.ListRequestsByClient(client.ActorID())
	if err != nil {
		return nil, fmt.Errorf("list client requests: %w", err)
	}

	return e.many(actor, requests)
}

// ListDirectedToMe returns every request assigned to the calling lawyer
func (e *Engine) ListDirectedToMe(actor Actor) ([]RequestView, error) {
	lawyer, ok := actor.(LawyerActor)
	if !ok {
		return nil, ErrRoleNotAllowed
	}

	requests, err := e.requests.ListRequestsByLawyer(lawyer.ActorID())
	if err != nil {
		return nil, fmt.Errorf("list lawyer requests: %w", err)
	}

	return e.many(actor, requests)
}

// ListPublicPending returns the discovery feed of unanswered public requests
func (e *Engine) ListPublicPending(actor Actor) ([]RequestView, error) {
	if _, ok := actor.(LawyerActor); !ok {
		return nil, ErrRoleNotAllowed
	}

	requests, err := e.requests.ListPublicPendingRequests()
	if err != nil {
		return nil, fmt.Errorf("list public requests: %w", err)
	}

	return e.many(actor, requests)
}

// HasAcceptedRequest reports whether the actor takes part in an accepted
// request. Account deletion must be refused while it does.
func (e *Engine) HasAcceptedRequest(actor Actor) (bool, error) {
	var (
		accepted bool
		err      error
	)

	switch a := actor.(type) {
	case ClientActor:
		accepted, err = e.requests.ClientHasAcceptedRequest(a.ActorID())
	case LawyerActor:
		accepted, err = e.requests.LawyerHasAcceptedRequest(a.ActorID())
	default:
		return false, ErrRoleNotAllowed
	}

	if err != nil {
		return false, fmt.Errorf("check accepted requests: %w", err)
	}
	return accepted, nil
}

// DeleteAllRequests removes every request of the actor, unless one of them is accepted
func (e *Engine) DeleteAllRequests(actor Actor) error {
	var err error

	switch a := actor.(type) {
	case ClientActor:
		err = e.requests.DeleteRequestsByClient(a.ActorID())
	case LawyerActor:
		err = e.requests.DeleteRequestsByLawyer(a.ActorID())
	default:
		return ErrRoleNotAllowed
	}

	if err == store.ErrAcceptedRequestExists {
		return ErrAcceptedRequestExists
	} else if err != nil {
		return fmt.Errorf("delete requests: %w", err)
	}

	log.WithField("role", actor.Role()).WithField("actor", actor.ActorID()).Info("requests deleted")
	return nil
}

func (e *Engine) load(id uuid.UUID) (*schema.Request, error) {
	r, err := e.requests.GetRequest(id)
	if err == store.ErrRequestNotFound {
		return nil, ErrRequestNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return r, nil
}

// lostRace explains a conditional update that matched no row by validating
// the request again against its current state
func (e *Engine) lostRace(id uuid.UUID, check func(*schema.Request) error, fallback error) error {
	r, err := e.load(id)
	if err != nil {
		return err
	}

	if err := check(r); err != nil {
		return err
	}

	return fallback
}

func (e *Engine) single(actor Actor, r *schema.Request) (*RequestView, error) {
	v, err := newProjector(e.directory).view(r, RevealContact(actor, r))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (e *Engine) many(actor Actor, requests []schema.Request) ([]RequestView, error) {
	p := newProjector(e.directory)

	views := make([]RequestView, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		v, err := p.view(r, RevealContact(actor, r))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, nil
}
