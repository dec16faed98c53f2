package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jusconnect/jusconnect-api/schema"
)

// RequestView is the actor-scoped representation of a request. The client's
// email and phone are omitted unless disclosure is allowed.
type RequestView struct {
	ID          uuid.UUID            `json:"id"`
	Description string               `json:"description"`
	Status      schema.RequestStatus `json:"status"`
	IsPublic    bool                 `json:"is_public"`
	CreatedAt   time.Time            `json:"created_at"`
	RespondedAt *time.Time           `json:"responded_at"`
	ClientID    int64                `json:"client_id"`
	ClientName  string               `json:"client_name"`
	ClientEmail *string              `json:"client_email,omitempty"`
	ClientPhone *string              `json:"client_phone,omitempty"`
	LawyerID    *int64               `json:"lawyer_id,omitempty"`
	LawyerName  *string              `json:"lawyer_name,omitempty"`
}

// RevealContact reports whether actor may read the contact fields of the
// client who owns r: the owning client always may, a lawyer once the
// request is accepted.
func RevealContact(actor Actor, r *schema.Request) bool {
	switch a := actor.(type) {
	case ClientActor:
		return r.ClientID == a.ActorID()
	case LawyerActor:
		return r.Status == schema.REQUEST_ACCEPTED
	}
	return false
}

// Project builds the view of a request. lawyer may be nil for an unclaimed
// public request.
func Project(r *schema.Request, client *schema.Client, lawyer *schema.Lawyer, revealContact bool) RequestView {
	v := RequestView{
		ID:          r.ID,
		Description: r.Description,
		Status:      r.Status,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		RespondedAt: r.RespondedAt,
		ClientID:    r.ClientID,
		ClientName:  client.Name,
	}

	if revealContact {
		email, phone := client.Email, client.Phone
		v.ClientEmail = &email
		v.ClientPhone = &phone
	}

	if r.LawyerID != nil && lawyer != nil {
		id, name := lawyer.ID, lawyer.Name
		v.LawyerID = &id
		v.LawyerName = &name
	}

	return v
}

// projector resolves display fields from the directory, looking each
// account up at most once
type projector struct {
	directory Directory
	clients   map[int64]*schema.Client
	lawyers   map[int64]*schema.Lawyer
}

func newProjector(directory Directory) *projector {
	return &projector{
		directory: directory,
		clients:   map[int64]*schema.Client{},
		lawyers:   map[int64]*schema.Lawyer{},
	}
}

func (p *projector) view(r *schema.Request, revealContact bool) (RequestView, error) {
	client, ok := p.clients[r.ClientID]
	if !ok {
		c, err := p.directory.GetClient(r.ClientID)
		if err != nil {
			return RequestView{}, fmt.Errorf("lookup client %d: %w", r.ClientID, err)
		}
		p.clients[r.ClientID] = c
		client = c
	}

	var lawyer *schema.Lawyer
	if r.LawyerID != nil {
		l, ok := p.lawyers[*r.LawyerID]
		if !ok {
			found, err := p.directory.GetLawyer(*r.LawyerID)
			if err != nil {
				return RequestView{}, fmt.Errorf("lookup lawyer %d: %w", *r.LawyerID, err)
			}
			p.lawyers[*r.LawyerID] = found
			l = found
		}
		lawyer = l
	}

	return Project(r, client, lawyer, revealContact), nil
}
