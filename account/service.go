package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/schema"
	"github.com/jusconnect/jusconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "account")
}

var (
	ErrInvalidCredentials = errors.New("invalid national id or password")
	ErrInvalidNationalID  = errors.New("national id must have exactly 11 digits")
	ErrMissingField       = errors.New("missing required field")

	ErrNationalIDTaken       = store.ErrNationalIDTaken
	ErrAccountNotFound       = store.ErrAccountNotFound
	ErrAcceptedRequestExists = store.ErrAcceptedRequestExists
)

// AcceptedRequestChecker tells whether an actor takes part in an accepted request
type AcceptedRequestChecker interface {
	HasAcceptedRequest(actor lifecycle.Actor) (bool, error)
}

// Registration is the data of a new account. Bio and PracticeArea are only
// used for lawyers.
type Registration struct {
	Name         string
	NationalID   string
	Password     string
	Email        string
	Phone        string
	Bio          string
	PracticeArea string
}

// ProfilePatch holds the fields to change on a profile. Blank fields are kept.
type ProfilePatch struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	Bio          string
	PracticeArea string
}

// LawyerFilter narrows the lawyer directory
type LawyerFilter struct {
	PracticeArea string
	MinMonths    int
}

// Service manages client and lawyer accounts
type Service struct {
	accounts store.AccountStore
	requests AcceptedRequestChecker
	hasher   PasswordHasher
	now      func() time.Time
}

func NewService(accounts store.AccountStore, requests AcceptedRequestChecker, hasher PasswordHasher) *Service {
	return &Service{
		accounts: accounts,
		requests: requests,
		hasher:   hasher,
		now:      time.Now,
	}
}

// RegisterClient creates a client account
func (s *Service) RegisterClient(r Registration) (*schema.Client, error) {
	if err := r.validate(false); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := &schema.Client{
		Name:         strings.TrimSpace(r.Name),
		NationalID:   r.NationalID,
		PasswordHash: hash,
		Email:        strings.TrimSpace(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
	}

	if err := s.accounts.CreateClient(c); err != nil {
		return nil, err
	}

	log.WithField("client", c.ID).Info("client registered")
	return c, nil
}

// RegisterLawyer creates a lawyer account
func (s *Service) RegisterLawyer(r Registration) (*schema.Lawyer, error) {
	if err := r.validate(true); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	l := &schema.Lawyer{
		Name:         strings.TrimSpace(r.Name),
		NationalID:   r.NationalID,
		PasswordHash: hash,
		Email:        strings.TrimSpace(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		Bio:          strings.TrimSpace(r.Bio),
		PracticeArea: strings.TrimSpace(r.PracticeArea),
	}

	if err := s.accounts.CreateLawyer(l); err != nil {
		return nil, err
	}

	log.WithField("lawyer", l.ID).Info("lawyer registered")
	return l, nil
}

// Authenticate resolves the actor owning the credentials. Lawyers are looked
// up before clients.
func (s *Service) Authenticate(nationalID, password string) (lifecycle.Actor, error) {
	l, err := s.accounts.GetLawyerByNationalID(nationalID)
	if err == nil && s.hasher.Verify(l.PasswordHash, password) {
		return lifecycle.LawyerActor(l.ID), nil
	} else if err != nil && err != store.ErrAccountNotFound {
		return nil, err
	}

	c, err := s.accounts.GetClientByNationalID(nationalID)
	if err == nil && s.hasher.Verify(c.PasswordHash, password) {
		return lifecycle.ClientActor(c.ID), nil
	} else if err != nil && err != store.ErrAccountNotFound {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}

// Client returns the profile of a client
func (s *Service) Client(id int64) (*schema.Client, error) {
	return s.accounts.GetClient(id)
}

// Lawyer returns the profile of a lawyer
func (s *Service) Lawyer(id int64) (*schema.Lawyer, error) {
	return s.accounts.GetLawyer(id)
}

// UpdateClient applies the non-blank fields of patch to a client
func (s *Service) UpdateClient(id int64, patch ProfilePatch) (*schema.Client, error) {
	c, err := s.accounts.GetClient(id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&c.Name, patch.Name)
	setIfPresent(&c.Email, patch.Email)
	setIfPresent(&c.Phone, patch.Phone)
	if err := s.setPassword(&c.PasswordHash, patch.Password); err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateClient(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateLawyer applies the non-blank fields of patch to a lawyer
func (s *Service) UpdateLawyer(id int64, patch ProfilePatch) (*schema.Lawyer, error) {
	l, err := s.accounts.GetLawyer(id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&l.Name, patch.Name)
	setIfPresent(&l.Email, patch.Email)
	setIfPresent(&l.Phone, patch.Phone)
	setIfPresent(&l.Bio, patch.Bio)
	setIfPresent(&l.PracticeArea, patch.PracticeArea)
	if err := s.setPassword(&l.PasswordHash, patch.Password); err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateLawyer(l); err != nil {
		return nil, err
	}
	return l, nil
}

// CanDelete returns ErrAcceptedRequestExists if the actor must keep its account
func (s *Service) CanDelete(actor lifecycle.Actor) error {
	accepted, err := s.requests.HasAcceptedRequest(actor)
	if err != nil {
		return err
	}
	if accepted {
		return ErrAcceptedRequestExists
	}
	return nil
}

// Delete removes the account of the actor together with its requests
func (s *Service) Delete(actor lifecycle.Actor) error {
	if err := s.CanDelete(actor); err != nil {
		return err
	}

	var err error
	switch a := actor.(type) {
	case lifecycle.ClientActor:
		err = s.accounts.DeleteClient(a.ActorID())
	case lifecycle.LawyerActor:
		err = s.accounts.DeleteLawyer(a.ActorID())
	default:
		return lifecycle.ErrRoleNotAllowed
	}

	if err != nil {
		return err
	}

	log.WithField("role", actor.Role()).WithField("actor", actor.ActorID()).Info("account deleted")
	return nil
}

// Lawyers lists the lawyer directory sorted by name
func (s *Service) Lawyers(f LawyerFilter) ([]schema.LawyerListing, error) {
	var registeredBefore *time.Time
	if f.MinMonths > 0 {
		t := s.now().AddDate(0, -f.MinMonths, 0)
		registeredBefore = &t
	}

	lawyers, err := s.accounts.ListLawyers(f.PracticeArea, registeredBefore)
	if err != nil {
		return nil, err
	}

	listings := make([]schema.LawyerListing, 0, len(lawyers))
	for _, l := range lawyers {
		listings = append(listings, l.Listing())
	}
	return listings, nil
}

func (s *Service) setPassword(hash *string, password string) error {
	if strings.TrimSpace(password) == "" {
		return nil
	}

	h, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	*hash = h
	return nil
}

func setIfPresent(field *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*field = v
	}
}

func (r Registration) validate(lawyer bool) error {
	required := map[string]string{
		"name":     r.Name,
		"password": r.Password,
		"email":    r.Email,
		"phone":    r.Phone,
	}
	if lawyer {
		required["bio"] = r.Bio
		required["practice_area"] = r.PracticeArea
	}

	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	if !validNationalID(r.NationalID) {
		return ErrInvalidNationalID
	}

	return nil
}

func validNationalID(id string) bool {
	if len(id) != 11 {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
