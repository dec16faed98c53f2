package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/jusconnect/jusconnect-api/schema"
)

var (
	ErrRequestNotFound         = fmt.Errorf("request not found")
	ErrRequestNotPending       = fmt.Errorf("the request is either responded or not open for you")
	ErrDuplicatePendingRequest = fmt.Errorf("a pending request for this lawyer already exists")
	ErrAccountNotFound         = fmt.Errorf("account not found")
	ErrNationalIDTaken         = fmt.Errorf("national id has been registered")
	ErrAcceptedRequestExists   = fmt.Errorf("the account has accepted requests")
)

// uniqueViolation is the postgres error code of a unique index violation
const uniqueViolation = "23505"

// pendingPairIndex keeps at most one pending request per client and lawyer
const pendingPairIndex = "requests_unique_pending_pair"

// jusconnect main datastore
type JusconnectCore interface {
	Ping() error

	RequestStore
	AccountStore
}

// RequestStore persists service requests. Transitions are conditional
// updates so that exactly one concurrent writer observes a pending request.
type RequestStore interface {
	CreateRequest(r *schema.Request) error
	GetRequest(id uuid.UUID) (*schema.Request, error)
	ListRequestsByClient(clientID int64) ([]schema.Request, error)
	ListRequestsByLawyer(lawyerID int64) ([]schema.Request, error)
	ListPublicPendingRequests() ([]schema.Request, error)
	CancelRequest(id uuid.UUID, clientID int64, at time.Time) error
	RespondRequest(id uuid.UUID, lawyerID int64, decision schema.RequestStatus, at time.Time) error

	ClientHasAcceptedRequest(clientID int64) (bool, error)
	LawyerHasAcceptedRequest(lawyerID int64) (bool, error)
	DeleteRequestsByClient(clientID int64) error
	DeleteRequestsByLawyer(lawyerID int64) error
}

// AccountStore persists clients and lawyers
type AccountStore interface {
	CreateClient(c *schema.Client) error
	GetClient(id int64) (*schema.Client, error)
	GetClientByNationalID(nationalID string) (*schema.Client, error)
	UpdateClient(c *schema.Client) error
	DeleteClient(id int64) error
	ClientExists(id int64) (bool, error)

	CreateLawyer(l *schema.Lawyer) error
	GetLawyer(id int64) (*schema.Lawyer, error)
	GetLawyerByNationalID(nationalID string) (*schema.Lawyer, error)
	UpdateLawyer(l *schema.Lawyer) error
	DeleteLawyer(id int64) error
	LawyerExists(id int64) (bool, error)
	ListLawyers(practiceArea string, registeredBefore *time.Time) ([]schema.Lawyer, error)
}

// JusconnectStore is an implementation of JusconnectCore
type JusconnectStore struct {
	ormDB *gorm.DB
}

func NewJusconnectStore(ormDB *gorm.DB) *JusconnectStore {
	return &JusconnectStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *JusconnectStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates the tables and indexes used by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.Client{},
		&schema.Lawyer{},
		&schema.Request{},
	).Error; err != nil {
		return err
	}

	return db.Model(schema.Request{}).Where(fmt.Sprintf("status = '%s'", schema.REQUEST_PENDING)).
		AddUniqueIndex(pendingPairIndex, "client_id", "lawyer_id").Error
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}

// rollbackWith rolls the transaction back and returns err
func rollbackWith(tx *gorm.DB, err error) error {
	tx.Rollback()
	return err
}
