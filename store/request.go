package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/jusconnect/jusconnect-api/schema"
)

// CreateRequest inserts a request. For a directed request the duplicate check
// and the insert run in one transaction, and the partial unique index on
// pending pairs rejects a concurrent duplicate that passed the check.
func (s *JusconnectStore) CreateRequest(r *schema.Request) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if !r.IsPublic && r.LawyerID != nil {
		var count int
		if err := tx.Model(schema.Request{}).
			Where("client_id = ? AND lawyer_id = ? AND status = ?", r.ClientID, *r.LawyerID, schema.REQUEST_PENDING).
			Count(&count).Error; err != nil {
			return rollbackWith(tx, err)
		}

		if count > 0 {
			return rollbackWith(tx, ErrDuplicatePendingRequest)
		}
	}

	if err := tx.Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return rollbackWith(tx, ErrDuplicatePendingRequest)
		}
		return rollbackWith(tx, err)
	}

	return tx.Commit().Error
}

// GetRequest returns a request by its id
func (s *JusconnectStore) GetRequest(id uuid.UUID) (*schema.Request, error) {
	var r schema.Request

	if err := s.ormDB.Where("id = ?", id).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &r, nil
}

// ListRequestsByClient returns every request made by a client, newest first
func (s *JusconnectStore) ListRequestsByClient(clientID int64) ([]schema.Request, error) {
	return s.findRequests("client_id = ?", clientID)
}

// ListRequestsByLawyer returns every request assigned to a lawyer, newest first
func (s *JusconnectStore) ListRequestsByLawyer(lawyerID int64) ([]schema.Request, error) {
	return s.findRequests("lawyer_id = ?", lawyerID)
}

// ListPublicPendingRequests returns the public requests nobody has responded yet
func (s *JusconnectStore) ListPublicPendingRequests() ([]schema.Request, error) {
	return s.findRequests("is_public = ? AND status = ?", true, schema.REQUEST_PENDING)
}

func (s *JusconnectStore) findRequests(query string, args ...interface{}) ([]schema.Request, error) {
	requests := []schema.Request{}

	if err := s.ormDB.Where(query, args...).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// CancelRequest sets a request to `CANCELLED`. A request could be cancelled
// only by its client and only when its status is `PENDING`.
func (s *JusconnectStore) CancelRequest(id uuid.UUID, clientID int64, at time.Time) error {
	result := s.ormDB.Model(&schema.Request{}).
		Where("id = ? AND client_id = ? AND status = ?", id, clientID, schema.REQUEST_PENDING).
		Updates(map[string]interface{}{
			"status":       schema.REQUEST_CANCELLED,
			"responded_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}

	return nil
}

// RespondRequest sets a request to the lawyer's decision and claims it for the
// lawyer when no lawyer is assigned yet. Only the first responder of a
// `PENDING` request succeeds.
func (s *JusconnectStore) RespondRequest(id uuid.UUID, lawyerID int64, decision schema.RequestStatus, at time.Time) error {
	result := s.ormDB.Model(&schema.Request{}).
		Where("id = ? AND status = ? AND (lawyer_id IS NULL OR lawyer_id = ?)", id, schema.REQUEST_PENDING, lawyerID).
		Updates(map[string]interface{}{
			"status":       decision,
			"lawyer_id":    lawyerID,
			"responded_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}

	return nil
}

func (s *JusconnectStore) ClientHasAcceptedRequest(clientID int64) (bool, error) {
	return hasAcceptedRequest(s.ormDB, "client_id", clientID)
}

func (s *JusconnectStore) LawyerHasAcceptedRequest(lawyerID int64) (bool, error) {
	return hasAcceptedRequest(s.ormDB, "lawyer_id", lawyerID)
}

// DeleteRequestsByClient removes every request of a client unless one of them is accepted
func (s *JusconnectStore) DeleteRequestsByClient(clientID int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		return deleteRequestsOf(tx, "client_id", clientID)
	})
}

// DeleteRequestsByLawyer removes every request of a lawyer unless one of them is accepted
func (s *JusconnectStore) DeleteRequestsByLawyer(lawyerID int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		return deleteRequestsOf(tx, "lawyer_id", lawyerID)
	})
}

func (s *JusconnectStore) inTransaction(fn func(tx *gorm.DB) error) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(tx); err != nil {
		return rollbackWith(tx, err)
	}

	return tx.Commit().Error
}

func hasAcceptedRequest(db *gorm.DB, column string, id int64) (bool, error) {
	var count int
	if err := db.Model(schema.Request{}).
		Where(column+" = ? AND status = ?", id, schema.REQUEST_ACCEPTED).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deleteRequestsOf deletes the non-accepted requests first and then refuses
// if an accepted one remains. A concurrent accept either commits before the
// delete, and is then counted, or finds its row already deleted.
func deleteRequestsOf(tx *gorm.DB, column string, id int64) error {
	if err := tx.Where(column+" = ? AND status <> ?", id, schema.REQUEST_ACCEPTED).
		Delete(schema.Request{}).Error; err != nil {
		return err
	}

	accepted, err := hasAcceptedRequest(tx, column, id)
	if err != nil {
		return err
	}
	if accepted {
		return ErrAcceptedRequestExists
	}

	return nil
}
