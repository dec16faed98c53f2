package store

import (
	"strings"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/jusconnect/jusconnect-api/schema"
)

// CreateClient is to register a client into jusconnect system
func (s *JusconnectStore) CreateClient(c *schema.Client) error {
	return s.createAccount(&schema.Client{}, c.NationalID, c)
}

// CreateLawyer is to register a lawyer into jusconnect system
func (s *JusconnectStore) CreateLawyer(l *schema.Lawyer) error {
	return s.createAccount(&schema.Lawyer{}, l.NationalID, l)
}

func (s *JusconnectStore) createAccount(model interface{}, nationalID string, account interface{}) error {
	var count int
	if err := s.ormDB.Model(model).Where("national_id = ?", nationalID).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return ErrNationalIDTaken
	}

	if err := s.ormDB.Create(account).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrNationalIDTaken
		}
		return err
	}

	return nil
}

// GetClient returns a client of a given id
func (s *JusconnectStore) GetClient(id int64) (*schema.Client, error) {
	var c schema.Client
	if err := s.first(&c, "id = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetClientByNationalID returns a client of a given national id
func (s *JusconnectStore) GetClientByNationalID(nationalID string) (*schema.Client, error) {
	var c schema.Client
	if err := s.first(&c, "national_id = ?", nationalID); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetLawyer returns a lawyer of a given id
func (s *JusconnectStore) GetLawyer(id int64) (*schema.Lawyer, error) {
	var l schema.Lawyer
	if err := s.first(&l, "id = ?", id); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLawyerByNationalID returns a lawyer of a given national id
func (s *JusconnectStore) GetLawyerByNationalID(nationalID string) (*schema.Lawyer, error) {
	var l schema.Lawyer
	if err := s.first(&l, "national_id = ?", nationalID); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *JusconnectStore) first(out interface{}, query string, args ...interface{}) error {
	if err := s.ormDB.Where(query, args...).First(out).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (s *JusconnectStore) ClientExists(id int64) (bool, error) {
	return s.exists(&schema.Client{}, id)
}

func (s *JusconnectStore) LawyerExists(id int64) (bool, error) {
	return s.exists(&schema.Lawyer{}, id)
}

func (s *JusconnectStore) exists(model interface{}, id int64) (bool, error) {
	var count int
	if err := s.ormDB.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateClient saves the profile of a client
func (s *JusconnectStore) UpdateClient(c *schema.Client) error {
	return s.ormDB.Save(c).Error
}

// UpdateLawyer saves the profile of a lawyer
func (s *JusconnectStore) UpdateLawyer(l *schema.Lawyer) error {
	return s.ormDB.Save(l).Error
}

// DeleteClient removes a client and all of its requests permanently. It is
// refused while the client has an accepted request.
func (s *JusconnectStore) DeleteClient(id int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		if err := deleteRequestsOf(tx, "client_id", id); err != nil {
			return err
		}
		return deleteAccount(tx, schema.Client{}, id)
	})
}

// DeleteLawyer removes a lawyer and all of its requests permanently. It is
// refused while the lawyer has an accepted request.
func (s *JusconnectStore) DeleteLawyer(id int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		if err := deleteRequestsOf(tx, "lawyer_id", id); err != nil {
			return err
		}
		return deleteAccount(tx, schema.Lawyer{}, id)
	})
}

func deleteAccount(tx *gorm.DB, model interface{}, id int64) error {
	result := tx.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ListLawyers returns lawyers sorted by name. An empty practice area matches
// every lawyer and a nil registeredBefore disables the seniority filter.
func (s *JusconnectStore) ListLawyers(practiceArea string, registeredBefore *time.Time) ([]schema.Lawyer, error) {
	lawyers := []schema.Lawyer{}

	q := s.ormDB.Order("name asc")
	if area := strings.ToLower(strings.TrimSpace(practiceArea)); area != "" {
		q = q.Where("LOWER(TRIM(practice_area)) = ?", area)
	}

	if registeredBefore != nil {
		q = q.Where("created_at <= ?", *registeredBefore)
	}

	if err := q.Find(&lawyers).Error; err != nil {
		return nil, err
	}

	return lawyers, nil
}
