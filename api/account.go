package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/lifecycle"
)

type registerParams struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"national_id" binding:"required,len=11,numeric"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
}

func (p registerParams) registration() account.Registration {
	return account.Registration{
		Name:       p.Name,
		NationalID: p.NationalID,
		Password:   p.Password,
		Email:      p.Email,
		Phone:      p.Phone,
	}
}

// clientRegister is the API for register a new client
func (s *Server) clientRegister(c *gin.Context) {
	logger := log.WithField("api", "clientRegister")

	var params registerParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.WithError(err).Warn(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	client, err := s.accounts.RegisterClient(params.registration())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": client})
}

// lawyerRegister is the API for register a new lawyer
func (s *Server) lawyerRegister(c *gin.Context) {
	logger := log.WithField("api", "lawyerRegister")

	var params struct {
		registerParams
		Bio          string `json:"bio" binding:"required"`
		PracticeArea string `json:"practice_area" binding:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.WithError(err).Warn(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	r := params.registration()
	r.Bio = params.Bio
	r.PracticeArea = params.PracticeArea

	lawyer, err := s.accounts.RegisterLawyer(r)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": lawyer})
}

// accountDetail is the API to query the profile of the caller
func (s *Server) accountDetail(c *gin.Context) {
	actor := actorOf(c)

	var (
		profile interface{}
		err     error
	)

	switch actor.Role() {
	case lifecycle.RoleLawyer:
		profile, err = s.accounts.Lawyer(actor.ActorID())
	default:
		profile, err = s.accounts.Client(actor.ActorID())
	}

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// accountUpdate is the API to update the profile of the caller. Blank fields
// are left untouched.
func (s *Server) accountUpdate(c *gin.Context) {
	var params struct {
		Name         string `json:"name"`
		Email        string `json:"email" binding:"omitempty,email"`
		Phone        string `json:"phone"`
		Password     string `json:"password"`
		Bio          string `json:"bio"`
		PracticeArea string `json:"practice_area"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	patch := account.ProfilePatch{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		Password:     params.Password,
		Bio:          params.Bio,
		PracticeArea: params.PracticeArea,
	}

	actor := actorOf(c)

	var (
		profile interface{}
		err     error
	)

	switch actor.Role() {
	case lifecycle.RoleLawyer:
		profile, err = s.accounts.UpdateLawyer(actor.ActorID(), patch)
	default:
		profile, err = s.accounts.UpdateClient(actor.ActorID(), patch)
	}

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// accountDelete is the API to remove an account and its requests from our
// service. The removal is handed to the background workers when available.
func (s *Server) accountDelete(c *gin.Context) {
	actor := actorOf(c)

	if err := s.accounts.CanDelete(actor); err != nil {
		abortWithError(c, err)
		return
	}

	if s.tasks != nil {
		if err := s.tasks.EnqueueAccountDeletion(actor); shouldInterupt(err, c) {
			return
		}

		c.JSON(http.StatusAccepted, localize(c, errorAccountDeleting))
		return
	}

	if err := s.accounts.Delete(actor); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
