package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/schema"
)

// requestCreate is the API for a client to open a request
func (s *Server) requestCreate(c *gin.Context) {
	var params struct {
		LawyerID    *int64 `json:"lawyer_id"`
		Description string `json:"description"`
		IsPublic    *bool  `json:"is_public"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	view, err := s.lifecycle.Create(actorOf(c), lifecycle.CreateInput{
		LawyerID:    params.LawyerID,
		Description: params.Description,
		IsPublic:    params.IsPublic,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": view})
}

// requestList returns the requests made by a client or assigned to a lawyer
func (s *Server) requestList(c *gin.Context) {
	actor := actorOf(c)

	var (
		views []lifecycle.RequestView
		err   error
	)

	switch actor.Role() {
	case lifecycle.RoleLawyer:
		views, err = s.lifecycle.ListDirectedToMe(actor)
	default:
		views, err = s.lifecycle.ListMine(actor)
	}

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": views})
}

// requestListPublic returns the pending public requests
func (s *Server) requestListPublic(c *gin.Context) {
	views, err := s.lifecycle.ListPublicPending(actorOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": views})
}

// requestDetail returns one request
func (s *Server) requestDetail(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	view, err := s.lifecycle.View(actorOf(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": view})
}

// requestCancel is the API for a client to withdraw a pending request
func (s *Server) requestCancel(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	view, err := s.lifecycle.Cancel(actorOf(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": view})
}

// requestRespond is the API for a lawyer to accept or decline a request
func (s *Server) requestRespond(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Status schema.RequestStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.Status.Valid() {
		abortWithError(c, lifecycle.ErrInvalidDecision)
		return
	}

	view, err := s.lifecycle.Respond(actorOf(c), id, params.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": view})
}

func requestIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return uuid.Nil, false
	}
	return id, true
}
