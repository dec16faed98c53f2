package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jusconnect/jusconnect-api/account"
)

// lawyerList is the public directory of lawyers
func (s *Server) lawyerList(c *gin.Context) {
	var params struct {
		PracticeArea string `form:"practice_area"`
		MinMonths    int    `form:"min_months" binding:"min=0"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lawyers, err := s.accounts.Lawyers(account.LawyerFilter{
		PracticeArea: params.PracticeArea,
		MinMonths:    params.MinMonths,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": lawyers})
}

// lawyerDetail returns the directory entry of one lawyer
func (s *Server) lawyerDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("lawyerID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lawyer, err := s.accounts.Lawyer(id)
	if err == account.ErrAccountNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorLawyerNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": lawyer.Listing()})
}
