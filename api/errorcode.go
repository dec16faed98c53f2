package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "the national id has been registered",
		1101: "account not found",
		1102: "the account takes part in an accepted request",
		1103: "the account is under deletion",
		1104: account.ErrInvalidCredentials.Error(),

		1200: lifecycle.ErrRequestNotFound.Error(),
		1201: lifecycle.ErrClientNotFound.Error(),
		1202: lifecycle.ErrLawyerNotFound.Error(),

		1210: lifecycle.ErrNotRequestOwner.Error(),
		1211: lifecycle.ErrNotDirectedToYou.Error(),
		1212: lifecycle.ErrRoleNotAllowed.Error(),

		1220: lifecycle.ErrOnlyPendingCancellable.Error(),
		1221: lifecycle.ErrAlreadyResponded.Error(),

		1230: lifecycle.ErrDuplicatePendingRequest.Error(),

		1240: lifecycle.ErrInvalidDecision.Error(),
		1241: lifecycle.ErrDescriptionRequired.Error(),
		1242: lifecycle.ErrVisibilityRequired.Error(),
		1243: lifecycle.ErrLawyerRequired.Error(),
		1244: lifecycle.ErrPublicRequestOfLawyer.Error(),

		1300: "too many requests",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorNationalIDTaken     = errorJSON(1100)
	errorAccountNotFound     = errorJSON(1101)
	errorHasAcceptedRequests = errorJSON(1102)
	errorAccountDeleting     = errorJSON(1103)
	errorInvalidCredentials  = errorJSON(1104)

	errorRequestNotFound = errorJSON(1200)
	errorClientNotFound  = errorJSON(1201)
	errorLawyerNotFound  = errorJSON(1202)

	errorNotRequestOwner  = errorJSON(1210)
	errorNotDirectedToYou = errorJSON(1211)
	errorRoleNotAllowed   = errorJSON(1212)

	errorOnlyPendingCancellable = errorJSON(1220)
	errorAlreadyResponded       = errorJSON(1221)

	errorDuplicatePendingRequest = errorJSON(1230)

	errorInvalidDecision       = errorJSON(1240)
	errorDescriptionRequired   = errorJSON(1241)
	errorVisibilityRequired    = errorJSON(1242)
	errorLawyerRequired        = errorJSON(1243)
	errorPublicRequestOfLawyer = errorJSON(1244)

	errorTooManyRequests = errorJSON(1300)
)

// lifecycleErrors maps every expected lifecycle failure to its response
var lifecycleErrors = map[*lifecycle.Error]ErrorResponse{
	lifecycle.ErrRequestNotFound: errorRequestNotFound,
	lifecycle.ErrClientNotFound:  errorClientNotFound,
	lifecycle.ErrLawyerNotFound:  errorLawyerNotFound,

	lifecycle.ErrNotRequestOwner:  errorNotRequestOwner,
	lifecycle.ErrNotDirectedToYou: errorNotDirectedToYou,
	lifecycle.ErrRoleNotAllowed:   errorRoleNotAllowed,

	lifecycle.ErrOnlyPendingCancellable: errorOnlyPendingCancellable,
	lifecycle.ErrAlreadyResponded:       errorAlreadyResponded,

	lifecycle.ErrDuplicatePendingRequest: errorDuplicatePendingRequest,
	lifecycle.ErrAcceptedRequestExists:   errorHasAcceptedRequests,

	lifecycle.ErrInvalidDecision:       errorInvalidDecision,
	lifecycle.ErrDescriptionRequired:   errorDescriptionRequired,
	lifecycle.ErrVisibilityRequired:    errorVisibilityRequired,
	lifecycle.ErrLawyerRequired:        errorLawyerRequired,
	lifecycle.ErrPublicRequestOfLawyer: errorPublicRequestOfLawyer,
}

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// localize translates the message of obj into the language of the request
func localize(c *gin.Context, obj ErrorResponse) ErrorResponse {
	obj.Message = utils.LocalizeError(obj.Code, obj.Message, c.GetHeader("Accept-Language"))
	return obj
}

// lifecycleStatus is the http status of each lifecycle failure kind
var lifecycleStatus = map[lifecycle.Kind]int{
	lifecycle.KindNotFound:          http.StatusNotFound,
	lifecycle.KindForbidden:         http.StatusForbidden,
	lifecycle.KindInvalidTransition: http.StatusConflict,
	lifecycle.KindConflict:          http.StatusConflict,
	lifecycle.KindInvalidArgument:   http.StatusBadRequest,
}

// abortWithError responds with the code of an expected failure, or with an
// internal server error for anything else
func abortWithError(c *gin.Context, err error) {
	var lerr *lifecycle.Error
	if errors.As(err, &lerr) {
		if obj, ok := lifecycleErrors[lerr]; ok {
			abortWithEncoding(c, lifecycleStatus[lerr.Kind], obj)
			return
		}
	}

	switch {
	case errors.Is(err, account.ErrNationalIDTaken):
		abortWithEncoding(c, http.StatusConflict, errorNationalIDTaken)
	case errors.Is(err, account.ErrAccountNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
	case errors.Is(err, account.ErrAcceptedRequestExists):
		abortWithEncoding(c, http.StatusConflict, errorHasAcceptedRequests)
	case errors.Is(err, account.ErrInvalidCredentials):
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
	case errors.Is(err, account.ErrInvalidNationalID), errors.Is(err, account.ErrMissingField):
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: err.Error(),
		})
	default:
		shouldInterupt(err, c)
	}
}
