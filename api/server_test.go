package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/api/mocks"
	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/ratelimit"
	"github.com/jusconnect/jusconnect-api/schema"
)

var testKey *rsa.PrivateKey

func init() {
	gin.SetMode(gin.TestMode)

	var err error
	testKey, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
}

type pingFunc func() error

func (f pingFunc) Ping() error { return f() }

type testServer struct {
	*Server
	ctl       *gomock.Controller
	lifecycle *mocks.MockRequestLifecycle
	accounts  *mocks.MockAccountService
	tasks     *mocks.MockTaskQueue
	router    *gin.Engine
}

func newTestServer(t *testing.T, limiter ratelimit.Limiter, withTasks bool) *testServer {
	ctl := gomock.NewController(t)
	ts := &testServer{
		ctl:       ctl,
		lifecycle: mocks.NewMockRequestLifecycle(ctl),
		accounts:  mocks.NewMockAccountService(ctl),
		tasks:     mocks.NewMockTaskQueue(ctl),
	}

	ts.Server = &Server{
		store:         pingFunc(func() error { return nil }),
		lifecycle:     ts.lifecycle,
		accounts:      ts.accounts,
		jwtPrivateKey: testKey,
		limiter:       limiter,
	}
	if withTasks {
		ts.Server.tasks = ts.tasks
	}

	ts.router = ts.setupRouter()
	return ts
}

func signToken(t *testing.T, key *rsa.PrivateKey, actor lifecycle.Actor) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, actorClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "12345678901",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
			Id:        uuid.New().String(),
		},
		AccountID: actor.ActorID(),
		Role:      string(actor.Role()),
	})

	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func (ts *testServer) do(t *testing.T, method, path string, actor lifecycle.Actor, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+signToken(t, testKey, actor))
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	w := ts.do(t, "GET", "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.Server.store = pingFunc(func() error { return errors.New("connection refused") })
	w = ts.do(t, "GET", "/healthz", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(999), decodeError(t, w).Code)
}

func TestRequestJWT(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	ts.accounts.EXPECT().Authenticate("20000000002", "secret").Return(lifecycle.LawyerActor(20), nil)

	w := ts.do(t, "POST", "/api/auth", nil, map[string]string{
		"national_id": "20000000002",
		"password":    "secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Role     string  `json:"role"`
		JWTToken string  `json:"jwt_token"`
		ExpireIn float64 `json:"expire_in"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LAWYER", resp.Role)
	assert.Equal(t, time.Hour.Seconds(), resp.ExpireIn)

	// the issued token resolves the same actor
	ts.lifecycle.EXPECT().ListDirectedToMe(lifecycle.LawyerActor(20)).Return([]lifecycle.RequestView{}, nil)

	req := httptest.NewRequest("GET", "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+resp.JWTToken)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRequestJWTInvalidCredentials(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	ts.accounts.EXPECT().Authenticate("20000000002", "wrong").Return(nil, account.ErrInvalidCredentials)

	w := ts.do(t, "POST", "/api/auth", nil, map[string]string{
		"national_id": "20000000002",
		"password":    "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int64(1104), decodeError(t, w).Code)
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	w := ts.do(t, "GET", "/api/requests", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1001), decodeError(t, w).Code)

	forger, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, forger, lifecycle.ClientActor(10)))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, int64(1003), decodeError(t, rec).Code)
}

func TestRequestCreate(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	id := uuid.New()
	lawyerID := int64(20)
	isPublic := false

	ts.lifecycle.EXPECT().Create(lifecycle.ClientActor(10), lifecycle.CreateInput{
		LawyerID:    &lawyerID,
		Description: "ajuda trabalhista",
		IsPublic:    &isPublic,
	}).Return(&lifecycle.RequestView{
		ID:       id,
		Status:   schema.REQUEST_PENDING,
		ClientID: 10,
		LawyerID: &lawyerID,
	}, nil)

	w := ts.do(t, "POST", "/api/requests", lifecycle.ClientActor(10), map[string]interface{}{
		"lawyer_id":   20,
		"description": "ajuda trabalhista",
		"is_public":   false,
		"client_id":   99,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Result lifecycle.RequestView `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Result.ID)
	assert.Equal(t, schema.REQUEST_PENDING, resp.Result.Status)
	assert.Equal(t, int64(10), resp.Result.ClientID)
}

func TestLifecycleErrorCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   int64
	}{
		{lifecycle.ErrRequestNotFound, http.StatusNotFound, 1200},
		{lifecycle.ErrLawyerNotFound, http.StatusNotFound, 1202},
		{lifecycle.ErrNotRequestOwner, http.StatusForbidden, 1210},
		{lifecycle.ErrNotDirectedToYou, http.StatusForbidden, 1211},
		{lifecycle.ErrRoleNotAllowed, http.StatusForbidden, 1212},
		{lifecycle.ErrOnlyPendingCancellable, http.StatusConflict, 1220},
		{lifecycle.ErrAlreadyResponded, http.StatusConflict, 1221},
		{lifecycle.ErrDuplicatePendingRequest, http.StatusConflict, 1230},
		{lifecycle.ErrInvalidDecision, http.StatusBadRequest, 1240},
		{errors.New("database is gone"), http.StatusInternalServerError, 999},
	}

	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			ts := newTestServer(t, nil, false)
			defer ts.ctl.Finish()

			id := uuid.New()
			ts.lifecycle.EXPECT().Respond(lifecycle.LawyerActor(30), id, schema.REQUEST_ACCEPTED).Return(nil, c.err)

			w := ts.do(t, "PATCH", "/api/requests/"+id.String(), lifecycle.LawyerActor(30), map[string]string{
				"status": "ACCEPTED",
			})
			assert.Equal(t, c.status, w.Code)
			assert.Equal(t, c.code, decodeError(t, w).Code)
		})
	}
}

func TestRequestRespondUnknownStatus(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	id := uuid.New()
	for _, status := range []string{"MAYBE", "accepted", ""} {
		w := ts.do(t, "PATCH", "/api/requests/"+id.String(), lifecycle.LawyerActor(30), map[string]string{
			"status": status,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, status)
		assert.Equal(t, int64(1240), decodeError(t, w).Code, status)
	}
}

func TestRequestRoutes(t *testing.T) {
	ts := newTestServer(t, nil, false)
	defer ts.ctl.Finish()

	id := uuid.New()
	view := &lifecycle.RequestView{ID: id, Status: schema.REQUEST_CANCELLED}

	ts.lifecycle.EXPECT().Cancel(lifecycle.ClientActor(10), id).Return(view, nil)
	w := ts.do(t, "DELETE", "/api/requests/"+id.String(), lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.lifecycle.EXPECT().View(lifecycle.ClientActor(10), id).Return(view, nil)
	w = ts.do(t, "GET", "/api/requests/"+id.String(), lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.lifecycle.EXPECT().ListMine(lifecycle.ClientActor(10)).Return([]lifecycle.RequestView{*view}, nil)
	w = ts.do(t, "GET", "/api/requests", lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.lifecycle.EXPECT().ListPublicPending(lifecycle.ClientActor(10)).Return(nil, lifecycle.ErrRoleNotAllowed)
	w = ts.do(t, "GET", "/api/requests/public", lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, "GET", "/api/requests/not-a-uuid", lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestRateLimitedCommands(t *testing.T) {
	ts := newTestServer(t, ratelimit.NewTokenBucket(0.001, 1), false)
	defer ts.ctl.Finish()

	id := uuid.New()
	ts.lifecycle.EXPECT().Cancel(lifecycle.ClientActor(10), id).Return(&lifecycle.RequestView{ID: id}, nil)

	w := ts.do(t, "DELETE", "/api/requests/"+id.String(), lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = ts.do(t, "DELETE", "/api/requests/"+id.String(), lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, int64(1300), decodeError(t, w).Code)

	// reads are not limited
	ts.lifecycle.EXPECT().ListMine(lifecycle.ClientActor(10)).Return(nil, nil)
	w = ts.do(t, "GET", "/api/requests", lifecycle.ClientActor(10), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
