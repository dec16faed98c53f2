package lifecycle_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/mocks"
	"github.com/jusconnect/jusconnect-api/schema"
	"github.com/jusconnect/jusconnect-api/store"
)

const (
	clientID      = int64(10)
	lawyerID      = int64(20)
	otherLawyerID = int64(30)
	otherClientID = int64(11)
)

var (
	client = &schema.Client{
		ID:    clientID,
		Name:  "Maria Souza",
		Email: "maria@example.com",
		Phone: "+55 11 99999-0000",
	}
	lawyer      = &schema.Lawyer{ID: lawyerID, Name: "Dr. Silva"}
	otherLawyer = &schema.Lawyer{ID: otherLawyerID, Name: "Dra. Costa"}
)

type fixture struct {
	ctl       *gomock.Controller
	requests  *mocks.MockRequestStore
	directory *mocks.MockDirectory
	engine    *lifecycle.Engine
}

func newFixture(t *testing.T) *fixture {
	ctl := gomock.NewController(t)
	requests := mocks.NewMockRequestStore(ctl)
	directory := mocks.NewMockDirectory(ctl)

	directory.EXPECT().GetClient(clientID).Return(client, nil).AnyTimes()
	directory.EXPECT().GetLawyer(lawyerID).Return(lawyer, nil).AnyTimes()
	directory.EXPECT().GetLawyer(otherLawyerID).Return(otherLawyer, nil).AnyTimes()

	return &fixture{
		ctl:       ctl,
		requests:  requests,
		directory: directory,
		engine:    lifecycle.NewEngine(requests, directory),
	}
}

func boolPtr(b bool) *bool { return &b }

func int64Ptr(i int64) *int64 { return &i }

func directedRequest(status schema.RequestStatus) *schema.Request {
	r := &schema.Request{
		ID:          uuid.New(),
		Description: "ajuda trabalhista",
		Status:      status,
		IsPublic:    false,
		ClientID:    clientID,
		LawyerID:    int64Ptr(lawyerID),
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	if status.Terminal() {
		t := time.Now()
		r.RespondedAt = &t
	}
	return r
}

func publicRequest() *schema.Request {
	return &schema.Request{
		ID:          uuid.New(),
		Description: "revisão de contrato",
		Status:      schema.REQUEST_PENDING,
		IsPublic:    true,
		ClientID:    clientID,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestCreateDirectedRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	id := uuid.New()
	f.directory.EXPECT().ClientExists(clientID).Return(true, nil)
	f.directory.EXPECT().LawyerExists(lawyerID).Return(true, nil)
	f.requests.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *schema.Request) error {
		assert.Equal(t, schema.REQUEST_PENDING, r.Status)
		assert.Equal(t, clientID, r.ClientID)
		assert.Equal(t, int64Ptr(lawyerID), r.LawyerID)
		assert.False(t, r.IsPublic)
		assert.Nil(t, r.RespondedAt)
		assert.False(t, r.CreatedAt.IsZero())
		r.ID = id
		return nil
	})

	v, err := f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		LawyerID:    int64Ptr(lawyerID),
		Description: "ajuda trabalhista",
		IsPublic:    boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, id, v.ID)
	assert.Equal(t, "ajuda trabalhista", v.Description)
	assert.Equal(t, schema.REQUEST_PENDING, v.Status)
	assert.Equal(t, int64Ptr(lawyerID), v.LawyerID)
	assert.Equal(t, "Dr. Silva", *v.LawyerName)
	assert.Nil(t, v.RespondedAt)
	require.NotNil(t, v.ClientEmail, "owner must see own contact")
	assert.Equal(t, client.Email, *v.ClientEmail)
	assert.Equal(t, client.Phone, *v.ClientPhone)
}

func TestCreatePublicRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.directory.EXPECT().ClientExists(clientID).Return(true, nil)
	f.requests.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *schema.Request) error {
		assert.True(t, r.IsPublic)
		assert.Nil(t, r.LawyerID)
		r.ID = uuid.New()
		return nil
	})

	v, err := f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		Description: "revisão de contrato",
		IsPublic:    boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, v.IsPublic)
	assert.Nil(t, v.LawyerID)
	assert.Nil(t, v.LawyerName)
}

func TestCreateDuplicatePendingRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.directory.EXPECT().ClientExists(clientID).Return(true, nil)
	f.directory.EXPECT().LawyerExists(lawyerID).Return(true, nil)
	f.requests.EXPECT().CreateRequest(gomock.Any()).Return(store.ErrDuplicatePendingRequest)

	_, err := f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		LawyerID:    int64Ptr(lawyerID),
		Description: "ajuda trabalhista",
		IsPublic:    boolPtr(false),
	})
	assert.Equal(t, lifecycle.ErrDuplicatePendingRequest, err)
	assert.Equal(t, lifecycle.KindConflict, lifecycle.KindOf(err))
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		actor lifecycle.Actor
		input lifecycle.CreateInput
		err   error
	}{
		{
			name:  "lawyer cannot create",
			actor: lifecycle.LawyerActor(lawyerID),
			input: lifecycle.CreateInput{Description: "x", IsPublic: boolPtr(true)},
			err:   lifecycle.ErrRoleNotAllowed,
		},
		{
			name:  "blank description",
			actor: lifecycle.ClientActor(clientID),
			input: lifecycle.CreateInput{Description: "   ", IsPublic: boolPtr(true)},
			err:   lifecycle.ErrDescriptionRequired,
		},
		{
			name:  "missing visibility",
			actor: lifecycle.ClientActor(clientID),
			input: lifecycle.CreateInput{Description: "x", LawyerID: int64Ptr(lawyerID)},
			err:   lifecycle.ErrVisibilityRequired,
		},
		{
			name:  "directed without lawyer",
			actor: lifecycle.ClientActor(clientID),
			input: lifecycle.CreateInput{Description: "x", IsPublic: boolPtr(false)},
			err:   lifecycle.ErrLawyerRequired,
		},
		{
			name:  "public naming a lawyer",
			actor: lifecycle.ClientActor(clientID),
			input: lifecycle.CreateInput{Description: "x", IsPublic: boolPtr(true), LawyerID: int64Ptr(lawyerID)},
			err:   lifecycle.ErrPublicRequestOfLawyer,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			defer f.ctl.Finish()

			_, err := f.engine.Create(c.actor, c.input)
			assert.Equal(t, c.err, err)
		})
	}
}

func TestCreateUnknownReferences(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.directory.EXPECT().ClientExists(clientID).Return(false, nil)
	_, err := f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		Description: "x",
		IsPublic:    boolPtr(true),
	})
	assert.Equal(t, lifecycle.ErrClientNotFound, err)

	f.directory.EXPECT().ClientExists(clientID).Return(true, nil)
	f.directory.EXPECT().LawyerExists(int64(99)).Return(false, nil)
	_, err = f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		Description: "x",
		IsPublic:    boolPtr(false),
		LawyerID:    int64Ptr(99),
	})
	assert.Equal(t, lifecycle.ErrLawyerNotFound, err)
	assert.Equal(t, lifecycle.KindNotFound, lifecycle.KindOf(err))
}

func TestCreateStorageFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.directory.EXPECT().ClientExists(clientID).Return(true, nil)
	f.requests.EXPECT().CreateRequest(gomock.Any()).Return(fmt.Errorf("connection reset"))

	_, err := f.engine.Create(lifecycle.ClientActor(clientID), lifecycle.CreateInput{
		Description: "x",
		IsPublic:    boolPtr(true),
	})
	assert.Error(t, err)
	assert.Equal(t, lifecycle.KindInternal, lifecycle.KindOf(err))
}

func TestRespondAcceptRevealsContact(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)
	f.requests.EXPECT().RespondRequest(r.ID, lawyerID, schema.REQUEST_ACCEPTED, gomock.Any()).Return(nil)

	v, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_ACCEPTED)
	require.NoError(t, err)

	assert.Equal(t, schema.REQUEST_ACCEPTED, v.Status)
	assert.NotNil(t, v.RespondedAt)
	require.NotNil(t, v.ClientEmail)
	assert.Equal(t, client.Email, *v.ClientEmail)
	assert.Equal(t, client.Phone, *v.ClientPhone)

	accepted := directedRequest(schema.REQUEST_ACCEPTED)
	accepted.ID = r.ID
	f.requests.EXPECT().GetRequest(r.ID).Return(accepted, nil).Times(2)

	v, err = f.engine.View(lifecycle.LawyerActor(lawyerID), r.ID)
	require.NoError(t, err)
	require.NotNil(t, v.ClientEmail)
	require.NotNil(t, v.ClientPhone)

	_, err = f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_DECLINED)
	assert.Equal(t, lifecycle.ErrAlreadyResponded, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}

func TestRespondDeclineHidesContact(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)
	f.requests.EXPECT().RespondRequest(r.ID, lawyerID, schema.REQUEST_DECLINED, gomock.Any()).Return(nil)

	v, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_DECLINED)
	require.NoError(t, err)
	assert.Equal(t, schema.REQUEST_DECLINED, v.Status)
	assert.Nil(t, v.ClientEmail)
	assert.Nil(t, v.ClientPhone)
}

func TestRespondNotDirectedToCaller(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)

	_, err := f.engine.Respond(lifecycle.LawyerActor(otherLawyerID), r.ID, schema.REQUEST_ACCEPTED)
	assert.Equal(t, lifecycle.ErrNotDirectedToYou, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))
}

func TestRespondInvalidDecision(t *testing.T) {
	for _, decision := range []schema.RequestStatus{schema.REQUEST_CANCELLED, schema.REQUEST_PENDING, "MAYBE"} {
		f := newFixture(t)

		r := directedRequest(schema.REQUEST_PENDING)
		f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)

		_, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, decision)
		assert.Equal(t, lifecycle.ErrInvalidDecision, err, "decision %s", decision)
		assert.Equal(t, lifecycle.KindInvalidArgument, lifecycle.KindOf(err))

		f.ctl.Finish()
	}
}

func TestRespondByClientIsForbidden(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	_, err := f.engine.Respond(lifecycle.ClientActor(clientID), uuid.New(), schema.REQUEST_ACCEPTED)
	assert.Equal(t, lifecycle.ErrRoleNotAllowed, err)
}

func TestRespondUnknownRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	id := uuid.New()
	f.requests.EXPECT().GetRequest(id).Return(nil, store.ErrRequestNotFound)

	_, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), id, schema.REQUEST_ACCEPTED)
	assert.Equal(t, lifecycle.ErrRequestNotFound, err)
}

func TestRespondClaimsPublicRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := publicRequest()
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)
	f.directory.EXPECT().LawyerExists(lawyerID).Return(true, nil)
	f.requests.EXPECT().RespondRequest(r.ID, lawyerID, schema.REQUEST_ACCEPTED, gomock.Any()).Return(nil)

	v, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_ACCEPTED)
	require.NoError(t, err)
	assert.Equal(t, int64Ptr(lawyerID), v.LawyerID)
	assert.Equal(t, "Dr. Silva", *v.LawyerName)
	assert.NotNil(t, v.ClientEmail)

	claimed := *r
	claimed.Status = schema.REQUEST_ACCEPTED
	claimed.LawyerID = int64Ptr(lawyerID)
	now := time.Now()
	claimed.RespondedAt = &now
	f.requests.EXPECT().GetRequest(r.ID).Return(&claimed, nil).Times(2)

	_, err = f.engine.Respond(lifecycle.LawyerActor(otherLawyerID), r.ID, schema.REQUEST_ACCEPTED)
	assert.Equal(t, lifecycle.ErrAlreadyResponded, err)

	// an accepted request discloses the contact to any lawyer allowed to view it
	v, err = f.engine.View(lifecycle.LawyerActor(otherLawyerID), r.ID)
	require.NoError(t, err)
	require.NotNil(t, v.ClientEmail)
	require.NotNil(t, v.ClientPhone)
	assert.Equal(t, "maria@example.com", *v.ClientEmail)
	assert.Equal(t, int64Ptr(lawyerID), v.LawyerID)
}

func TestRespondLosesRaceOnPublicRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := publicRequest()
	claimed := *r
	claimed.Status = schema.REQUEST_ACCEPTED
	claimed.LawyerID = int64Ptr(otherLawyerID)

	gomock.InOrder(
		f.requests.EXPECT().GetRequest(r.ID).Return(r, nil),
		f.requests.EXPECT().RespondRequest(r.ID, lawyerID, schema.REQUEST_ACCEPTED, gomock.Any()).Return(store.ErrRequestNotPending),
		f.requests.EXPECT().GetRequest(r.ID).Return(&claimed, nil),
	)
	f.directory.EXPECT().LawyerExists(lawyerID).Return(true, nil)

	_, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_ACCEPTED)
	assert.Equal(t, lifecycle.ErrAlreadyResponded, err)
}

func TestRespondLosesRaceToCancel(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	cancelled := directedRequest(schema.REQUEST_CANCELLED)
	cancelled.ID = r.ID

	gomock.InOrder(
		f.requests.EXPECT().GetRequest(r.ID).Return(r, nil),
		f.requests.EXPECT().RespondRequest(r.ID, lawyerID, schema.REQUEST_DECLINED, gomock.Any()).Return(store.ErrRequestNotPending),
		f.requests.EXPECT().GetRequest(r.ID).Return(cancelled, nil),
	)

	_, err := f.engine.Respond(lifecycle.LawyerActor(lawyerID), r.ID, schema.REQUEST_DECLINED)
	assert.Equal(t, lifecycle.ErrAlreadyResponded, err)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)
	f.requests.EXPECT().CancelRequest(r.ID, clientID, gomock.Any()).Return(nil)

	v, err := f.engine.Cancel(lifecycle.ClientActor(clientID), r.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.REQUEST_CANCELLED, v.Status)
	assert.NotNil(t, v.RespondedAt)

	cancelled := directedRequest(schema.REQUEST_CANCELLED)
	cancelled.ID = r.ID
	f.requests.EXPECT().GetRequest(r.ID).Return(cancelled, nil)

	_, err = f.engine.Cancel(lifecycle.ClientActor(clientID), r.ID)
	assert.Equal(t, lifecycle.ErrOnlyPendingCancellable, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}

func TestCancelAcceptedRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_ACCEPTED)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)

	_, err := f.engine.Cancel(lifecycle.ClientActor(clientID), r.ID)
	assert.Equal(t, lifecycle.ErrOnlyPendingCancellable, err)
}

func TestCancelOthersRequest(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	f.requests.EXPECT().GetRequest(r.ID).Return(r, nil)

	_, err := f.engine.Cancel(lifecycle.ClientActor(otherClientID), r.ID)
	assert.Equal(t, lifecycle.ErrNotRequestOwner, err)

	_, err = f.engine.Cancel(lifecycle.LawyerActor(lawyerID), r.ID)
	assert.Equal(t, lifecycle.ErrRoleNotAllowed, err)
}

func TestCancelLosesRaceToResponse(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	r := directedRequest(schema.REQUEST_PENDING)
	accepted := directedRequest(schema.REQUEST_ACCEPTED)
	accepted.ID = r.ID

	gomock.InOrder(
		f.requests.EXPECT().GetRequest(r.ID).Return(r, nil),
		f.requests.EXPECT().CancelRequest(r.ID, clientID, gomock.Any()).Return(store.ErrRequestNotPending),
		f.requests.EXPECT().GetRequest(r.ID).Return(accepted, nil),
	)

	_, err := f.engine.Cancel(lifecycle.ClientActor(clientID), r.ID)
	assert.Equal(t, lifecycle.ErrOnlyPendingCancellable, err)
}

func TestViewAuthorization(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	directed := directedRequest(schema.REQUEST_PENDING)
	public := publicRequest()
	f.requests.EXPECT().GetRequest(directed.ID).Return(directed, nil).AnyTimes()
	f.requests.EXPECT().GetRequest(public.ID).Return(public, nil).AnyTimes()

	v, err := f.engine.View(lifecycle.ClientActor(clientID), directed.ID)
	require.NoError(t, err)
	assert.NotNil(t, v.ClientEmail, "owner sees own contact")

	_, err = f.engine.View(lifecycle.ClientActor(otherClientID), directed.ID)
	assert.Equal(t, lifecycle.ErrNotRequestOwner, err)

	v, err = f.engine.View(lifecycle.LawyerActor(lawyerID), directed.ID)
	require.NoError(t, err)
	assert.Nil(t, v.ClientEmail, "pending request hides contact from its lawyer")
	assert.Nil(t, v.ClientPhone)

	_, err = f.engine.View(lifecycle.LawyerActor(otherLawyerID), directed.ID)
	assert.Equal(t, lifecycle.ErrNotDirectedToYou, err)

	v, err = f.engine.View(lifecycle.LawyerActor(otherLawyerID), public.ID)
	require.NoError(t, err)
	assert.Nil(t, v.ClientEmail)
}

func TestListDirectedToMe(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	pending := directedRequest(schema.REQUEST_PENDING)
	accepted := directedRequest(schema.REQUEST_ACCEPTED)
	declined := directedRequest(schema.REQUEST_DECLINED)
	f.requests.EXPECT().ListRequestsByLawyer(lawyerID).
		Return([]schema.Request{*pending, *accepted, *declined}, nil)

	views, err := f.engine.ListDirectedToMe(lifecycle.LawyerActor(lawyerID))
	require.NoError(t, err)
	require.Len(t, views, 3)

	for _, v := range views {
		if v.Status == schema.REQUEST_ACCEPTED {
			assert.NotNil(t, v.ClientEmail)
			assert.NotNil(t, v.ClientPhone)
		} else {
			assert.Nil(t, v.ClientEmail, "status %s", v.Status)
			assert.Nil(t, v.ClientPhone, "status %s", v.Status)
		}
	}

	_, err = f.engine.ListDirectedToMe(lifecycle.ClientActor(clientID))
	assert.Equal(t, lifecycle.ErrRoleNotAllowed, err)
}

func TestListMine(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.requests.EXPECT().ListRequestsByClient(clientID).Return([]schema.Request{
		*directedRequest(schema.REQUEST_PENDING),
		*directedRequest(schema.REQUEST_CANCELLED),
		*publicRequest(),
	}, nil)

	views, err := f.engine.ListMine(lifecycle.ClientActor(clientID))
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.NotNil(t, v.ClientEmail)
		assert.Equal(t, "Maria Souza", v.ClientName)
	}
}

func TestListPublicPending(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.requests.EXPECT().ListPublicPendingRequests().Return([]schema.Request{*publicRequest(), *publicRequest()}, nil)

	views, err := f.engine.ListPublicPending(lifecycle.LawyerActor(otherLawyerID))
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Nil(t, v.ClientEmail)
		assert.Nil(t, v.ClientPhone)
		assert.Nil(t, v.LawyerID)
	}

	_, err = f.engine.ListPublicPending(lifecycle.ClientActor(clientID))
	assert.Equal(t, lifecycle.ErrRoleNotAllowed, err)
}

func TestAccountDeletionHooks(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.requests.EXPECT().ClientHasAcceptedRequest(clientID).Return(true, nil)
	accepted, err := f.engine.HasAcceptedRequest(lifecycle.ClientActor(clientID))
	require.NoError(t, err)
	assert.True(t, accepted)

	f.requests.EXPECT().LawyerHasAcceptedRequest(lawyerID).Return(false, nil)
	accepted, err = f.engine.HasAcceptedRequest(lifecycle.LawyerActor(lawyerID))
	require.NoError(t, err)
	assert.False(t, accepted)

	f.requests.EXPECT().DeleteRequestsByClient(clientID).Return(store.ErrAcceptedRequestExists)
	err = f.engine.DeleteAllRequests(lifecycle.ClientActor(clientID))
	assert.Equal(t, lifecycle.ErrAcceptedRequestExists, err)

	f.requests.EXPECT().DeleteRequestsByLawyer(lawyerID).Return(nil)
	assert.NoError(t, f.engine.DeleteAllRequests(lifecycle.LawyerActor(lawyerID)))
}
