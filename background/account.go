package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/lifecycle"
)

const TaskDeleteAccount = "delete_account"

// DeleteAccount is a background job to remove an account and its requests.
// A deletion refused because of an accepted request, or an account which is
// already gone, is final and not retried.
func (m *BackgroundManager) DeleteAccount(role string, id int64) error {
	logger := log.WithField("task", TaskDeleteAccount).WithField("role", role).WithField("id", id)

	actor, err := lifecycle.NewActor(role, id)
	if err != nil {
		logger.WithError(err).Error("invalid task arguments")
		sentry.CaptureException(err)
		return nil
	}

	switch err := m.accounts.Delete(actor); err {
	case nil:
		logger.Info("account deleted")
		return nil
	case account.ErrAccountNotFound:
		logger.Warn("account already deleted")
		return nil
	case account.ErrAcceptedRequestExists:
		logger.Warn("account deletion refused by an accepted request")
		sentry.CaptureMessage("account deletion refused by an accepted request")
		return nil
	default:
		logger.WithError(err).Error("fail to delete account")
		sentry.CaptureException(err)
		return err
	}
}

// deleteAccountSignature builds the task signature of an account deletion
func deleteAccountSignature(actor lifecycle.Actor) *tasks.Signature {
	return &tasks.Signature{
		Name: TaskDeleteAccount,
		Args: []tasks.Arg{
			{Type: "string", Value: string(actor.Role())},
			{Type: "int64", Value: actor.ActorID()},
		},
		RetryCount: 3,
	}
}

// Enqueuer sends tasks to the background workers
type Enqueuer struct {
	taskServer *machinery.Server
}

func NewEnqueuer(taskServer *machinery.Server) *Enqueuer {
	return &Enqueuer{taskServer: taskServer}
}

// EnqueueAccountDeletion schedules the deletion of the account of actor
func (e *Enqueuer) EnqueueAccountDeletion(actor lifecycle.Actor) error {
	_, err := e.taskServer.SendTask(deleteAccountSignature(actor))
	if err != nil {
		return err
	}

	log.WithField("role", actor.Role()).WithField("id", actor.ActorID()).Info("account deletion enqueued")
	return nil
}
