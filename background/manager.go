package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// AccountRemover deletes an account with all of its requests
type AccountRemover interface {
	Delete(actor lifecycle.Actor) error
}

// BackgroundManager is a struct for jusconnect background manager
type BackgroundManager struct {
	accounts AccountRemover

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	core := store.NewJusconnectStore(ormDB)
	engine := lifecycle.NewEngine(core, core)

	return &BackgroundManager{
		accounts:   account.NewService(core, engine, account.NewBcryptHasher(viper.GetInt("account.bcrypt_cost"))),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task the workers execute
func (m *BackgroundManager) RegisterTasks() error {
	return m.RegisterTask(TaskDeleteAccount, m.DeleteAccount)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("jusconnect-worker", 5)
	return m.worker.Launch()
}
