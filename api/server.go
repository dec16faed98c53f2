package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jusconnect/jusconnect-api/account"
	"github.com/jusconnect/jusconnect-api/lifecycle"
	"github.com/jusconnect/jusconnect-api/logmodule"
	"github.com/jusconnect/jusconnect-api/ratelimit"
	"github.com/jusconnect/jusconnect-api/schema"
	"github.com/jusconnect/jusconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// RequestLifecycle is the request engine exposed through the API
type RequestLifecycle interface {
	Create(actor lifecycle.Actor, in lifecycle.CreateInput) (*lifecycle.RequestView, error)
	Cancel(actor lifecycle.Actor, id uuid.UUID) (*lifecycle.RequestView, error)
	Respond(actor lifecycle.Actor, id uuid.UUID, decision schema.RequestStatus) (*lifecycle.RequestView, error)
	View(actor lifecycle.Actor, id uuid.UUID) (*lifecycle.RequestView, error)
	ListMine(actor lifecycle.Actor) ([]lifecycle.RequestView, error)
	ListDirectedToMe(actor lifecycle.Actor) ([]lifecycle.RequestView, error)
	ListPublicPending(actor lifecycle.Actor) ([]lifecycle.RequestView, error)
}

// AccountService manages the accounts of clients and lawyers
type AccountService interface {
	RegisterClient(r account.Registration) (*schema.Client, error)
	RegisterLawyer(r account.Registration) (*schema.Lawyer, error)
	Authenticate(nationalID, password string) (lifecycle.Actor, error)
	Client(id int64) (*schema.Client, error)
	Lawyer(id int64) (*schema.Lawyer, error)
	UpdateClient(id int64, patch account.ProfilePatch) (*schema.Client, error)
	UpdateLawyer(id int64, patch account.ProfilePatch) (*schema.Lawyer, error)
	CanDelete(actor lifecycle.Actor) error
	Delete(actor lifecycle.Actor) error
	Lawyers(f account.LawyerFilter) ([]schema.LawyerListing, error)
}

// TaskQueue hands long running jobs to the background workers
type TaskQueue interface {
	EnqueueAccountDeletion(actor lifecycle.Actor) error
}

type pinger interface {
	Ping() error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store pinger

	lifecycle RequestLifecycle
	accounts  AccountService

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// limiter of lifecycle commands, disabled when nil
	limiter ratelimit.Limiter

	// job pool enqueuer, account deletion runs inline when nil
	tasks TaskQueue
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	jwtKey *rsa.PrivateKey,
	limiter ratelimit.Limiter,
	tasks TaskQueue) *Server {
	core := store.NewJusconnectStore(ormDB)
	engine := lifecycle.NewEngine(core, core)

	return &Server{
		store:         core,
		lifecycle:     engine,
		accounts:      account.NewService(core, engine, account.NewBcryptHasher(viper.GetInt("account.bcrypt_cost"))),
		jwtPrivateKey: jwtKey,
		limiter:       limiter,
		tasks:         tasks,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.rateLimitByIP(), s.requestJWT)
	apiRoute.POST("/clients", s.clientRegister)
	apiRoute.POST("/lawyers", s.lawyerRegister)

	directoryRoute := apiRoute.Group("/lawyers")
	directoryRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		AllowOrigins:     viper.GetStringSlice("cors.origins"),
		AllowAllOrigins:  len(viper.GetStringSlice("cors.origins")) == 0,
		MaxAge:           12 * time.Hour,
	}))
	{
		directoryRoute.GET("", s.lawyerList)
		directoryRoute.GET("/:lawyerID", s.lawyerDetail)
	}

	// api route other than the public ones above will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.requestList)
		requestRoute.GET("/public", s.requestListPublic)
		requestRoute.GET("/:requestID", s.requestDetail)

		requestRoute.POST("", s.rateLimitByActor(), s.requestCreate)
		requestRoute.DELETE("/:requestID", s.rateLimitByActor(), s.requestCancel)
		requestRoute.PATCH("/:requestID", s.rateLimitByActor(), s.requestRespond)
	}

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	captureException(c, err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func captureException(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj = localize(c, obj)

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
