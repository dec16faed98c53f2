package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/jusconnect/jusconnect-api/api"
	"github.com/jusconnect/jusconnect-api/background"
	"github.com/jusconnect/jusconnect-api/ratelimit"
	"github.com/jusconnect/jusconnect-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	redisClient *redis.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("jusconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("ratelimit.window", time.Minute)
	viper.SetDefault("ratelimit.limit", 30)
	viper.SetDefault("ratelimit.rps", 0.5)
	viper.SetDefault("ratelimit.burst", 30)
	viper.SetDefault("i18n.dir", "./i18n")
}

// newLimiter builds the limiter of lifecycle commands. Redis is shared by
// every instance and the token bucket serves when redis is absent or failing.
func newLimiter() ratelimit.Limiter {
	local := ratelimit.NewTokenBucket(viper.GetFloat64("ratelimit.rps"), viper.GetInt("ratelimit.burst"))

	conn := viper.GetString("redis.conn")
	if conn == "" {
		return local
	}

	opts, err := redis.ParseURL(conn)
	if err != nil {
		log.WithError(err).Warn("invalid redis url, use in-memory limiter")
		return local
	}
	redisClient = redis.NewClient(opts)

	return ratelimit.NewRedis(redisClient, viper.GetDuration("ratelimit.window"), viper.GetInt("ratelimit.limit"), local)
}

// newTaskQueue returns nil when no broker is configured so that account
// deletions run inline
func newTaskQueue() api.TaskQueue {
	conn := viper.GetString("redis.conn")
	if conn == "" {
		return nil
	}

	var conf = &machineryconf.Config{
		Broker:        conn,
		DefaultQueue:  "jusconnect_background",
		ResultBackend: conn,
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	return background.NewEnqueuer(machineryServer)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if redisClient != nil {
			log.Info("Shutting down redis client")
			if err := redisClient.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Localized error messages
	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("Error messages will not be localized")
	} else {
		log.WithField("prefix", "init").Info("Loaded i18n bundle")
	}

	// Load JWT private key
	jwtSecretByte, err := ioutil.ReadFile(viper.GetString("jwt.keyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPrivateKey, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(jwtSecretByte, viper.GetString("jwt.password"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded global jwt key")

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// Init http server
	server = api.NewServer(
		ormDB,
		jwtPrivateKey,
		newLimiter(),
		newTaskQueue())
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
