package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/cardioguard/cardioguard-api/api"
	"github.com/cardioguard/cardioguard-api/dashboard"
	"github.com/cardioguard/cardioguard-api/external/predictor"
)

var (
	server    *api.Server
	refresher *dashboard.Refresher
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
	viper.SetEnvPrefix("cardioguard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if refresher != nil {
			log.Info("Stopping dashboard refresher")
			refresher.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

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

	predictorClient := predictor.New(httpClient, viper.GetString("predictor.endpoint"))
	log.WithField("prefix", "init").Info("Prediction service: ", viper.GetString("predictor.endpoint"))

	// Init http server
	server = api.NewServer(predictorClient)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Warm the dashboard snapshot on a schedule
	if spec := viper.GetString("dashboard.refresh"); spec != "" {
		var err error
		refresher, err = dashboard.NewRefresher(server.Coordinator(), server.Holder(), spec)
		if err != nil {
			log.Panic(err)
		}
		refresher.Start()
		log.WithField("prefix", "init").Info("Dashboard refresher running: ", spec)
	}

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
