package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"fivecardshowdown/internal/config"
	"fivecardshowdown/internal/mux"
	"fivecardshowdown/internal/rng"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the config)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	options := mux.Options{
		StartingTokens: cfg.StartingTokens,
		SessionTTL:     cfg.SessionTTL,
		Logger:         logrus.StandardLogger(),
	}

	if cfg.Seed > 0 {
		logrus.WithField("seed", cfg.Seed).Warn("using a fixed seed, deals are reproducible")
		options.Generator = rng.NewSeeded(cfg.Seed)
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, options))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":           srv.Addr,
		"startingTokens": cfg.StartingTokens,
		"sessionTTL":     cfg.SessionTTL.String(),
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
