package main

import (
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := setupLogging()
	logger.Info("budgeteer starting")

	cfg, err := LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if cfg.DatabaseDSN == "" {
		logger.Fatal("DB_DSN is not set; a Postgres DSN is required")
	}

	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		logger.WithError(err).Fatal("open database")
	}

	// `budgeteer migrate` applies the schema and exits. Useful for CI and
	// manual database setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		logger.Info("migrations applied")
		return
	}

	store := newGormStore(db)
	auth := NewAuth(store, cfg)
	server := NewServer(auth, store, logger)

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	server.setupRoutes(r)

	logger.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
