// Command devserver runs the in-memory complaint service on a local
// port so the client can be exercised without the real backend.
package main

import (
	"github.com/intelligrievance/grievance-client/internal/devserver"
	"github.com/intelligrievance/grievance-client/internal/pkg/config"
	"github.com/intelligrievance/grievance-client/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	e := devserver.New(cfg.Devserver.JWTSecret, log)

	log.Info().Str("port", cfg.Devserver.Port).Msg("devserver listening")
	if err := e.Start(":" + cfg.Devserver.Port); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
	}
}
