package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	rosterServices "github.com/c14220110/caregiver-backend/internal/roster/services"
	"github.com/c14220110/caregiver-backend/internal/routes"
	"github.com/c14220110/caregiver-backend/internal/scheduler"
	"github.com/c14220110/caregiver-backend/pkg/utils"
	"github.com/c14220110/caregiver-backend/ws"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Menjalankan HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	cfg, log, store, closer, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	issuer, err := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}
	rosterFile, err := rosterServices.LoadRosterFile(cfg.RosterFile)
	if err != nil {
		return err
	}

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	if cfg.ShiftTickerEnabled {
		ticker, err := scheduler.NewShiftTicker(hub, log)
		if err != nil {
			return err
		}
		ticker.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			ticker.Stop(stopCtx)
		}()
	}

	e := echo.New()
	e.HideBanner = true
	routes.Init(e, routes.Deps{
		Config: cfg,
		Store:  store,
		Issuer: issuer,
		Hub:    hub,
		Roster: rosterServices.NewRosterService(store, rosterFile),
		Logger: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server berjalan", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.AppEnv)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("mematikan server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
