// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/service"
	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/internal/utils"
	"github.com/MKhiriev/go-pad/internal/workers"
)

// App is one running client: stores, remote client, services and the
// background workers.
type App struct {
	cfg       *config.ClientConfig
	logger    *logger.Logger
	logCloser io.Closer

	storages *store.ClientStorages
	remote   adapter.RemoteClient
	services *service.ClientServices
	workers  *workers.Workers
}

// NewApp builds the application from cfg. The bearer token saved by a
// previous login is restored from the secret store.
func NewApp(ctx context.Context, cfg *config.ClientConfig) (*App, error) {
	log, logCloser := logger.NewClientLogger("pad-client", cfg.App.LogFile)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Cache.Close()
		logCloser.Close()
		return nil, fmt.Errorf("create remote client: %w", err)
	}

	token, err := storages.Secrets.Load(store.SecretAuthToken)
	switch {
	case err == nil:
		remote.SetToken(string(token))
		if remote.TokenExpired() {
			log.Warn().Msg("saved auth token has expired, run `pad login` again")
		}
	case errors.Is(err, store.ErrSecretNotFound):
		log.Debug().Msg("no saved auth token")
	default:
		log.Warn().Err(err).Msg("load auth token")
	}

	services := service.NewClientServices(storages, remote, cfg, log)

	return &App{
		cfg:       cfg,
		logger:    log,
		logCloser: logCloser,
		storages:  storages,
		remote:    remote,
		services:  services,
		workers:   workers.New(services.Connectivity, services.SyncJob),
	}, nil
}

// Probe checks reachability once so commands act on a fresh answer.
func (a *App) Probe(ctx context.Context) bool {
	return a.services.Connectivity.Probe(ctx)
}

// StartWorkers launches the connectivity monitor and the sync job.
func (a *App) StartWorkers(ctx context.Context) {
	a.workers.Run(ctx)
}

// Login saves token for later runs and uses it right away. A full
// "Bearer <token>" header value is accepted too.
func (a *App) Login(token string) error {
	token = strings.TrimSpace(token)
	if strings.ContainsAny(token, " \t") {
		t, err := utils.ParseBearerToken(token)
		if err != nil {
			return err
		}
		token = t
	}
	if token == "" {
		return errors.New("empty token")
	}
	if err := a.storages.Secrets.Save(store.SecretAuthToken, []byte(token)); err != nil {
		return fmt.Errorf("save auth token: %w", err)
	}
	a.remote.SetToken(token)
	return nil
}

func (a *App) Session() service.Session {
	return a.services.Session
}

func (a *App) Sync() service.SyncOrchestrator {
	return a.services.Sync
}

func (a *App) Reachable() bool {
	return a.services.Connectivity.Reachable()
}

func (a *App) PendingChanges(ctx context.Context) (int, error) {
	return a.storages.Cache.CountMutations(ctx)
}

// Close stops the workers, waits for background syncs and releases the
// stores.
func (a *App) Close() error {
	a.workers.Stop()
	a.services.Session.Close()
	err := a.storages.Cache.Close()
	a.logCloser.Close()
	return err
}
