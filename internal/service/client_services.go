package service

import (
	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/crypto"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/store"
)

type ClientServices struct {
	Cipher       crypto.CipherEngine
	Connectivity ConnectivityMonitor
	Sync         SyncOrchestrator
	SyncJob      SyncJob
	Session      Session
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteClient, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewCipherEngine()
	if cfg.App.KDFIterations > 0 {
		cipher = crypto.NewCipherEngineWithIterations(cfg.App.KDFIterations)
	}

	monitor := NewConnectivityMonitor(remote, cfg.Workers.ProbeInterval, logger)
	orchestrator := NewSyncOrchestrator(storages.Cache, storages.Secrets, remote, monitor, cfg.Workers.DownloadConcurrency, logger)

	return &ClientServices{
		Cipher:       cipher,
		Connectivity: monitor,
		Sync:         orchestrator,
		SyncJob:      NewClientSyncJob(orchestrator, monitor, cfg.Workers.SyncInterval, logger),
		Session:      NewSession(storages.Cache, storages.Secrets, remote, cipher, orchestrator, monitor, logger),
	}
}
