// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		HashKey       string `json:"hash_key"`
		KDFIterations int    `json:"kdf_iterations"`
		LogFile       string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir string `json:"data_dir"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Secrets struct {
			Backend      string `json:"backend"`
			ServiceName  string `json:"service_name"`
			FilePassword string `json:"file_password"`
		} `json:"secrets,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval        Duration `json:"sync_interval"`
		ProbeInterval       Duration `json:"probe_interval"`
		DownloadConcurrency int      `json:"download_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:       jsonCfg.App.HashKey,
			KDFIterations: jsonCfg.App.KDFIterations,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Secrets: Secrets{
				Backend:      jsonCfg.Storage.Secrets.Backend,
				ServiceName:  jsonCfg.Storage.Secrets.ServiceName,
				FilePassword: jsonCfg.Storage.Secrets.FilePassword,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:        time.Duration(jsonCfg.Workers.SyncInterval),
			ProbeInterval:       time.Duration(jsonCfg.Workers.ProbeInterval),
			DownloadConcurrency: jsonCfg.Workers.DownloadConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
