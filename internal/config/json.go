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
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		APIKey       string `json:"api_key"`
		Instance     string `json:"instance"`
		StartSession bool   `json:"start_session"`
		Timezone     string `json:"timezone"`
	} `json:"app,omitempty"`

	Adapter struct {
		Backend        string   `json:"backend"`
		HTTPAddress    string   `json:"http_address"`
		SyncAddress    string   `json:"sync_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ConnectTimeout Duration `json:"connect_timeout"`
		PingInterval   Duration `json:"ping_interval"`
	} `json:"adapter,omitempty"`

	Subscriptions struct {
		Projects    []string `json:"projects"`
		Collections []string `json:"collections"`
		Context     string   `json:"context"`
	} `json:"subscriptions,omitempty"`

	Workers struct {
		ObserverBuffer int `json:"observer_buffer"`
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
			APIKey:       jsonCfg.App.APIKey,
			Instance:     jsonCfg.App.Instance,
			StartSession: jsonCfg.App.StartSession,
			Timezone:     jsonCfg.App.Timezone,
		},
		Adapter: Adapter{
			Backend:        jsonCfg.Adapter.Backend,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			SyncAddress:    jsonCfg.Adapter.SyncAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConnectTimeout: time.Duration(jsonCfg.Adapter.ConnectTimeout),
			PingInterval:   time.Duration(jsonCfg.Adapter.PingInterval),
		},
		Subscriptions: Subscriptions{
			Projects:    jsonCfg.Subscriptions.Projects,
			Collections: jsonCfg.Subscriptions.Collections,
			Context:     jsonCfg.Subscriptions.Context,
		},
		Workers: Workers{
			ObserverBuffer: jsonCfg.Workers.ObserverBuffer,
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
