package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenDuration: DefaultTokenDuration},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/db"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "grpc only", mutate: func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = "localhost:9090"
		}},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Hour }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrUnsupportedDBDriver},
		{name: "no servers", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
				Session: ClientSession{File: "/tmp/session.json"},
			},
		},
		{
			name: "address without scheme",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
				Session: ClientSession{File: "/tmp/session.json"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero timeout",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "https://api"},
				Session: ClientSession{File: "/tmp/session.json"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "missing session file",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "https://api", RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidSessionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
