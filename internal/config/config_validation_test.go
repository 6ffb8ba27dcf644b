package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() StructuredConfig {
	return StructuredConfig{
		App: App{
			TokenSignKey:     "secret",
			TokenIssuer:      "go-identity",
			TokenDuration:    time.Hour,
			PasswordHashCost: 10,
			Version:          "dev",
			LogLevel:         "info",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: time.Second,
		},
		Storage: Storage{DB: DB{Driver: DriverMemory}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid memory config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid postgres config",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB = DB{Driver: DriverPostgres, DSN: "postgres://localhost/identity"}
			},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non-positive token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB = DB{Driver: DriverSQLite} },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB = DB{Driver: "mongo", DSN: "x"} },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
