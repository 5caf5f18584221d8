package config_test

import (
	"dockhub/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	var cfg config.Config

	cfg.Server.Env = "production"
	cfg.JWT.AccessSecret = "access"
	cfg.JWT.RefreshSecret = "refresh"
	cfg.Dock.First = 1
	cfg.Dock.Last = 40

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "inverted dock range", mutate: func(cfg *config.Config) { cfg.Dock.First, cfg.Dock.Last = 10, 2 }, wantErr: "DOCK_FIRST/DOCK_LAST"},
		{name: "dock zero", mutate: func(cfg *config.Config) { cfg.Dock.First = 0 }, wantErr: "DOCK_FIRST/DOCK_LAST"},
		{name: "missing secrets in production", mutate: func(cfg *config.Config) { cfg.JWT.AccessSecret = "" }, wantErr: "JWT_ACCESS_SECRET"},
		{
			name: "secrets optional in development",
			mutate: func(cfg *config.Config) {
				cfg.Server.Env = "development"
				cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret = "", ""
			},
		},
		{name: "negative grace period", mutate: func(cfg *config.Config) { cfg.Server.Shutdown.GracePeriodSeconds = -1 }, wantErr: "SERVER_SHUTDOWN"},
		{
			name: "enabled limiter without budget",
			mutate: func(cfg *config.Config) {
				cfg.App.RateLimiter.Enable = true
			},
			wantErr: "APP_RATE_LIMITER_MAX_REQUESTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
