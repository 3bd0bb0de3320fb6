package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/sigtab/internal/domain"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Sources = []SourceConfig{{Name: "linux", Symbols: []string{"SIGHUP"}}}
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, Validate(validConfig()))
	})

	t.Run("register call must be an identifier", func(t *testing.T) {
		cfg := validConfig()
		cfg.RegisterCall = "lua push"
		err := Validate(cfg)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "register_call")
	})

	t.Run("handle must be an identifier", func(t *testing.T) {
		cfg := validConfig()
		cfg.Handle = "1L"
		err := Validate(cfg)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "handle")
	})

	t.Run("indent must be whitespace", func(t *testing.T) {
		cfg := validConfig()
		indent := "  x"
		cfg.Indent = &indent
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "indent")
	})

	t.Run("empty sources fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources = nil
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one source")
	})

	t.Run("source without name or symbols", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources = []SourceConfig{{}}
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sources[0].name")
		assert.Contains(t, err.Error(), "sources[0].symbols")
	})

	t.Run("duplicate source names", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources = append(cfg.Sources, SourceConfig{Name: "linux", Symbols: []string{"SIGINT"}})
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate source name")
	})

	t.Run("errors are joined", func(t *testing.T) {
		cfg := validConfig()
		cfg.RegisterCall = "-"
		cfg.Handle = "-"
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "; ")
	})
}

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		sym   string
		valid bool
	}{
		{"SIGHUP", true},
		{"SIGRTMIN", true},
		{"_SIGX", true},
		{"SIGUSR1", true},
		{"", false},
		{"SIG", false},
		{"1SIG", false},
		{"SIG HUP", false},
		{"SIGHUP;", false},
	}
	for _, tt := range tests {
		t.Run(tt.sym, func(t *testing.T) {
			err := ValidateSymbol(tt.sym)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateSymbol_WrapsSentinel(t *testing.T) {
	for _, sym := range []string{"SIG-X", "SIG"} {
		err := ValidateSymbol(sym)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSymbol, sym)
		assert.Contains(t, err.Error(), sym)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "handle", Message: "bad"}
	assert.Equal(t, "handle: bad", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
