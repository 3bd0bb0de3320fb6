package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charliek/sigtab/internal/constants"
	"github.com/charliek/sigtab/internal/domain"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
	// Err is the sentinel the error wraps, if any
	Err error
}

func (e ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if !identPattern.MatchString(config.RegisterCall) {
		errs = append(errs, fmt.Sprintf("register_call: %q is not a C identifier", config.RegisterCall))
	}
	if !identPattern.MatchString(config.Handle) {
		errs = append(errs, fmt.Sprintf("handle: %q is not a C identifier", config.Handle))
	}
	if config.Indent != nil && strings.Trim(*config.Indent, " \t") != "" {
		errs = append(errs, "indent: only spaces and tabs are allowed")
	}

	if len(config.Sources) == 0 {
		errs = append(errs, "sources: at least one source must be defined")
	}

	seen := make(map[string]bool)
	for i, src := range config.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if src.Name == "" {
			errs = append(errs, field+".name: name is required")
		} else {
			field = fmt.Sprintf("sources.%s", src.Name)
			if seen[src.Name] {
				errs = append(errs, field+": duplicate source name")
			}
			seen[src.Name] = true
		}

		if len(src.Symbols) == 0 {
			errs = append(errs, field+".symbols: at least one symbol is required")
		}
		for _, sym := range src.Symbols {
			if err := ValidateSymbol(sym); err != nil {
				errs = append(errs, fmt.Sprintf("%s.symbols: %v", field, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// ValidateSymbol checks that sym can be used as a C macro name and still
// has a name left after the prefix is stripped.
func ValidateSymbol(sym string) error {
	if !identPattern.MatchString(sym) {
		return &ValidationError{Field: sym, Message: "not a C identifier", Err: domain.ErrInvalidSymbol}
	}
	if sym == constants.SymbolPrefix {
		return &ValidationError{Field: sym, Message: "empty short name", Err: domain.ErrInvalidSymbol}
	}
	return nil
}
