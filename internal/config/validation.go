package config

import (
	"fmt"
	"strings"

	"github.com/zephyrtronium/rpncalc"
	"github.com/zephyrtronium/rpncalc/internal/logger"
)

// ValidationError is a problem with one configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "configuration validation failed:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the configuration. The result is nil or ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}
	if c.Decimals < -1 || c.Decimals > 17 {
		add("decimals", fmt.Sprintf("must be between -1 and 17, not %d", c.Decimals))
	}
	for _, r := range c.RightAssoc {
		if r > 0x7f || !rpncalc.Op(r).Valid() {
			add("right_assoc", fmt.Sprintf("%q is not an operator", r))
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		add("log.level", err.Error())
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		add("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	switch c.Log.Output {
	case "stderr", "file", "both":
	default:
		add("log.output", fmt.Sprintf("unknown output %q", c.Log.Output))
	}
	if (c.Log.Output == "file" || c.Log.Output == "both") && c.Log.FilePath == "" {
		add("log.file_path", "required when logging to a file")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Options converts the configuration to calculator options. The
// configuration must be valid.
func (c *Config) Options() []rpncalc.Option {
	opts := []rpncalc.Option{rpncalc.Decimals(c.Decimals)}
	if c.RightAssoc != "" {
		ops := make([]rpncalc.Op, 0, len(c.RightAssoc))
		for i := 0; i < len(c.RightAssoc); i++ {
			ops = append(ops, rpncalc.Op(c.RightAssoc[i]))
		}
		opts = append(opts, rpncalc.RightAssoc(ops...))
	}
	return opts
}
