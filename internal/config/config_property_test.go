package config

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConfigRoundTripProperty checks that ParseConfig(Serialize(cfg)) == cfg.
func TestConfigRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("config round-trip preserves data", prop.ForAll(
		func(prompt string, decimals int, assoc string, level string) bool {
			cfg := DefaultConfig()
			cfg.Prompt = prompt
			cfg.Decimals = decimals
			cfg.RightAssoc = assoc
			cfg.Log.Level = level

			data, err := cfg.Serialize()
			if err != nil {
				return false
			}
			parsed, err := ParseConfig(data)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(cfg, parsed)
		},
		gen.AlphaString(),
		gen.IntRange(-1, 17),
		gen.OneConstOf("", "^", "+-", "*/^"),
		gen.OneConstOf("debug", "info", "warn", "error"),
	))

	properties.TestingRun(t)
}
