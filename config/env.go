package config

import (
	"os"
	"strconv"
	"strings"
)

// environment variables read by ApplyEnv
const (
	EnvHost        = "REDIS_HOST"
	EnvPort        = "REDIS_PORT"
	EnvMixRatio    = "DICT_MIX_RATIO"
	EnvFocus       = "REDIS_FOCUS_COMMANDS"
	EnvExclude     = "REDIS_EXCLUDED_COMMANDS"
	EnvMaxCommands = "MAX_COMMANDS_PER_TEST"
	EnvSeed        = "RESPFUZZ_SEED"
)

// ApplyEnv overrides c from the process environment, see ApplyLookup.
func (c *Config) ApplyEnv() []*ConfigError {
	return c.ApplyLookup(os.LookupEnv)
}

// ApplyLookup overrides c from the variables returned by lookup and
// validates the result. A variable that does not parse is ignored and
// reported. Command lists are comma separated.
func (c *Config) ApplyLookup(lookup func(string) (string, bool)) (errs []*ConfigError) {
	bad := func(field, value string, current interface{}, reason string) {
		errs = append(errs, &ConfigError{Field: field, Value: value, Default: current, Reason: reason})
	}
	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Target.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		if port, err := strconv.Atoi(v); err != nil {
			bad(EnvPort, v, c.Target.Port, "not an integer")
		} else {
			c.Target.Port = port
		}
	}
	if v, ok := lookup(EnvMixRatio); ok && v != "" {
		if ratio, err := strconv.ParseFloat(v, 64); err != nil {
			bad(EnvMixRatio, v, c.Fuzz.MixRatio, "must be a float")
		} else {
			c.Fuzz.MixRatio = ratio
		}
	}
	if v, ok := lookup(EnvMaxCommands); ok && v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			bad(EnvMaxCommands, v, c.Fuzz.MaxCommands, "not an integer")
		} else {
			c.Fuzz.MaxCommands = n
		}
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err != nil {
			bad(EnvSeed, v, c.Fuzz.Seed, "not an integer")
		} else {
			c.Fuzz.Seed = seed
		}
	}
	if v, ok := lookup(EnvFocus); ok {
		c.Fuzz.Focus = splitList(v)
	}
	if v, ok := lookup(EnvExclude); ok {
		c.Fuzz.Exclude = splitList(v)
	}
	return append(errs, c.Validate()...)
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
