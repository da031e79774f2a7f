package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"respfuzz/pkg/hashkit"
	"respfuzz/pkg/log"
	"respfuzz/pkg/types"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the fuzzer config.
type Config struct {
	Debug   bool
	Log     string
	LogVL   int `toml:"log_vl"`
	Metrics string

	Target TargetConfig `toml:"target"`
	Fuzz   FuzzConfig   `toml:"fuzz"`
}

// TargetConfig is the server under test, timeouts are in msec.
type TargetConfig struct {
	Host         string
	Port         int
	DialTimeout  int `toml:"dial_timeout"`
	ReadTimeout  int `toml:"read_timeout"`
	WriteTimeout int `toml:"write_timeout"`
}

// FuzzConfig drives test case generation.
type FuzzConfig struct {
	MixRatio    float64          `toml:"mix_ratio"`
	MaxCommands int              `toml:"max_commands"`
	Seed        int64            `toml:"seed"`
	Exclude     []string         `toml:"exclude"`
	Focus       []string         `toml:"focus"`
	DictFile    string           `toml:"dict_file"`
	CorpusDir   string           `toml:"corpus_dir"`
	SaveDir     string           `toml:"save_dir"`
	SaveFormat  types.SaveFormat `toml:"save_format"`
	Fingerprint string           `toml:"fingerprint"`
}

// ConfigError is an invalid value that was replaced by its default.
type ConfigError struct {
	Field   string
	Value   interface{}
	Default interface{}
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: invalid value %v (%s), using %v", e.Field, e.Value, e.Reason, e.Default)
}

// DefaultConfig new config by default string.
func DefaultConfig() *Config {
	c := &Config{}
	if _, err := toml.Decode(defaultConfig, c); err != nil {
		panic(err)
	}
	if errs := c.Validate(); len(errs) > 0 {
		panic(errs[0])
	}
	return c
}

// LoadFromFile decodes path over c. Invalid values are reset and returned
// as warnings, only an unreadable or malformed file is an error.
func (c *Config) LoadFromFile(path string) ([]*ConfigError, error) {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, errors.Wrapf(err, "Load From File:%s", path)
	}
	return c.Validate(), nil
}

// Validate resets every invalid field to its default.
func (c *Config) Validate() (errs []*ConfigError) {
	def := defaults()
	reset := func(field string, value, dv interface{}, reason string) {
		errs = append(errs, &ConfigError{Field: field, Value: value, Default: dv, Reason: reason})
	}
	if c.LogVL < 0 {
		reset("log_vl", c.LogVL, 0, "negative")
		c.LogVL = 0
	}
	t := &c.Target
	if strings.TrimSpace(t.Host) == "" {
		reset("target.host", t.Host, def.Target.Host, "empty")
		t.Host = def.Target.Host
	}
	if t.Port <= 0 || t.Port > 65535 {
		reset("target.port", t.Port, def.Target.Port, "out of range")
		t.Port = def.Target.Port
	}
	if t.DialTimeout <= 0 {
		reset("target.dial_timeout", t.DialTimeout, def.Target.DialTimeout, "not positive")
		t.DialTimeout = def.Target.DialTimeout
	}
	if t.ReadTimeout <= 0 {
		reset("target.read_timeout", t.ReadTimeout, def.Target.ReadTimeout, "not positive")
		t.ReadTimeout = def.Target.ReadTimeout
	}
	if t.WriteTimeout <= 0 {
		reset("target.write_timeout", t.WriteTimeout, def.Target.WriteTimeout, "not positive")
		t.WriteTimeout = def.Target.WriteTimeout
	}
	f := &c.Fuzz
	if math.IsNaN(f.MixRatio) || f.MixRatio < 0 || f.MixRatio > 1 {
		reset("fuzz.mix_ratio", f.MixRatio, def.Fuzz.MixRatio, "out of range [0.0, 1.0]")
		f.MixRatio = def.Fuzz.MixRatio
	}
	if f.MaxCommands < 1 {
		reset("fuzz.max_commands", f.MaxCommands, def.Fuzz.MaxCommands, "less than 1")
		f.MaxCommands = def.Fuzz.MaxCommands
	}
	if f.SaveFormat == "" {
		f.SaveFormat = def.Fuzz.SaveFormat
	} else if !f.SaveFormat.Valid() {
		reset("fuzz.save_format", f.SaveFormat, def.Fuzz.SaveFormat, "unknown format")
		f.SaveFormat = def.Fuzz.SaveFormat
	}
	if !hashkit.Valid(f.Fingerprint) {
		reset("fuzz.fingerprint", f.Fingerprint, def.Fuzz.Fingerprint, "unknown hash method")
		f.Fingerprint = def.Fuzz.Fingerprint
	}
	f.Exclude = normalizeNames(f.Exclude)
	f.Focus = normalizeNames(f.Focus)
	return
}

// normalizeNames upper-cases command names and drops empty and repeated
// ones.
func normalizeNames(names []string) []string {
	if len(names) == 0 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		n = strings.Join(strings.Fields(strings.ToUpper(n)), " ")
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Addr returns the host:port of the target.
func (t *TargetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// Timeouts returns the dial, read and write timeouts.
func (t *TargetConfig) Timeouts() (dial, read, write time.Duration) {
	return time.Millisecond * time.Duration(t.DialTimeout),
		time.Millisecond * time.Duration(t.ReadTimeout),
		time.Millisecond * time.Duration(t.WriteTimeout)
}

// LogConfig returns the logger config.
func (c *Config) LogConfig() *log.Config {
	return &log.Config{Debug: c.Debug, Log: c.Log, LogVL: c.LogVL}
}

// defaults decodes defaultConfig without validating it.
func defaults() *Config {
	c := &Config{}
	if _, err := toml.Decode(defaultConfig, c); err != nil {
		panic(err)
	}
	return c
}

const defaultConfig = `
##################################################
#                                                #
#                    respfuzz                    #
#      protocol level fuzzer for RESP servers    #
#                                                #
##################################################

# Log to stdout.
debug = false
# Log file, rotated by size. Empty disables file logging.
log = ""
# Verbose level of the log.
log_vl = 0
# Listen address of the prometheus /metrics endpoint. Empty disables it.
metrics = ""

[target]
host = "127.0.0.1"
port = 6379
# All timeouts are in msec.
dial_timeout = 1000
# Per command read timeout.
read_timeout = 5000
write_timeout = 5000

[fuzz]
# Chance that an argument is picked from the dictionary or the corpus
# instead of being generated.
mix_ratio = 0.9
# A test case has between 1 and max_commands commands.
max_commands = 20
# 0 derives the seed from the first 4 bytes of the input.
seed = 0
# Commands never generated nor accepted from the input.
exclude = ["SHUTDOWN", "DEBUG", "MONITOR", "SYNC", "PSYNC", "REPLICAOF", "SLAVEOF"]
# Commands generated more often.
focus = []
dict_file = "redis.dict"
corpus_dir = "input"
# Keep every executed test case here. Empty disables saving.
save_dir = ""
# json or msgpack.
save_format = "json"
# Hash naming saved test cases: murmur, fnv1a_32, fnv1_32 or one_on_time.
fingerprint = "murmur"
`
