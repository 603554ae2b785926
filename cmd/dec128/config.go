package main

import (
	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/decimal128"
)

// Error is the class of errors returned by the command.
var Error = errs.Class("dec128")

// Config is read from the optional TOML file given with --config. Flags
// given on the command line take precedence.
type Config struct {
	Rounding string `toml:"rounding"`
	LogLevel string `toml:"log-level"`
}

// DefaultConfig returns the configuration used without a file or flags.
func DefaultConfig() Config {
	return Config{
		Rounding: decimal128.TiesToEven.String(),
		LogLevel: "info",
	}
}

// LoadConfig reads path over the defaults. Unknown keys are an error.
func LoadConfig(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, Error.New("unknown config keys in %s: %v", path, undecoded)
	}

	return cfg, nil
}

// RoundingMode returns the configured rounding mode.
func (c Config) RoundingMode() (decimal128.RoundingMode, error) {
	return decimal128.ParseRoundingMode(c.Rounding)
}

// Logger builds a production zap logger writing to stderr at the configured
// level.
func (c Config) Logger() (log *zap.Logger, err error) {
	defer Error.WrapP(&err)

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
