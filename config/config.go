// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/goblinsim/simulation"
	"github.com/ava-labs/goblinsim/utils/logging"
)

const envPrefix = "goblinsim"

// DisplayFile is where display logs are written. Highlighting in "auto" mode
// is enabled only if it is a terminal.
var DisplayFile = os.Stderr

var errUnknownIncomeType = errors.New("unknown income type")

// Config is everything needed to run and report a simulation.
type Config struct {
	Simulation    simulation.Options
	Logging       logging.Config
	Verbose       bool
	HistogramFile string
}

// BuildViper returns the viper environment built from the already parsed
// flags in [fs], the environment and, if one was specified, a config file.
//
// Values are looked up in that order of precedence: flags that were set,
// environment variables, the config file, flag defaults.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if v.IsSet(ConfigFileKey) {
		if configFile := v.GetString(ConfigFileKey); configFile != "" {
			v.SetConfigFile(os.ExpandEnv(configFile))
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
			}
		}
	}
	return v, nil
}

// GetConfig reads a Config out of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	incomeStrategy, err := simulation.ToStrategy(v.GetString(IncomeStrategyKey))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", IncomeStrategyKey, err)
	}
	deathStrategy, err := simulation.ToStrategy(v.GetString(DeathStrategyKey))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", DeathStrategyKey, err)
	}
	income, err := getIncome(v)
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}
	highlight, err := logging.ToHighlight(v.GetString(LogHighlightKey), DisplayFile.Fd())
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", LogHighlightKey, err)
	}

	options := simulation.Options{
		MaxSteps:       v.GetInt(MaxStepsKey),
		InitialGold:    v.GetInt64(InitialGoldKey),
		Income:         income,
		IncomeStrategy: incomeStrategy,
		DeathStrategy:  deathStrategy,
		PIncome:        v.GetFloat64(PIncomeKey),
		PBirth:         v.GetFloat64(PBirthKey),
		PDeath:         v.GetFloat64(PDeathKey),
		Seed:           v.GetUint64(SeedKey),
	}
	if err := options.Verify(); err != nil {
		return Config{}, err
	}

	return Config{
		Simulation: options,
		Logging: logging.Config{
			LogLevel:         logLevel,
			DisplayHighlight: highlight,
			MsgPrefix:        v.GetString(LogPrefixKey),
			LogFile:          v.GetString(LogFileKey),
			MaxSize:          v.GetInt(LogMaxSizeKey),
			MaxFiles:         v.GetInt(LogMaxFilesKey),
			MaxAge:           v.GetInt(LogMaxAgeKey),
			Compress:         v.GetBool(LogCompressKey),
		},
		Verbose:       v.GetBool(VerboseKey),
		HistogramFile: v.GetString(HistogramFileKey),
	}, nil
}

func getIncome(v *viper.Viper) (simulation.IncomeFunc, error) {
	switch incomeType := strings.ToLower(v.GetString(IncomeTypeKey)); incomeType {
	case constantIncome:
		return simulation.ConstantIncome(v.GetInt64(IncomeKey)), nil
	case proportionalIncome:
		return simulation.ProportionalIncome(v.GetFloat64(IncomeRateKey)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownIncomeType, incomeType)
	}
}
