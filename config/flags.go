// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	constantIncome     = "constant"
	proportionalIncome = "proportional"

	defaultMaxSteps = 100_000
)

// BuildFlagSet returns the complete set of flags for goblinsim
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("goblinsim", pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Specifies a config file (json, yaml or toml)")

	// Model
	fs.Int(MaxStepsKey, defaultMaxSteps, "Number of steps to simulate. Every goblin slot is allocated upfront for this many steps")
	fs.Int64(InitialGoldKey, 1, "Gold owned by a newborn goblin")
	fs.String(IncomeTypeKey, constantIncome, fmt.Sprintf("How an income changes the gold of a goblin. Should be one of {%s, %s}", constantIncome, proportionalIncome))
	fs.Int64(IncomeKey, 1, fmt.Sprintf("Gold added per income when %s is %q", IncomeTypeKey, constantIncome))
	fs.Float64(IncomeRateKey, 0.01, fmt.Sprintf("Fraction of its gold a goblin earns per income when %s is %q", IncomeTypeKey, proportionalIncome))
	fs.String(IncomeStrategyKey, "weighted", "How the goblin receiving an income is chosen. Should be one of {uniform, weighted}")
	fs.String(DeathStrategyKey, "uniform", "How the goblin that dies is chosen. Should be one of {uniform, weighted}")
	fs.Float64(PIncomeKey, 1, "Probability that a goblin receives an income in a step")
	fs.Float64(PBirthKey, 0.5, "Probability that a goblin is born in a step")
	fs.Float64(PDeathKey, 0.4, "Probability that a goblin dies in a step")
	fs.Uint64(SeedKey, 1, "Seed of the random source")

	// Output
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(LogPrefixKey, "", "If non-empty, the name logged with every message")
	fs.String(LogFileKey, "", "If non-empty, also write logs to this file")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of rotated log files to keep. 0 keeps all of them")
	fs.Int(LogMaxAgeKey, 0, "The maximum number of days to keep rotated log files. 0 keeps them regardless of their age")
	fs.Bool(LogCompressKey, false, "Enables the compression of rotated log files through gzip")
	fs.Bool(VerboseKey, false, "If true, print the gold of every goblin")
	fs.String(HistogramFileKey, "", "If non-empty, write the gold histogram to this file")

	return fs
}
