// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey     = "config-file"
	MaxStepsKey       = "max-steps"
	InitialGoldKey    = "initial-gold"
	IncomeTypeKey     = "income-type"
	IncomeKey         = "income"
	IncomeRateKey     = "income-rate"
	IncomeStrategyKey = "income-strategy"
	DeathStrategyKey  = "death-strategy"
	PIncomeKey        = "p-income"
	PBirthKey         = "p-birth"
	PDeathKey         = "p-death"
	SeedKey           = "seed"
	LogLevelKey       = "log-level"
	LogHighlightKey   = "log-display-highlight"
	LogPrefixKey      = "log-prefix"
	LogFileKey        = "log-file"
	LogMaxSizeKey     = "log-rotater-max-size"
	LogMaxFilesKey    = "log-rotater-max-files"
	LogMaxAgeKey      = "log-rotater-max-age"
	LogCompressKey    = "log-rotater-compress-enabled"
	VerboseKey        = "verbose"
	HistogramFileKey  = "histogram-file"
)
