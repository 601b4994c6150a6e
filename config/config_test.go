// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/goblinsim/simulation"
	"github.com/ava-labs/goblinsim/utils/logging"
)

func setupViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	require := require.New(t)

	fs := BuildFlagSet()
	require.NoError(fs.Parse(args))
	v, err := BuildViper(fs)
	require.NoError(err)
	return v
}

// setupFile writes [value] to [fileName] in a fresh directory.
func setupFile(t *testing.T, fileName string, value string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(value), 0o600))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	config, err := GetConfig(setupViper(t))
	require.NoError(err)

	options := config.Simulation
	require.Equal(defaultMaxSteps, options.MaxSteps)
	require.Equal(int64(1), options.InitialGold)
	require.Equal(int64(2), options.Income(1))
	require.Equal(simulation.Weighted, options.IncomeStrategy)
	require.Equal(simulation.Uniform, options.DeathStrategy)
	require.Equal(1.0, options.PIncome)
	require.Equal(0.5, options.PBirth)
	require.Equal(0.4, options.PDeath)
	require.Equal(uint64(1), options.Seed)

	require.Equal(logging.Info, config.Logging.LogLevel)
	require.Empty(config.Logging.MsgPrefix)
	require.Empty(config.Logging.LogFile)
	require.Equal(8, config.Logging.MaxSize)
	require.Equal(7, config.Logging.MaxFiles)
	require.False(config.Verbose)
	require.Empty(config.HistogramFile)
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	v := setupViper(t,
		"--max-steps=10",
		"--income-type=proportional",
		"--income-rate=0.5",
		"--death-strategy=weighted",
		"--log-level=debug",
		"--log-display-highlight=plain",
		"--log-prefix=sim",
		"--log-file=goblinsim.log",
		"--log-rotater-max-age=3",
		"--log-rotater-compress-enabled",
		"--verbose",
		"--histogram-file=gold.dat",
	)
	config, err := GetConfig(v)
	require.NoError(err)

	require.Equal(10, config.Simulation.MaxSteps)
	require.Equal(int64(15), config.Simulation.Income(10))
	require.Equal(simulation.Weighted, config.Simulation.DeathStrategy)
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.Plain, config.Logging.DisplayHighlight)
	require.Equal("goblinsim.log", config.Logging.LogFile)
	require.Equal("sim", config.Logging.MsgPrefix)
	require.Equal(3, config.Logging.MaxAge)
	require.True(config.Logging.Compress)
	require.True(config.Verbose)
	require.Equal("gold.dat", config.HistogramFile)
}

func TestGetConfigFromFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		contents string
	}{
		{
			name:     "json",
			fileName: "config.json",
			contents: `{"max-steps": 42, "p-death": 0.9, "death-strategy": "weighted"}`,
		},
		{
			name:     "yaml",
			fileName: "config.yaml",
			contents: "max-steps: 42\np-death: 0.9\ndeath-strategy: weighted\n",
		},
		{
			name:     "toml",
			fileName: "config.toml",
			contents: "max-steps = 42\np-death = 0.9\ndeath-strategy = \"weighted\"\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			configFile := setupFile(t, test.fileName, test.contents)
			config, err := GetConfig(setupViper(t, "--config-file="+configFile))
			require.NoError(err)

			require.Equal(42, config.Simulation.MaxSteps)
			require.Equal(0.9, config.Simulation.PDeath)
			require.Equal(simulation.Weighted, config.Simulation.DeathStrategy)
			// Not in the file, so the flag default is used.
			require.Equal(0.5, config.Simulation.PBirth)
		})
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	require := require.New(t)

	configFile := setupFile(t, "config.json", `{"max-steps": 42, "seed": 5}`)
	config, err := GetConfig(setupViper(t, "--config-file="+configFile, "--max-steps=7"))
	require.NoError(err)

	require.Equal(7, config.Simulation.MaxSteps)
	require.Equal(uint64(5), config.Simulation.Seed)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("GOBLINSIM_SEED", "99")
	t.Setenv("GOBLINSIM_P_BIRTH", "0.25")

	config, err := GetConfig(setupViper(t))
	require.NoError(t, err)
	require.Equal(t, uint64(99), config.Simulation.Seed)
	require.Equal(t, 0.25, config.Simulation.PBirth)
}

func TestMissingConfigFile(t *testing.T) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse([]string{"--config-file=" + filepath.Join(t.TempDir(), "missing.json")}))

	_, err := BuildViper(fs)
	require.Error(t, err)
}

func TestGetConfigInvalid(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{
			name:        "income strategy",
			args:        []string{"--income-strategy=lottery"},
			expectedErr: "invalid income-strategy",
		},
		{
			name:        "death strategy",
			args:        []string{"--death-strategy=old-age"},
			expectedErr: "invalid death-strategy",
		},
		{
			name:        "income type",
			args:        []string{"--income-type=inheritance"},
			expectedErr: errUnknownIncomeType.Error(),
		},
		{
			name:        "log level",
			args:        []string{"--log-level=loud"},
			expectedErr: "invalid log-level",
		},
		{
			name:        "highlight",
			args:        []string{"--log-display-highlight=neon"},
			expectedErr: "invalid log-display-highlight",
		},
		{
			name:        "probability",
			args:        []string{"--p-death=2"},
			expectedErr: "probability must be in [0, 1]",
		},
		{
			name:        "max steps",
			args:        []string{"--max-steps=0"},
			expectedErr: "max steps must be positive",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := GetConfig(setupViper(t, test.args...))
			require.ErrorContains(t, err, test.expectedErr)
		})
	}
}

func TestAutoHighlightFollowsDisplayFile(t *testing.T) {
	require := require.New(t)

	require.Equal(os.Stderr, DisplayFile)

	f, err := os.Create(filepath.Join(t.TempDir(), "display.log"))
	require.NoError(err)
	defer f.Close()

	DisplayFile = f
	defer func() {
		DisplayFile = os.Stderr
	}()

	// A regular file is never a terminal.
	config, err := GetConfig(setupViper(t, "--log-display-highlight=auto"))
	require.NoError(err)
	require.Equal(logging.Plain, config.Logging.DisplayHighlight)
}
