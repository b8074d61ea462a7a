package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvNumBalls       = "GALTON_NUM_BALLS"
	EnvNumRows        = "GALTON_NUM_ROWS"
	EnvPegsInFirstRow = "GALTON_PEGS_IN_FIRST_ROW"
	EnvGravity        = "GALTON_GRAVITY"
	EnvElasticity     = "GALTON_ELASTICITY"
	EnvWiggleDeg      = "GALTON_WIGGLE_DEG"
	EnvSeed           = "GALTON_SEED"
	EnvAudio          = "GALTON_AUDIO"
)

// ApplyEnv loads envFile (if it exists) into the process environment and
// applies any GALTON_* overrides to cfg. Variables already set in the
// environment win over the file. An empty envFile skips file loading.
// The config is re-validated afterwards.
func ApplyEnv(cfg *BoardConfig, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var errs []error
	envInt(EnvNumBalls, &cfg.Spawn.NumBalls, &errs)
	envInt(EnvNumRows, &cfg.Board.NumRows, &errs)
	envInt(EnvPegsInFirstRow, &cfg.Board.PegsInFirstRow, &errs)
	envFloat(EnvGravity, &cfg.Physics.Gravity, &errs)
	envFloat(EnvElasticity, &cfg.Physics.Elasticity, &errs)
	envFloat(EnvWiggleDeg, &cfg.Physics.WiggleDeg, &errs)
	envBool(EnvAudio, &cfg.Audio.Enabled, &errs)

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Spawn.Seed = seed
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return cfg.Validate()
}

func envInt(key string, dst *int, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func envFloat(key string, dst *float64, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}

func envBool(key string, dst *bool, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}
