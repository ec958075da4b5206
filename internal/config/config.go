// Package config assembles the process configuration from the environment
// and optional .env files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/studyplanner/internal/llm"
	"github.com/abhisek/studyplanner/internal/logging"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// DefaultAddr is the listen address of the HTTP server.
const DefaultAddr = ":8080"

// DefaultEnvFiles are loaded by Load when no files are given.
var DefaultEnvFiles = []string{".env"}

type Config struct {
	LLM  llm.Config
	Plan studyplan.Config
	Log  logging.Options

	// Addr is the HTTP listen address for serve.
	Addr string
}

// LoadEnvFiles loads the given .env files into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Load reads .env files and then the environment.
func Load(files ...string) (Config, error) {
	if err := LoadEnvFiles(files...); err != nil {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv reads the configuration from the environment only.
func FromEnv() Config {
	cfg := Config{
		LLM:  llm.ConfigFromEnv(),
		Plan: studyplan.DefaultConfig(),
		Log:  logging.OptionsFromEnv(),
		Addr: DefaultAddr,
	}
	if v := os.Getenv("STUDYPLANNER_ADDR"); v != "" {
		cfg.Addr = v
	}

	flowFromEnv(&cfg.Plan.DailyPlan, "DAILY_PLAN")
	flowFromEnv(&cfg.Plan.Adapt, "ADAPT")
	flowFromEnv(&cfg.Plan.Recommend, "RECOMMEND")
	return cfg
}

// flowFromEnv applies STUDYPLANNER_<NAME>_MAX_TOKENS and
// STUDYPLANNER_<NAME>_TEMPERATURE. Unparseable values are ignored.
func flowFromEnv(fc *studyplan.FlowConfig, name string) {
	if v := os.Getenv("STUDYPLANNER_" + name + "_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fc.MaxTokens = n
		}
	}
	if v := os.Getenv("STUDYPLANNER_" + name + "_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			fc.Temperature = f
		}
	}
}
