package main

import (
	"errors"
	"flag"
	"os"

	"github.com/GoSim-25-26J-441/fitting-core/pkg/config"
	"github.com/GoSim-25-26J-441/fitting-core/pkg/logger"
	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		logger.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	env, err := config.ParseEnv()
	if err != nil {
		logger.Error("failed to parse environment", "error", err)
		os.Exit(1)
	}

	var configPath string
	var logLevel string

	flag.StringVar(&configPath, "config", env.ConfigPath, "path to the fit job file")
	flag.StringVar(&logLevel, "log-level", env.LogLevel, "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.LoadFitConfig(configPath)
	if err != nil {
		logger.Error("failed to load fit config", "path", configPath, "error", err)
		os.Exit(1)
	}

	// Flag and environment overrides win over the file's log_level.
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger.SetDefault(logger.NewText(level, os.Stdout))

	pars, err := cfg.BuildParameters()
	if err != nil {
		logger.Error("failed to build parameters", "error", err)
		os.Exit(1)
	}

	logger.Info("fit job loaded",
		"config", configPath,
		"parameters", pars.Len(),
		"varied", pars.NumVaried())
	if cfg.Solver != nil {
		logger.Info("solver requested",
			"name", cfg.Solver.Name,
			"max_iterations", cfg.Solver.MaxIterations,
			"tolerance", cfg.Solver.Tolerance,
			"seed", cfg.Solver.Seed)
	}

	if _, err := pars.WriteTo(os.Stdout); err != nil {
		logger.Error("failed to render parameters", "error", err)
		os.Exit(1)
	}
}
