package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/app"
	"github.com/abhisek/studyplanner/internal/config"
	"github.com/abhisek/studyplanner/internal/llm"
	"github.com/abhisek/studyplanner/internal/logging"
	"github.com/abhisek/studyplanner/internal/store"
)

// logFileName sits next to the database when the terminal UI has no
// STUDYPLANNER_LOG_FILE.
const logFileName = "studyplanner.log"

// runtime holds what every provider-backed command needs.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *store.Store
	service *actions.Service
}

type setupOpts struct {
	// fileLog forces file logging; the terminal UI owns the console.
	fileLog bool
	metrics *actions.Metrics
}

func setup(cmd *cobra.Command, opts setupOpts) (*runtime, error) {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	logOpts := cfg.Log
	logOpts.Console = cmd.ErrOrStderr()
	if opts.fileLog && logOpts.File == "" {
		logOpts.File = filepath.Join(filepath.Dir(dbPath), logFileName)
	}
	logger := logging.New(logOpts)

	s, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, s.EventRepo(), logger)
	if err != nil {
		s.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	logger.Debug("runtime ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("db", dbPath),
	)

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		store:   s,
		service: actions.NewService(provider, logger, opts.metrics, cfg.Plan),
	}, nil
}

func (r *runtime) Close() {
	r.store.Close()
	_ = r.logger.Sync()
}

func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd, setupOpts{fileLog: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(cmd.Context(), app.Options{
		Service: rt.service,
		Events:  rt.store.EventRepo(),
		Logger:  rt.logger,
	})
}
