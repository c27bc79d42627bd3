package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"diagnostic-canvas/internal/answers"
	"diagnostic-canvas/internal/config"
	"diagnostic-canvas/internal/logging"
	"diagnostic-canvas/internal/metrics"
	"diagnostic-canvas/internal/storage"
)

// app bundles what every command needs: config, logger and a loaded store.
type app struct {
	cfg     *config.AppConfig
	logger  *zap.Logger
	storage storage.Storage
	store   *answers.Store
	metrics *metrics.Metrics
}

func loadConfig(flags *globalFlags) (*config.AppConfig, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, err
	}

	cfg := config.LoadAppConfig()
	if flags.dataDir != "" {
		cfg.Storage.DataDir = flags.dataDir
	}
	if flags.backend != "" {
		cfg.Storage.Backend = flags.backend
	}
	if flags.key != "" {
		cfg.Storage.Key = flags.key
	}
	if flags.exportDir != "" {
		cfg.Export.Dir = flags.exportDir
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newApp(flags *globalFlags, interactive bool) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Verbose:     flags.verbose,
		File:        cfg.Log.File,
		Interactive: interactive,
	})
	if err != nil {
		return nil, err
	}

	m := metrics.NewMetrics()
	logger = logger.With(zap.String("session_id", m.SessionID))

	st, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DataDir)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.DataDir))

	store := answers.NewStore(st, cfg.Storage.Key, logger, m)
	store.Load()

	return &app{
		cfg:     cfg,
		logger:  logger,
		storage: st,
		store:   store,
		metrics: m,
	}, nil
}

// checkSaved turns a write failure logged by the store since before into
// a command error.
func (a *app) checkSaved(before metrics.Snapshot) error {
	if a.metrics.GetSnapshot().SaveFailures > before.SaveFailures {
		return fmt.Errorf("answers could not be saved to %s storage", a.cfg.Storage.Backend)
	}
	return nil
}

func (a *app) Close() {
	s := a.metrics.GetSnapshot()
	a.logger.Info("session finished",
		zap.Duration("duration", s.Duration),
		zap.Int64("answer_edits", s.AnswerEdits),
		zap.Int64("toggles", s.Toggles),
		zap.Int64("clears", s.Clears),
		zap.Int64("exports", s.Exports),
		zap.Int64("saves", s.Saves),
		zap.Int64("save_failures", s.SaveFailures),
		zap.Int64("load_failures", s.LoadFailures))

	if err := a.storage.Close(); err != nil {
		a.logger.Warn("close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}
