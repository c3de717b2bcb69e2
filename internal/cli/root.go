package cli

import (
	"os"

	"clipquiz/internal/app"
	"clipquiz/internal/config"
	"clipquiz/internal/infra/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	dataDir    string
	debug      bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	// Optional .env; missing file is fine.
	_ = godotenv.Load()

	envConfig := os.Getenv("CONFIG_PATH")

	cmd := &cobra.Command{
		Use:   "clipquiz",
		Short: "Crowd-sourced video quiz and labeling engine",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config (optional)")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newNextCmd())
	cmd.AddCommand(newSubmitCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newUsersCmd())
	return cmd
}

// buildService wires the file-backed stores into a QuizService.
func buildService() (*app.QuizService, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	logger, err := newLogger(debug || cfg.Log.Debug)
	if err != nil {
		return nil, nil, err
	}

	catalog := file.NewCatalog(cfg.QuestionsPath(), logger)
	registry, err := file.NewRegistry(cfg.UsersPath(), logger)
	if err != nil {
		return nil, nil, err
	}
	answers, err := file.NewAnswerLog(cfg.AnswersPath(), logger)
	if err != nil {
		return nil, nil, err
	}
	labels, err := file.NewLabelStore(cfg.LabelsPath(), logger)
	if err != nil {
		return nil, nil, err
	}

	return app.NewQuizService(catalog, registry, answers, labels, logger), logger, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
