package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pitchspark/pitchspark/internal/ai"
	"github.com/pitchspark/pitchspark/internal/ai/gemini"
	"github.com/pitchspark/pitchspark/internal/logger"
	"github.com/pitchspark/pitchspark/internal/secrets"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "pitchspark"
)

type Config struct {
	Server *ServerConfig `mapstructure:"server"`
	AI     *AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Address      string `mapstructure:"address"`
	MaxBodyBytes int64  `mapstructure:"max-body-bytes"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "pitchspark scores career text and suggests phrase-level improvements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Mirrors the original deployment: secrets may arrive via a .env file.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is pitchspark.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// The default config is optional: scoring works without AI or
	// server settings.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// newReviewer builds the configured AI reviewer. Returns an error when
// AI is disabled or misconfigured; callers decide whether that is fatal.
func newReviewer(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Reviewer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("ai is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	keyFile := cfg.Gemini.APIKeyFile
	if keyFile == "" {
		keyFile = viper.GetString("ai.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(zlog, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewReviewer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
