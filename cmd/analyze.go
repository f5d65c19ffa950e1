package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pitchspark/pitchspark/internal/ai"
	"github.com/pitchspark/pitchspark/internal/extract"
	"github.com/pitchspark/pitchspark/internal/logger"
	"github.com/pitchspark/pitchspark/internal/review"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptCritique = "Get an AI critique"
	PromptRewrite  = "Get AI rewrites"
	PromptDump     = "Dump report to file"
	PromptExit     = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptCritique, PromptRewrite, PromptDump, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score career text and print improvement suggestions",
	Long: `Score career text (a LinkedIn 'About' section or a resume) and print
phrase-level improvement suggestions. Reads from stdin when no file is
given. PDF files are text-extracted first.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("pdf", false, "treat the input file as a PDF resume")
	analyzeCmd.Flags().Bool("no-ai", false, "skip the AI critique/rewrite actions even if configured")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "do not show the interactive menu, print the score and exit")
}

func analyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	text, err := readText(cmd, args)
	if err != nil {
		zlog.Fatal("reading input text", zap.Error(err))
	}

	report := review.Analyze(text)

	zlog.Info("analysis complete",
		zap.Int("score", report.Score),
		zap.Int("suggestions", len(report.Suggestions)),
	)

	for _, suggestion := range report.Suggestions {
		zlog.Info("suggestion", zap.String("advice", suggestion))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	reviewer := prepareReviewer(ctx, cmd, config, zlog)

	for {
		_, action, err := prompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, reviewer, report, text, zlog); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, reviewer ai.Reviewer, report *review.Report, text string, zlog *zap.Logger) error {
	switch action {
	case PromptCritique:
		if reviewer == nil {
			zlog.Warn("ai reviewer is not available", zap.String("hint", "enable ai in the configuration"))
			return nil
		}

		critique, err := reviewer.Critique(ctx, text)
		if err != nil {
			zlog.Warn("ai critique failed", zap.Error(err))
			return nil
		}

		zlog.Info("ai critique", zap.String("summary", critique.Summary))
		for i, item := range critique.ActionItems {
			zlog.Info("action item", zap.Int("rank", i+1), zap.String("advice", item))
		}
		return nil
	case PromptRewrite:
		if reviewer == nil {
			zlog.Warn("ai reviewer is not available", zap.String("hint", "enable ai in the configuration"))
			return nil
		}

		rewrites, err := reviewer.Rewrite(ctx, text)
		if err != nil {
			zlog.Warn("ai rewrite failed", zap.Error(err))
			return nil
		}

		fmt.Println(rewrites)
		return nil
	case PromptDump:
		filename, err := report.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		zlog.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		zlog.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func prepareReviewer(ctx context.Context, cmd *cobra.Command, config *Config, zlog *zap.Logger) ai.Reviewer {
	if flag := cmd.Flag("no-ai"); flag != nil && flag.Value.String() == "true" {
		return nil
	}

	var aiConfig *AIConfig
	if config != nil {
		aiConfig = config.AI
	}

	reviewer, err := newReviewer(ctx, aiConfig, zlog)
	if err != nil {
		zlog.Debug("ai reviewer unavailable", zap.Error(err))
		return nil
	}

	return reviewer
}

// readText loads the text to analyze from the file argument or stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	path := args[0]

	if cmd.Flag("pdf").Value.String() == "true" || strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extract.PDFFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
