package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archiveinsight/backend/internal/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a project document for duplicates",
	Long: `Extracts the project fields from a PDF, Word or text document and compares
them with every archived project. Prints the verdict and its explanation.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	ctx := cmd.Context()
	svc, err := newServices(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.analyzer.AnalyzeDocument(ctx, &domain.Document{
		Filename: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *domain.MatchReport) {
	info := report.UploadedProjectInfo

	cmd.Printf("Title:        %s\n", info.Title)
	cmd.Printf("Technologies: %s\n", strings.Join(info.Technologies, ", "))
	cmd.Printf("Keywords:     %s\n", strings.Join(info.Keywords, ", "))
	cmd.Printf("Intent:       %s\n", info.Intent)
	cmd.Println()

	cmd.Printf("Result: %s\n", strings.ToUpper(string(report.FinalResult)))
	if report.MatchedWith != nil {
		cmd.Printf("Matched with: %s (%s, %s)\n",
			report.MatchedWith.ProjectTitle, report.MatchedWith.ProjectID, report.MatchedWith.UserID)
	}
	cmd.Println()
	cmd.Println(report.Explanation)
}
