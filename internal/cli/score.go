package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexdiv/internal/adapter/analyzer"
	"lexdiv/internal/domain"
	"lexdiv/internal/usecase"
)

var (
	scoreMetrics []string
	scoreJSON    bool
	scoreSeed    int64
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a single text",
	Long: `Compute diversity metrics for one text file, or for standard input
when no file is given.

Examples:
  lexdiv score essay.txt
  lexdiv score essay.txt -m vocd --seed 42
  cat essay.txt | lexdiv score`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringSliceVarP(&scoreMetrics, "metrics", "m", nil, "metrics to compute (default from config)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output as JSON")
	scoreCmd.Flags().Int64Var(&scoreSeed, "seed", 0, "voc-D random seed (0 = non-reproducible)")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if scoreSeed != 0 {
		cfg.Vocd.Seed = scoreSeed
	}

	raws := scoreMetrics
	if len(raws) == 0 {
		raws = cfg.Analyze.Metrics
	}
	metrics, err := domain.ParseMetrics(raws)
	if err != nil {
		return err
	}

	res, err := buildResources(cfg)
	if err != nil {
		return err
	}
	defer res.Close()

	guiraud, vocd, mtld, maas := buildEstimators(res)
	uc := usecase.NewAnalyzer(cfg, nil, analyzer.NewTokenizer(), guiraud, vocd, mtld, maas, log)

	var report domain.FileReport
	if len(args) == 1 {
		report, err = uc.AnalyzeFile(args[0], metrics)
		if err != nil {
			return err
		}
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		report = uc.AnalyzeText("<stdin>", string(data), metrics)
	}

	if scoreJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("%s: %d tokens, %d types\n", report.Path, report.TokenCount, report.TypeCount)
	for _, s := range report.Scores {
		fmt.Printf("  %-18s %.4f\n", s.Metric, s.Value)
	}
	for _, e := range report.Errors {
		fmt.Printf("  ! %s\n", e)
	}

	return nil
}
