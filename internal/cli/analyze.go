package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lexdiv/internal/adapter/analyzer"
	"lexdiv/internal/adapter/fs"
	"lexdiv/internal/domain"
	"lexdiv/internal/usecase"
)

var (
	analyzeMetrics []string
	analyzeJSON    bool
	analyzeSeed    int64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Score every text in a corpus directory",
	Long: `Walk a corpus directory and compute the configured diversity metrics
for every matching text file.

Examples:
  lexdiv analyze corpus/
  lexdiv analyze corpus/ -m ttr,mtld --json
  lexdiv analyze corpus/ --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSliceVarP(&analyzeMetrics, "metrics", "m", nil, "metrics to compute (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "voc-D random seed (0 = non-reproducible)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s (use 'lexdiv score' for single files)", path)
	}

	cfg := GetConfig()
	if analyzeSeed != 0 {
		cfg.Vocd.Seed = analyzeSeed
	}

	raws := analyzeMetrics
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
	walker := fs.NewWalker(cfg.Analyze.Includes, cfg.Analyze.Excludes)
	uc := usecase.NewAnalyzer(cfg, walker, analyzer.NewTokenizer(), guiraud, vocd, mtld, maas, log)

	var (
		bar   *progressbar.ProgressBar
		barMu sync.Mutex
	)
	progress := func(done, total int, file string) {
		barMu.Lock()
		defer barMu.Unlock()
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Analyzing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
			)
		}
		bar.Add(1)
	}
	if analyzeJSON {
		progress = nil // keep stdout/stderr clean for piping
	}

	report, err := uc.AnalyzeDir(path, metrics, progress)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if analyzeJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	printReport(report, path)
	return nil
}

func printReport(report *domain.Report, root string) {
	if len(report.Files) == 0 {
		fmt.Println("No matching files found.")
		return
	}

	for _, f := range report.Files {
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			rel = f.Path
		}
		fmt.Printf("--- %s (%d tokens, %d types) ---\n", rel, f.TokenCount, f.TypeCount)
		for _, s := range f.Scores {
			fmt.Printf("  %-18s %.4f\n", s.Metric, s.Value)
		}
		for _, e := range f.Errors {
			fmt.Printf("  ! %s\n", e)
		}
		fmt.Println()
	}

	fmt.Printf("Analyzed %d files (%d failed)\n", report.FilesAnalyzed, report.FilesFailed)
}
