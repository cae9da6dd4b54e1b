package usecase

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"lexdiv/config"
	"lexdiv/internal/adapter/analyzer"
	"lexdiv/internal/domain"
	"lexdiv/internal/estimator"
	"lexdiv/internal/port"
)

// Analyzer runs the configured diversity metrics over texts and corpus
// directories. The underlying resources are read-only, so one Analyzer
// is safe for concurrent use.
type Analyzer struct {
	walker    port.FileWalker
	tokenizer *analyzer.Tokenizer
	guiraud   *estimator.Guiraud
	vocd      *estimator.Vocd
	mtld      *estimator.MTLD
	maas      *estimator.Maas
	cfg       *config.Config
	log       *logrus.Logger
}

// ProgressFunc reports corpus analysis progress.
type ProgressFunc func(done, total int, path string)

// NewAnalyzer creates an analyzer over the given resources.
func NewAnalyzer(
	cfg *config.Config,
	walker port.FileWalker,
	tokenizer *analyzer.Tokenizer,
	guiraud *estimator.Guiraud,
	vocd *estimator.Vocd,
	mtld *estimator.MTLD,
	maas *estimator.Maas,
	log *logrus.Logger,
) *Analyzer {
	if log == nil {
		log = logrus.New()
	}
	return &Analyzer{
		walker:    walker,
		tokenizer: tokenizer,
		guiraud:   guiraud,
		vocd:      vocd,
		mtld:      mtld,
		maas:      maas,
		cfg:       cfg,
		log:       log,
	}
}

// AnalyzeText tokenizes text and computes the requested metrics.
// Per-metric failures (short text, no factors) are recorded in the
// report without losing the other scores.
func (a *Analyzer) AnalyzeText(path, text string, metrics []domain.Metric) domain.FileReport {
	tokens := a.tokenizer.Tokenize(text)

	report := domain.FileReport{
		Path:       path,
		TokenCount: len(tokens),
		TypeCount:  analyzer.TypeCount(tokens),
	}

	for _, metric := range metrics {
		value, err := a.compute(metric, tokens)
		if err != nil {
			a.log.WithField("path", path).WithField("metric", metric).Debugf("metric failed: %v", err)
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", metric, err))
			continue
		}
		report.Scores = append(report.Scores, domain.Score{Metric: metric, Value: value})
	}

	return report
}

func (a *Analyzer) compute(metric domain.Metric, tokens []string) (float64, error) {
	switch metric {
	case domain.MetricTTR:
		return estimator.TTR(tokens)
	case domain.MetricGuiraud:
		return a.guiraud.Score(tokens, estimator.GuiraudOptions{
			FreqList:      a.cfg.Guiraud.FreqList,
			Spellcheck:    a.cfg.Guiraud.Spellcheck,
			Supplementary: a.cfg.Guiraud.Supplementary,
			UseLemmas:     a.cfg.Guiraud.UseLemmas,
		})
	case domain.MetricVocd:
		return a.vocd.Score(tokens, estimator.VocdOptions{
			Spellcheck: a.cfg.Vocd.Spellcheck,
			MinLen:     a.cfg.Vocd.MinLen,
			MaxLen:     a.cfg.Vocd.MaxLen,
			Subsamples: a.cfg.Vocd.Subsamples,
			Trials:     a.cfg.Vocd.Trials,
			Seed:       a.cfg.Vocd.Seed,
		})
	case domain.MetricMTLD:
		return a.mtld.Score(tokens, estimator.MTLDOptions{
			Spellcheck: a.cfg.MTLD.Spellcheck,
			FactorSize: a.cfg.MTLD.FactorSize,
		})
	case domain.MetricMaas:
		return a.maas.Score(tokens, a.cfg.Maas.Spellcheck)
	default:
		return 0, fmt.Errorf("unknown metric %q", metric)
	}
}

// AnalyzeFile reads and analyzes a single file.
func (a *Analyzer) AnalyzeFile(path string, metrics []domain.Metric) (domain.FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.AnalyzeText(path, string(data), metrics), nil
}

// AnalyzeDir walks root and analyzes every matching file with a bounded
// worker pool. File order in the report matches walk order.
func (a *Analyzer) AnalyzeDir(root string, metrics []domain.Metric, progress ProgressFunc) (*domain.Report, error) {
	files, err := a.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	workers := a.cfg.Analyze.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	report := &domain.Report{
		Files: make([]domain.FileReport, len(files)),
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := files[i].Path
				fileReport, err := a.AnalyzeFile(path, metrics)
				if err != nil {
					fileReport = domain.FileReport{
						Path:   path,
						Errors: []string{err.Error()},
					}
				}
				mu.Lock()
				report.Files[i] = fileReport
				done++
				if progress != nil {
					progress(done, len(files), path)
				}
				mu.Unlock()
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, f := range report.Files {
		if f.TokenCount == 0 && len(f.Errors) > 0 && len(f.Scores) == 0 {
			report.FilesFailed++
			continue
		}
		report.FilesAnalyzed++
	}

	return report, nil
}
