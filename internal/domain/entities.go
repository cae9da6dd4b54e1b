package domain

import (
	"fmt"
	"strings"
)

// Metric names a lexical-diversity measure.
type Metric string

const (
	MetricTTR     Metric = "ttr"
	MetricGuiraud Metric = "advanced_guiraud"
	MetricVocd    Metric = "vocd"
	MetricMTLD    Metric = "mtld"
	MetricMaas    Metric = "maas"
)

// AllMetrics lists every supported metric in display order.
var AllMetrics = []Metric{MetricTTR, MetricGuiraud, MetricVocd, MetricMTLD, MetricMaas}

// ParseMetric parses a user-provided metric name.
func ParseMetric(raw string) (Metric, error) {
	name := Metric(strings.ToLower(strings.TrimSpace(raw)))
	switch name {
	case MetricTTR, MetricGuiraud, MetricVocd, MetricMTLD, MetricMaas:
		return name, nil
	case "ag", "guiraud":
		return MetricGuiraud, nil
	default:
		return "", fmt.Errorf("unknown metric %q (supported: ttr, advanced_guiraud, vocd, mtld, maas)", raw)
	}
}

// ParseMetrics parses a list of metric names, or returns AllMetrics when
// the list is empty.
func ParseMetrics(raws []string) ([]Metric, error) {
	if len(raws) == 0 {
		return AllMetrics, nil
	}
	metrics := make([]Metric, 0, len(raws))
	for _, raw := range raws {
		m, err := ParseMetric(raw)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// Score is one computed metric value for one text.
type Score struct {
	Metric Metric  `json:"metric"`
	Value  float64 `json:"value"`
}

// FileReport holds the results for a single analyzed text.
type FileReport struct {
	Path       string   `json:"path"`
	TokenCount int      `json:"token_count"`
	TypeCount  int      `json:"type_count"`
	Scores     []Score  `json:"scores"`
	Errors     []string `json:"errors,omitempty"`
}

// Report aggregates the results of a corpus analysis run.
type Report struct {
	Files         []FileReport `json:"files"`
	FilesAnalyzed int          `json:"files_analyzed"`
	FilesFailed   int          `json:"files_failed"`
}
