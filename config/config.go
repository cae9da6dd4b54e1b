package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lexdiv tool.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Analyze   AnalyzeConfig   `yaml:"analyze"`
	Guiraud   GuiraudConfig   `yaml:"guiraud"`
	Vocd      VocdConfig      `yaml:"vocd"`
	MTLD      MTLDConfig      `yaml:"mtld"`
	Maas      MaasConfig      `yaml:"maas"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ResourcesConfig points at the word-list and lemma resources. All of
// them are loaded once at startup and treated as immutable afterwards.
type ResourcesConfig struct {
	WordlistDir   string `yaml:"wordlist_dir"`   // directory of newline-delimited lists
	LemmaDB       string `yaml:"lemma_db"`       // compiled resource database (see `lexdiv compile`)
	LemmaTSV      string `yaml:"lemma_tsv"`      // raw token<TAB>lemma table
	Stemming      bool   `yaml:"stemming"`       // fall back to a stemmer when no lemma table is given
	DictionaryURL string `yaml:"dictionary_url"` // optional HTTP lexical-validity service
}

// AnalyzeConfig holds corpus scanning configuration.
type AnalyzeConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Metrics  []string `yaml:"metrics"`
	Workers  int      `yaml:"workers"`
}

// GuiraudConfig holds Advanced Guiraud defaults.
type GuiraudConfig struct {
	FreqList      string `yaml:"freq_list"`
	Spellcheck    bool   `yaml:"spellcheck"`
	Supplementary bool   `yaml:"supplementary"`
	UseLemmas     bool   `yaml:"use_lemmas"`
}

// VocdConfig holds voc-D sampling defaults.
type VocdConfig struct {
	Spellcheck bool  `yaml:"spellcheck"`
	MinLen     int   `yaml:"min_len"`
	MaxLen     int   `yaml:"max_len"`
	Subsamples int   `yaml:"subsamples"`
	Trials     int   `yaml:"trials"`
	Seed       int64 `yaml:"seed"` // 0 means seed from the clock
}

// MTLDConfig holds MTLD defaults.
type MTLDConfig struct {
	Spellcheck bool    `yaml:"spellcheck"`
	FactorSize float64 `yaml:"factor_size"`
}

// MaasConfig holds Maas index defaults.
type MaasConfig struct {
	Spellcheck bool `yaml:"spellcheck"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Resources: ResourcesConfig{
			WordlistDir: "wordlists",
			Stemming:    false,
		},
		Analyze: AnalyzeConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/.git/**"},
			Metrics:  []string{"ttr", "advanced_guiraud", "mtld", "maas"},
			Workers:  4,
		},
		Guiraud: GuiraudConfig{
			FreqList:      "NGSL",
			Spellcheck:    true,
			Supplementary: true,
		},
		Vocd: VocdConfig{
			MinLen:     35,
			MaxLen:     50,
			Subsamples: 100,
			Trials:     3,
		},
		MTLD: MTLDConfig{
			FactorSize: 0.72,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lexdiv.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "lexdiv.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".lexdiv", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResourceDBPath returns the path to the compiled resource database.
func ResourceDBPath(dir string) string {
	return filepath.Join(dir, ".lexdiv", "resources.db")
}

// EnsureDir ensures the .lexdiv directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".lexdiv"), 0755)
}
