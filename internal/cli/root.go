package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lexdiv/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "lexdiv",
	Short: "Lexical diversity metrics for tokenized texts",
	Long: `lexdiv computes vocabulary-richness indices for learner texts:
Advanced Guiraud, Type-Token Ratio, voc-D, MTLD and the Maas index.

Example usage:
  lexdiv analyze corpus/          # Score every text in a corpus
  lexdiv score essay.txt          # Score a single text
  lexdiv compile --lemmas l.tsv   # Build the resource database`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := logrus.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		log.SetLevel(level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lexdiv.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
