package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lexdiv/config"
	"lexdiv/internal/adapter/lexicon"
	"lexdiv/internal/adapter/store"
)

var (
	compileLemmas string
	compileLists  string
	compileOut    string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Build the resource database",
	Long: `Compile the token-to-lemma table and the builtin word lists into a
single database so later runs load one file instead of a directory of
text resources.

Examples:
  lexdiv compile --lemmas lemmatizer.tsv --wordlists wordlists/
  lexdiv compile --lemmas lemmatizer.tsv -o resources.db`,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVar(&compileLemmas, "lemmas", "", "token<TAB>lemma table to import (required)")
	compileCmd.Flags().StringVar(&compileLists, "wordlists", "", "wordlist directory (default from config)")
	compileCmd.Flags().StringVarP(&compileOut, "out", "o", "", "output database path")
	compileCmd.MarkFlagRequired("lemmas")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	listDir := compileLists
	if listDir == "" {
		listDir = cfg.Resources.WordlistDir
	}

	out := compileOut
	if out == "" {
		out = cfg.Resources.LemmaDB
	}
	if out == "" {
		if err := config.EnsureDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create .lexdiv directory: %w", err)
		}
		out = config.ResourceDBPath(GetRootDir())
	}

	st, err := store.Open(out)
	if err != nil {
		return fmt.Errorf("failed to open resource db: %w", err)
	}
	defer st.Close()

	f, err := os.Open(compileLemmas)
	if err != nil {
		return fmt.Errorf("failed to open lemma table: %w", err)
	}
	defer f.Close()

	lemmaCount, err := st.ImportLemmas(f)
	if err != nil {
		return fmt.Errorf("lemma import failed: %w", err)
	}
	log.Infof("imported %d lemmas", lemmaCount)

	provider := lexicon.NewFileProvider(listDir)
	listCount := 0
	for _, name := range lexicon.BuiltinNames() {
		set, err := provider.Load(name)
		if err != nil {
			log.Warnf("skipping wordlist %s: %v", name, err)
			continue
		}
		words := make([]string, 0, len(set))
		for w := range set {
			words = append(words, w)
		}
		if err := st.PutWordlist(name, words); err != nil {
			return fmt.Errorf("failed to store wordlist %s: %w", name, err)
		}
		listCount++
		log.Infof("stored wordlist %s (%d words)", name, len(set))
	}

	if err := st.PutStats(store.Stats{
		LemmaCount:    lemmaCount,
		WordlistCount: listCount,
		CompiledAt:    time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to store stats: %w", err)
	}

	fmt.Printf("Compiled %d lemmas and %d wordlists into %s\n", lemmaCount, listCount, out)
	return nil
}
