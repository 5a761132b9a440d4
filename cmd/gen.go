package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wordforge/puzzlegen/internal/cluegen"
	"github.com/wordforge/puzzlegen/internal/crossword"
	"github.com/wordforge/puzzlegen/internal/engine"
	"github.com/wordforge/puzzlegen/internal/wordlist"
)

var (
	kindName      string
	difficulty    string
	seed          int64
	numPuzzles    int
	wordsFile     string
	entriesFile   string
	theme         string
	outputFile    string
	generateClues bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles of a given kind and difficulty.

Examples:
  puzzlegen gen --kind sudoku --difficulty medium
  puzzlegen gen --kind killer --difficulty expert --seed 42
  puzzlegen gen --kind wordsearch --words animals.txt --theme Animals
  puzzlegen gen --kind crossword --entries entries.json --generate-clues
  puzzlegen gen --kind nonogram --difficulty easy -n 5 -o puzzles.json`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&kindName, "kind", "k", "sudoku", "Puzzle kind: sudoku|killer|wordsearch|crossword|nonogram")
	genCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "Difficulty: easy|medium|hard|expert")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVar(&wordsFile, "words", "", "Word list file for word searches (one word per line)")
	genCmd.Flags().StringVar(&entriesFile, "entries", "", "Crossword entries file (JSON array of {word, clue})")
	genCmd.Flags().StringVar(&theme, "theme", "", "Theme label passed through to the artifact")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	genCmd.Flags().BoolVar(&generateClues, "generate-clues", false, "Fill missing crossword clues via the Gemini API")

	_ = viper.BindPFlag("seed", genCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	kind, err := engine.ParseKind(kindName)
	if err != nil {
		return err
	}
	diff, err := engine.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	req := engine.Request{
		Kind:       kind,
		Difficulty: diff,
		Seed:       viper.GetInt64("seed"),
		Theme:      theme,
	}

	if wordsFile != "" {
		words, err := loadWords(wordsFile)
		if err != nil {
			return err
		}
		req.Words = words
	}
	if entriesFile != "" {
		entries, err := loadEntries(entriesFile)
		if err != nil {
			return err
		}
		if generateClues {
			entries, err = fillMissingClues(cmd.Context(), entries)
			if err != nil {
				return err
			}
		}
		req.Entries = entries
	}

	eng := engine.New(logrus.StandardLogger())
	artifacts := make([]*engine.Artifact, 0, numPuzzles)
	for i := 0; i < numPuzzles; i++ {
		r := req
		if r.Seed != 0 {
			r.Seed += int64(i) // distinct but reproducible per puzzle
		}
		art, err := eng.Generate(r)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		artifacts = append(artifacts, art)
	}

	out, err := json.MarshalIndent(artifacts, "", "  ")
	if err != nil {
		return err
	}
	if outputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(outputFile, out, 0o644)
}

// loadWords reads, normalizes, and filters a one-word-per-line file.
func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			raw = append(raw, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return wordlist.Filter(raw, wordlist.DefaultOptions())
}

func loadEntries(path string) ([]crossword.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []crossword.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse entries file: %w", err)
	}
	return entries, nil
}

// fillMissingClues asks the clue generator for clue text on entries that
// lack one. Entries with clue text already set are left alone.
func fillMissingClues(ctx context.Context, entries []crossword.Entry) ([]crossword.Entry, error) {
	var missing []string
	for _, e := range entries {
		if strings.TrimSpace(e.Clue) == "" {
			missing = append(missing, e.Word)
		}
	}
	if len(missing) == 0 {
		return entries, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	client, err := cluegen.New(ctx)
	if err != nil {
		return nil, err
	}
	clues, err := client.GenerateClues(ctx, missing)
	if err != nil {
		return nil, err
	}

	next := 0
	for i := range entries {
		if strings.TrimSpace(entries[i].Clue) == "" {
			entries[i].Clue = clues[next]
			next++
		}
	}
	return entries, nil
}
