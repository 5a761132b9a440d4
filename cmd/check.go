package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordforge/puzzlegen/internal/nonogram"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check <pattern-file>",
		Short: "Check a picture pattern for logical solvability",
		Long: `Check whether a hand-drawn binary picture is solvable from its
run-length clues by line deduction alone, with no guessing.

The pattern file is plain text, one row per line, using '#' or '1' for
filled cells and '.' or '0' for empty ones:

  .###.
  #####
  #####
  #####
  .###.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	pattern, err := loadPattern(args[0])
	if err != nil {
		return err
	}

	report, err := nonogram.Accept(pattern)
	if err != nil {
		return err
	}
	if report.Solvable {
		fmt.Println("solvable: every cell is determined by line logic")
		return nil
	}
	fmt.Printf("not solvable: %d cells remain undetermined\n", report.Unsolved)
	return nil
}

func loadPattern(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pattern [][]bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', '1', '*':
				row = append(row, true)
			case '.', '0', '_':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("invalid pattern character %q", ch)
			}
		}
		pattern = append(pattern, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pattern, nil
}
