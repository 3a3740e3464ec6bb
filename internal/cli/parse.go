package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// errNoInput is returned when a command gets neither arguments nor a file.
var errNoInput = errors.New("no input: pass values as arguments or use --file")

// splitFields splits on whitespace and commas.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// parseInts parses every field of every arg as a base-10 int.
func parseInts(args []string) ([]int, error) {
	var out []int
	for _, a := range args {
		for _, f := range splitFields(a) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", f, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// readLines returns the non-blank, non-comment ('#') lines of path, trimmed.
// A path of "-" reads from stdin.
func readLines(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

// inputArgs resolves positional args or --file lines into raw fields.
func inputArgs(args []string, file string, stdin io.Reader) ([]string, error) {
	if file != "" {
		return readLines(file, stdin)
	}
	if len(args) == 0 {
		return nil, errNoInput
	}

	return args, nil
}

// parseNumericGrid parses each line as one row of integers.
func parseNumericGrid(lines []string) ([][]int, error) {
	grid := make([][]int, 0, len(lines))
	for i, l := range lines {
		row, err := parseInts([]string{l})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		grid = append(grid, row)
	}

	return grid, nil
}
