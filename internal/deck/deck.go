// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck reads and writes slide decks as whole sequences of lines.
// Each line keeps its original terminator so a document written back out is
// byte-identical to the lines it was built from.
package deck

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the file at path and splits it into lines. Every line but
// possibly the last ends with "\n" (or "\r\n"); an empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text after each "\n", keeping the terminators.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines overwrites the file at path with the concatenated lines.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(Join(lines)), 0o644); err != nil {
		return fmt.Errorf("writing deck %s: %w", path, err)
	}
	return nil
}

// Join concatenates lines as they would appear on disk.
func Join(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
	}
	return b.String()
}

// TrimEOL strips a trailing "\n" or "\r\n" from line.
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
