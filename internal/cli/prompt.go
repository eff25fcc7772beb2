package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt writes "label: " to w and reads a single line of input from r.
// The returned value has surrounding whitespace trimmed.
//
// Callers issuing several prompts must reuse the same *bufio.Reader:
// the reader's buffer holds any input beyond the first line, so
// wrapping the underlying stream again would lose it.
func Prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "%s: ", label)

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if line == "" {
		return "", fmt.Errorf("no input provided")
	}
	return strings.TrimSpace(line), nil
}
