package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// Ensure plainPrompter implements the interface.
var _ driven.Prompter = (*plainPrompter)(nil)

// plainPrompter is the non-interactive fallback: it prints the numbered
// choices and reads a selection from stdin. Used when stdout is not a
// terminal, where the Bubbletea picker cannot run.
type plainPrompter struct {
	in  io.Reader
	out io.Writer
}

func newPlainPrompter(in io.Reader, out io.Writer) *plainPrompter {
	return &plainPrompter{in: in, out: out}
}

// Pick prints the choices and reads a 1-based selection. An empty line
// or end of input cancels; anything else that is not a listed number is
// invalid input.
func (p *plainPrompter) Pick(ctx context.Context, choices []domain.Choice) (domain.Choice, error) {
	if err := ctx.Err(); err != nil {
		return domain.Choice{}, err
	}

	for _, choice := range choices {
		if choice.URL != "" {
			fmt.Fprintf(p.out, "%s  %s\n", choice.Label, choice.URL)
		} else {
			fmt.Fprintln(p.out, choice.Label)
		}
	}
	fmt.Fprintf(p.out, "Select [1-%d]: ", len(choices))

	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return domain.Choice{}, err
		}
		return domain.Choice{}, domain.ErrCancelled
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return domain.Choice{}, domain.ErrCancelled
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(choices) {
		return domain.Choice{}, fmt.Errorf("%w: %q", domain.ErrInvalidInput, line)
	}

	return choices[n-1], nil
}
