package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter is the interactive collaborator: free-text input, single-choice
// selection, and yes/no confirmation. All three block on human input; the
// session runs them strictly serially.
type Prompter interface {
	Input(ctx context.Context, message string) (string, error)
	Select(ctx context.Context, message string, options []string) (int, error)
	Confirm(ctx context.Context, message string) (bool, error)
}

// DefaultPageSize caps how many choices a Select shows per page.
const DefaultPageSize = 20

// StdinIsTerminal reports whether prompts can actually reach a human.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Terminal prompts on a reader/writer pair, normally stdin/stdout.
type Terminal struct {
	in       *bufio.Reader
	out      io.Writer
	pageSize int
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a prompter over the given streams. pageSize <= 0 uses
// DefaultPageSize.
func NewTerminal(in io.Reader, out io.Writer, pageSize int) *Terminal {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Terminal{
		in:       bufio.NewReader(in),
		out:      out,
		pageSize: pageSize,
	}
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Input prints the message and returns one trimmed line. An empty line is a
// valid answer; callers decide what emptiness means.
func (t *Terminal) Input(ctx context.Context, message string) (string, error) {
	fmt.Fprintf(t.out, "%s ", message)
	return t.readLine(ctx)
}

// Select displays numbered options in pages and returns the chosen index.
// An empty answer advances to the next page (wrapping); anything else must be
// a number within range, otherwise the prompt repeats.
func (t *Terminal) Select(ctx context.Context, message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select requires at least one option")
	}
	fmt.Fprintln(t.out, message)

	page := 0
	pages := (len(options) + t.pageSize - 1) / t.pageSize
	for {
		start := page * t.pageSize
		end := start + t.pageSize
		if end > len(options) {
			end = len(options)
		}
		for i := start; i < end; i++ {
			fmt.Fprintf(t.out, "  %2d) %s\n", i+1, options[i])
		}
		if pages > 1 {
			fmt.Fprintf(t.out, "Choice (1-%d, enter for more): ", len(options))
		} else {
			fmt.Fprintf(t.out, "Choice (1-%d): ", len(options))
		}

		answer, err := t.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if answer == "" && pages > 1 {
			page = (page + 1) % pages
			continue
		}
		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintln(t.out, "Please enter a listed number.")
			continue
		}
		return choice - 1, nil
	}
}

// Confirm asks a yes/no question, defaulting to yes on an empty answer.
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	for {
		fmt.Fprintf(t.out, "%s [Y/n]: ", message)
		answer, err := t.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}
