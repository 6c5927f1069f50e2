package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-cli/internal/model"
)

// Options tunes console behavior.
type Options struct {
	// Echo writes every line read back to the output. Used when input is
	// piped so that the transcript shows the answers.
	Echo bool
	// NoColor disables styling.
	NoColor bool
}

// Console is the line-oriented terminal surface. Every read blocks until a
// value passing its checks is supplied; rejected input is reported and the
// prompt repeated.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	echo   bool
	styles styles
	log    zerolog.Logger
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger, opts Options) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		echo:   opts.Echo,
		styles: newStyles(out, opts.NoColor),
		log:    log.With().Str("component", "console").Logger(),
	}
}

// ReadInt prompts until an integer satisfying valid is entered. A nil valid
// accepts any integer.
func (c *Console) ReadInt(ctx context.Context, prompt string, valid func(int) bool) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.reject(ErrNotANumber, line)
			continue
		}
		if valid != nil && !valid(n) {
			c.reject(ErrOutOfRange, line)
			continue
		}
		return n, nil
	}
}

// ReadString prompts until a non-empty line is entered.
func (c *Console) ReadString(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			c.reject(ErrEmptyInput, line)
			continue
		}
		return line, nil
	}
}

// ReadChoice prompts until one of options is selected, either by its 1-based
// number or by its name (case and punctuation insensitive). It returns the
// zero-based index of the selected option.
func (c *Console) ReadChoice(ctx context.Context, prompt string, options []string) (int, error) {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = fmt.Sprintf("%d) %s", i+1, o)
	}
	full := fmt.Sprintf("%s [%s]: ", prompt, strings.Join(labels, ", "))

	for {
		line, err := c.readLine(ctx, full)
		if err != nil {
			return 0, err
		}
		if idx, ok := matchChoice(line, options); ok {
			return idx, nil
		}
		c.reject(ErrUnknownChoice, line)
	}
}

// Confirm prompts until a yes or no answer is entered.
func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.reject(ErrNotYesNo, line)
	}
}

// Present renders a question and its answer options.
func (c *Console) Present(q model.Question) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.render(c.styles.heading, q.Body()))
	fmt.Fprintln(c.out, c.styles.render(c.styles.muted, fmt.Sprintf("(%d %s)", q.Mark(), plural(q.Mark(), "mark"))))
	for _, line := range q.Display() {
		fmt.Fprintf(c.out, "  %s\n", line)
	}
}

// Answer reads the candidate's answer id for q, accepting only ids the
// question itself validates.
func (c *Console) Answer(ctx context.Context, q model.Question) (int, error) {
	return c.ReadInt(ctx, "Your answer: ", q.ValidateAnswer)
}

// Report writes a line of feedback.
func (c *Console) Report(msg string) {
	fmt.Fprintln(c.out, msg)
}

// ShowResult writes the final result summary.
func (c *Console) ShowResult(r model.ExamResult) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.render(c.styles.result, "Exam finished"))
	fmt.Fprintln(c.out, r.String())
}

func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline still counts.
		if err == io.EOF && line != "" {
			err = nil
		} else {
			fmt.Fprintln(c.out)
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	line = strings.TrimSpace(line)
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return line, nil
}

func (c *Console) reject(code ErrCode, input string) {
	c.log.Debug().Str("code", string(code)).Str("input", input).Msg("Input rejected")
	fmt.Fprintln(c.out, c.styles.render(c.styles.warning, GetMessage(code)))
}

func matchChoice(input string, options []string) (int, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	key := normalizeChoice(input)
	if key == "" {
		return 0, false
	}
	for i, o := range options {
		if normalizeChoice(o) == key {
			return i, true
		}
	}
	return 0, false
}

// normalizeChoice lowercases s and drops everything but letters and digits,
// so "True/False", "true false" and "TRUE_FALSE" compare equal.
func normalizeChoice(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
