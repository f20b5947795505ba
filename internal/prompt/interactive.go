package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxAttempts is how many times an invalid answer is re-asked before the
// question fails.
const MaxAttempts = 3

// Interactive asks questions on w and reads answers line by line from r.
type Interactive struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewInteractive returns a Provider bound to the given reader and writer.
func NewInteractive(r io.Reader, w io.Writer) *Interactive {
	return &Interactive{reader: bufio.NewReader(r), w: w}
}

// Input implements Provider.
func (p *Interactive) Input(ctx context.Context, q Input) (string, error) {
	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if q.Default != "" {
			fmt.Fprintf(p.w, "? %s (%s): ", q.Message, q.Default)
		} else {
			fmt.Fprintf(p.w, "? %s: ", q.Message)
		}
		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if line == "" {
			line = q.Default
		}
		if q.Validate == nil {
			return line, nil
		}
		if lastErr = q.Validate(line); lastErr == nil {
			return line, nil
		}
		fmt.Fprintf(p.w, ">> %v\n", lastErr)
	}
	return "", fmt.Errorf("%s: %w", q.Name, lastErr)
}

// Confirm implements Provider.
func (p *Interactive) Confirm(ctx context.Context, q Confirm) (bool, error) {
	hint := "y/N"
	if q.Default {
		hint = "Y/n"
	}
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		fmt.Fprintf(p.w, "? %s (%s): ", q.Message, hint)
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return q.Default, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.w, ">> please answer y or n\n")
	}
	return false, fmt.Errorf("%s: no valid answer after %d attempts", q.Name, MaxAttempts)
}

// Select implements Provider.
func (p *Interactive) Select(ctx context.Context, q Select) (string, error) {
	options := Selectable(q.Choices)
	if len(options) == 0 {
		return "", fmt.Errorf("%s: %w", q.Name, ErrNoChoices)
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		p.printList(q.Message, q.Choices, false)
		fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(options))

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if line == "" && q.Default != "" {
			return q.Default, nil
		}
		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(options) {
			return options[num-1].Value, nil
		}
		fmt.Fprintf(p.w, ">> invalid selection %q: choose 1-%d\n", line, len(options))
	}
	return "", fmt.Errorf("%s: no valid selection after %d attempts", q.Name, MaxAttempts)
}

// Checkbox implements Provider. Answers are comma-separated numbers; an
// empty line keeps the pre-checked entries.
func (p *Interactive) Checkbox(ctx context.Context, q Checkbox) ([]string, error) {
	options := Selectable(q.Choices)

	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		p.printList(q.Message, q.Choices, true)
		fmt.Fprintf(p.w, "Enter numbers separated by commas (empty keeps [x]): ")

		line, err := p.readLine(ctx)
		if err != nil {
			return nil, err
		}

		var picked []string
		if line == "" {
			picked = CheckedValues(q.Choices)
		} else {
			picked, lastErr = parseIndexes(line, options)
			if lastErr != nil {
				fmt.Fprintf(p.w, ">> %v\n", lastErr)
				continue
			}
		}

		if q.Validate != nil {
			if lastErr = q.Validate(picked); lastErr != nil {
				fmt.Fprintf(p.w, ">> %v\n", lastErr)
				continue
			}
		}
		return picked, nil
	}
	return nil, fmt.Errorf("%s: %w", q.Name, lastErr)
}

func (p *Interactive) printList(message string, choices []Choice, checkboxes bool) {
	fmt.Fprintf(p.w, "\n? %s\n", message)
	n := 0
	for _, c := range choices {
		if c.Separator {
			fmt.Fprintf(p.w, "  %s\n", c.Label)
			continue
		}
		n++
		switch {
		case !checkboxes:
			fmt.Fprintf(p.w, "  %d) %s\n", n, c.Label)
		case c.Checked:
			fmt.Fprintf(p.w, "  %d) [x] %s\n", n, c.Label)
		default:
			fmt.Fprintf(p.w, "  %d) [ ] %s\n", n, c.Label)
		}
	}
}

func (p *Interactive) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseIndexes(line string, options []Choice) ([]string, error) {
	seen := make(map[int]bool)
	var picked []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > len(options) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", part, len(options))
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		picked = append(picked, options[num-1].Value)
	}
	return picked, nil
}
