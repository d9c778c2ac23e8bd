package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"finreport/internal/core"
)

// DateTimeLayout is the reference-instant format the prompts accept.
const DateTimeLayout = "2006-01-02 15:04:05"

// skipToken lets the user skip a page.
const skipToken = "X"

// Prompter runs the interactive question loop over arbitrary streams so the
// loop itself is testable.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// IsValidDateTime reports whether s parses as a reference instant.
func IsValidDateTime(s string) bool {
	_, err := time.Parse(DateTimeLayout, s)
	return err == nil
}

// ReadDate asks until it gets a valid datetime or the skip token. The
// boolean is false when the user skipped.
func (p *Prompter) ReadDate(prompt, retry string) (time.Time, bool) {
	fmt.Fprintln(p.out, prompt)
	for p.in.Scan() {
		input := strings.TrimSpace(p.in.Text())
		if input == skipToken {
			return time.Time{}, false
		}
		if t, err := time.Parse(DateTimeLayout, input); err == nil {
			return t, true
		}
		fmt.Fprintln(p.out, retry)
	}
	return time.Time{}, false
}

// ReadPeriod asks until it gets one of the period tokens or the skip token.
func (p *Prompter) ReadPeriod(prompt string) (core.Period, bool) {
	fmt.Fprintln(p.out, prompt)
	for p.in.Scan() {
		input := strings.TrimSpace(p.in.Text())
		if input == skipToken {
			return "", false
		}
		if period, err := core.ParsePeriod(input); err == nil {
			return period, true
		}
		fmt.Fprintln(p.out, prompt)
	}
	return "", false
}
