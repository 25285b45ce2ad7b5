// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bgentry/speakeasy"
	"github.com/fatih/color"
	"github.com/ibm-security/iag-config/internal/pkg/helper"
	"github.com/kr/text"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
)

// errorWrapWidth is the width error details are wrapped at.
const errorWrapWidth = 80

// basicUI is a UI that writes plain, optionally colored, lines. It is
// usable as a zero value.
type basicUI struct {
	ctx context.Context

	// noninteractive disables Input regardless of the attached terminal.
	noninteractive bool

	// input overrides os.Stdin, it is always treated as interactive.
	input io.Reader
}

// NonInteractiveUI returns a plain UI which never prompts the user.
func NonInteractiveUI(ctx context.Context) UI {
	return &basicUI{ctx: ctx, noninteractive: true}
}

// Input implements UI
func (ui *basicUI) Input(input *Input) (string, error) {
	if !ui.Interactive() {
		return "", ErrNonInteractive
	}

	var buf bytes.Buffer

	// Write the prompt, add a space.
	ui.Output(input.Prompt, WithStyle(input.Style), WithWriter(&buf))
	fmt.Fprint(color.Output, strings.TrimRight(buf.String(), "\r\n"))
	fmt.Fprint(color.Output, " ")

	// Ask for input in a go-routine so that we can ignore it.
	errCh := make(chan error, 1)
	lineCh := make(chan string, 1)
	go func() {
		var line string
		var err error
		if input.Secret && ui.input == nil && isatty.IsTerminal(os.Stdin.Fd()) {
			line, err = speakeasy.Ask("")
		} else {
			line, err = ui.readLine()
		}
		if err != nil {
			errCh <- err
			return
		}
		lineCh <- strings.TrimRight(line, "\r\n")
	}()

	ctx := ui.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	select {
	case err := <-errCh:
		return "", err
	case line := <-lineCh:
		return line, nil
	case <-ctx.Done():
		// Print newline so that any further output starts properly
		fmt.Fprintln(color.Output)
		return "", ctx.Err()
	}
}

func (ui *basicUI) readLine() (string, error) {
	in := ui.input
	if in == nil {
		in = os.Stdin
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	return line, err
}

// Interactive implements UI
func (ui *basicUI) Interactive() bool {
	if ui.noninteractive {
		return false
	}
	if ui.input != nil {
		return true
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Output implements UI
func (ui *basicUI) Output(msg string, raw ...interface{}) {
	msg, style, w := Interpret(msg, raw...)

	switch style {
	case HeaderStyle:
		msg = colorHeader.Sprintf("\n==> %s", msg)
	case ErrorStyle:
		msg = colorError.Sprint(msg)
	case ErrorBoldStyle:
		msg = colorErrorBold.Sprint(msg)
	case WarningStyle:
		msg = colorWarning.Sprint(msg)
	case WarningBoldStyle:
		msg = colorWarningBold.Sprint(msg)
	case SuccessStyle:
		msg = colorSuccess.Sprint(msg)
	case SuccessBoldStyle:
		msg = colorSuccessBold.Sprint(msg)
	case DebugStyle:
		msg = colorDebug.Sprint(msg)
	case TraceStyle:
		msg = colorTrace.Sprint(msg)
	case BoldStyle:
		msg = colorBold.Sprint(msg)
	case InfoStyle:
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			lines[i] = colorInfo.Sprintf("    %s", line)
		}

		msg = strings.Join(lines, "\n")
	}

	fmt.Fprintln(w, msg)
}

// NamedValues implements UI
func (ui *basicUI) NamedValues(rows []NamedValue, opts ...Option) {
	cfg := &config{Writer: color.Output}
	for _, opt := range opts {
		opt(cfg)
	}

	var buf bytes.Buffer
	tr := tabwriter.NewWriter(&buf, 1, 8, 0, ' ', tabwriter.AlignRight)
	for _, row := range rows {
		switch v := row.Value.(type) {
		case int, uint, int8, uint8, int16, uint16, int32, uint32, int64, uint64:
			fmt.Fprintf(tr, "  %s: \t%d\n", row.Name, row.Value)
		case float32, float64:
			fmt.Fprintf(tr, "  %s: \t%f\n", row.Name, row.Value)
		case bool:
			fmt.Fprintf(tr, "  %s: \t%v\n", row.Name, row.Value)
		case string:
			if v == "" {
				continue
			}
			fmt.Fprintf(tr, "  %s: \t%s\n", row.Name, row.Value)
		default:
			fmt.Fprintf(tr, "  %s: \t%s\n", row.Name, row.Value)
		}
	}
	tr.Flush()

	fmt.Fprintln(cfg.Writer, buf.String())
}

// OutputWriters implements UI
func (ui *basicUI) OutputWriters() (io.Writer, io.Writer, error) {
	return os.Stdout, os.Stderr, nil
}

// Debug implements UI
func (ui *basicUI) Debug(msg string) {
	ui.Output(msg, WithDebugStyle())
}

// Error implements UI
func (ui *basicUI) Error(msg string) {
	ui.Output(msg, WithErrorStyle())
}

// ErrorWithContext satisfies the ErrorWithContext function on the UI
// interface.
func (ui *basicUI) ErrorWithContext(err error, sub string, ctx ...string) {
	ui.Output(FormatErrorWithContext(err, sub, ctx...), WithErrorStyle(), WithWriter(color.Error))
}

// FormatErrorWithContext renders an error, its type and any context lines
// as an indented block headed by sub.
func FormatErrorWithContext(err error, sub string, ctx ...string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "! %s\n", helper.Title(sub))

	detail := wordwrap.WrapString(err.Error(), errorWrapWidth)
	fmt.Fprintf(&b, "\tError:   %s\n", strings.TrimPrefix(text.Indent(detail, "\t         "), "\t         "))
	fmt.Fprintf(&b, "\tType:    %T\n", err)

	if len(ctx) > 0 {
		b.WriteString("\tContext:\n")
		for _, c := range ctx {
			fmt.Fprintf(&b, "\t         - %s\n", c)
		}
	}

	return b.String()
}

// Header implements UI
func (ui *basicUI) Header(msg string) {
	ui.Output(msg, WithHeaderStyle())
}

// Info implements UI
func (ui *basicUI) Info(msg string) {
	ui.Output(msg, WithInfoStyle())
}

// Success implements UI
func (ui *basicUI) Success(msg string) {
	ui.Output(msg, WithSuccessStyle())
}

// Trace implements UI
func (ui *basicUI) Trace(msg string) {
	ui.Output(msg, WithTraceStyle())
}

// Warning implements UI
func (ui *basicUI) Warning(msg string) {
	ui.Output(msg, WithWarningStyle())
}

// WarningBold implements UI
func (ui *basicUI) WarningBold(msg string) {
	ui.Output(msg, WithStyle(WarningBoldStyle))
}
