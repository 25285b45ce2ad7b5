// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package testui provides terminal.UI implementations which write to
// buffers so command output can be asserted on.
package testui

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/ibm-security/iag-config/internal/pkg/helper"
	"github.com/ibm-security/iag-config/terminal"
)

type testUI struct {
	mu        sync.Mutex
	OutWriter io.Writer
	ErrWriter io.Writer

	// input answers prompts when set; the UI is non-interactive otherwise.
	input *bufio.Reader
}

// NonInteractiveTestUI returns a UI which refuses input and writes plain,
// prefixed lines to stdout and errors to stderr.
func NonInteractiveTestUI(ctx context.Context, stdout io.Writer, stderr io.Writer) terminal.UI {
	return &testUI{
		OutWriter: stdout,
		ErrWriter: stderr,
	}
}

// InteractiveTestUI is like NonInteractiveTestUI but answers prompts with
// lines read from input.
func InteractiveTestUI(ctx context.Context, stdout, stderr io.Writer, input io.Reader) terminal.UI {
	return &testUI{
		OutWriter: stdout,
		ErrWriter: stderr,
		input:     bufio.NewReader(input),
	}
}

func (ui *testUI) Input(input *terminal.Input) (string, error) {
	if ui.input == nil {
		return "", terminal.ErrNonInteractive
	}
	ui.Output(input.Prompt)

	line, err := ui.input.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Interactive implements UI
func (ui *testUI) Interactive() bool {
	return ui.input != nil
}

// Output implements UI
func (ui *testUI) Output(msg string, raw ...interface{}) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	msg, style, _ := terminal.Interpret(msg, raw...)
	w := ui.OutWriter
	switch style {
	case terminal.DebugStyle:
		msg = "debug: " + msg
	case terminal.HeaderStyle:
		msg = "\n» " + msg
	case terminal.ErrorStyle, terminal.ErrorBoldStyle:
		w = ui.ErrWriter
		lines := strings.Split(msg, "\n")
		if len(lines) > 0 {
			fmt.Fprintln(w, "! "+lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintln(w, "  "+line)
			}
		}

		return
	case terminal.WarningStyle, terminal.WarningBoldStyle:
		msg = "warning: " + msg
	case terminal.TraceStyle:
		msg = "trace: " + msg
	case terminal.InfoStyle:
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			lines[i] = "  " + line
		}

		msg = strings.Join(lines, "\n")
	}

	fmt.Fprintln(w, msg)
}

// NamedValues implements UI
func (ui *testUI) NamedValues(rows []terminal.NamedValue, opts ...terminal.Option) {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	var buf bytes.Buffer
	tr := tabwriter.NewWriter(&buf, 1, 8, 0, ' ', tabwriter.AlignRight)
	for _, row := range rows {
		switch v := row.Value.(type) {
		case string:
			if v == "" {
				continue
			}
			fmt.Fprintf(tr, "  %s: \t%s\n", row.Name, row.Value)
		default:
			fmt.Fprintf(tr, "  %s: \t%v\n", row.Name, row.Value)
		}
	}
	tr.Flush()

	fmt.Fprintln(ui.OutWriter, buf.String())
}

// OutputWriters implements UI
func (ui *testUI) OutputWriters() (io.Writer, io.Writer, error) {
	return ui.OutWriter, ui.ErrWriter, nil
}

// Table implements UI
func (ui *testUI) Table(tbl *terminal.Table, opts ...terminal.Option) {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	if err := tbl.Render(ui.OutWriter); err != nil {
		fmt.Fprintln(ui.ErrWriter, "! "+err.Error())
	}
}

// Debug implements UI
func (ui *testUI) Debug(msg string) {
	ui.Output(msg, terminal.WithDebugStyle())
}

// Error implements UI
func (ui *testUI) Error(msg string) {
	ui.Output(msg, terminal.WithErrorStyle())
}

// ErrorWithContext satisfies the ErrorWithContext function on the UI
// interface.
func (ui *testUI) ErrorWithContext(err error, sub string, ctx ...string) {
	ui.Error(helper.Title(sub))
	ui.Error("  Error: " + err.Error())
	ui.Error("  Context:")
	max := 0
	for _, entry := range ctx {
		if loc := strings.Index(entry, ":") + 1; loc > max {
			max = loc
		}
	}
	for _, entry := range ctx {
		padding := max - strings.Index(entry, ":") + 1
		ui.Error("  " + strings.Repeat(" ", padding) + entry)
	}
}

// Header implements UI
func (ui *testUI) Header(msg string) {
	ui.Output(msg, terminal.WithHeaderStyle())
}

// Info implements UI
func (ui *testUI) Info(msg string) {
	ui.Output(msg, terminal.WithInfoStyle())
}

// Success implements UI
func (ui *testUI) Success(msg string) {
	ui.Output(msg, terminal.WithSuccessStyle())
}

// Trace implements UI
func (ui *testUI) Trace(msg string) {
	ui.Output(msg, terminal.WithTraceStyle())
}

// Warning implements UI
func (ui *testUI) Warning(msg string) {
	ui.Output(msg, terminal.WithWarningStyle())
}

// WarningBold implements UI
func (ui *testUI) WarningBold(msg string) {
	ui.Output(msg, terminal.WithStyle(terminal.WarningBoldStyle))
}
