// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ibm-security/iag-config/internal/pkg/helper"
	"github.com/mitchellh/go-glint"
)

type glintUI struct {
	d *glint.Document
}

// GlintUI returns a UI which renders through a live glint document. Close
// must be called to flush the final frame.
func GlintUI(ctx context.Context) UI {
	result := &glintUI{
		d: glint.New(),
	}

	go result.d.Render(ctx)

	return result
}

func (ui *glintUI) Close() error {
	return ui.d.Close()
}

func (ui *glintUI) Input(input *Input) (string, error) {
	return "", ErrNonInteractive
}

// Interactive implements UI
func (ui *glintUI) Interactive() bool {
	// Glint itself doesn't support input.
	return false
}

// Output implements UI
func (ui *glintUI) Output(msg string, raw ...interface{}) {
	msg, style, _ := Interpret(msg, raw...)

	var cs []glint.StyleOption
	switch style {
	case HeaderStyle:
		cs = append(cs, glint.Bold())
		msg = "\n» " + msg
	case ErrorStyle, ErrorBoldStyle:
		cs = append(cs, glint.Color("lightRed"))
		if style == ErrorBoldStyle {
			cs = append(cs, glint.Bold())
		}

		lines := strings.Split(msg, "\n")
		if len(lines) > 0 {
			ui.d.Append(glint.Finalize(
				glint.Style(
					glint.Text("! "+lines[0]),
					cs...,
				),
			))

			for _, line := range lines[1:] {
				ui.d.Append(glint.Finalize(
					glint.Text("  " + line),
				))
			}
		}

		return

	case WarningStyle, WarningBoldStyle:
		cs = append(cs, glint.Color("lightYellow"))
		if style == WarningBoldStyle {
			cs = append(cs, glint.Bold())
		}

	case SuccessStyle, SuccessBoldStyle:
		cs = append(cs, glint.Color("lightGreen"))
		if style == SuccessBoldStyle {
			cs = append(cs, glint.Bold())
		}

	case DebugStyle:
		cs = append(cs, glint.Color("lightBlue"))
	case TraceStyle:
		cs = append(cs, glint.Color("cyan"))

	case InfoStyle:
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			lines[i] = colorInfo.Sprintf("  %s", line)
		}

		msg = strings.Join(lines, "\n")

	case BoldStyle:
		cs = append(cs, glint.Bold())
	}

	ui.d.Append(glint.Finalize(
		glint.Style(
			glint.Text(msg),
			cs...,
		),
	))
}

// NamedValues implements UI
func (ui *glintUI) NamedValues(rows []NamedValue, opts ...Option) {
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

	// We want to trim the trailing newline
	text := strings.TrimSuffix(buf.String(), "\n")

	ui.d.Append(glint.Finalize(glint.Text(text)))
}

// OutputWriters implements UI
func (ui *glintUI) OutputWriters() (io.Writer, io.Writer, error) {
	return os.Stdout, os.Stderr, nil
}

// Table implements UI
func (ui *glintUI) Table(tbl *Table, opts ...Option) {
	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		ui.Error(err.Error())
		return
	}

	ui.d.Append(glint.Finalize(glint.Text(buf.String())))
}

// Debug implements UI
func (ui *glintUI) Debug(msg string) {
	ui.Output(msg, WithDebugStyle())
}

// Error implements UI
func (ui *glintUI) Error(msg string) {
	ui.Output(msg, WithErrorStyle())
}

// ErrorWithContext satisfies the ErrorWithContext function on the UI
// interface.
func (ui *glintUI) ErrorWithContext(err error, sub string, ctx ...string) {
	d := ui.d

	// Title the error output in red with the subject.
	d.Append(glint.Finalize(glint.Layout(
		glint.Style(
			glint.Text(fmt.Sprintf("! %s\n", helper.Title(sub))),
			glint.Color("red"),
		),
	).Row()))

	// Add the error string as well as the error type to the output.
	d.Append(glint.Finalize(glint.Layout(
		glint.Style(glint.Text("\tError:   "), glint.Bold()),
		glint.Text(err.Error()),
	).Row()))

	d.Append(glint.Finalize(glint.Layout(
		glint.Style(glint.Text("\tType:    "), glint.Bold()),
		glint.Text(fmt.Sprintf("%T", err)),
	).Row()))

	// We only want this section once per error output, so we cannot perform
	// this within the ctx loop.
	if len(ctx) > 0 {
		d.Append(glint.Finalize(glint.Layout(
			glint.Style(glint.Text("\tContext: "), glint.Bold()),
		).Row()))
	}

	for _, additionCTX := range ctx {
		d.Append(glint.Finalize(glint.Layout(
			glint.Text(fmt.Sprintf("\t         - %s", additionCTX)),
		).Row()))
	}

	d.Append(glint.Finalize(glint.Layout(glint.Text("")).Row()))
}

// Header implements UI
func (ui *glintUI) Header(msg string) {
	ui.Output(msg, WithHeaderStyle())
}

// Info implements UI
func (ui *glintUI) Info(msg string) {
	ui.Output(msg, WithInfoStyle())
}

// Success implements UI
func (ui *glintUI) Success(msg string) {
	ui.Output(msg, WithSuccessStyle())
}

// Trace implements UI
func (ui *glintUI) Trace(msg string) {
	ui.Output(msg, WithTraceStyle())
}

// Warning implements UI
func (ui *glintUI) Warning(msg string) {
	ui.Output(msg, WithWarningStyle())
}

// WarningBold implements UI
func (ui *glintUI) WarningBold(msg string) {
	ui.Output(msg, WithStyle(WarningBoldStyle))
}
