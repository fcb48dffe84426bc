// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/alias/internal/color"
)

var (
	// ErrMarshalAttribute is returned when the attributes of a record cannot be rendered.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// levelColours maps the highest level of each band to its colour. Anything above the last band is magenta.
var levelColours = []struct {
	upTo slog.Level
	code color.Code
}{
	{slog.LevelDebug, color.FgWhite},
	{slog.LevelInfo, color.FgCyan},
	{slog.LevelWarn - 1, color.FgBlue},
	{slog.LevelError - 1, color.FgYellow},
	{slog.LevelError + 1, color.FgRed},
}

// PrettyHandler writes one line per record: time, level and message, then the attributes as compact JSON.
// Attributes and groups are collected by an inner JSON handler writing to a buffer shared by every
// derived handler.
type PrettyHandler struct {
	inner  slog.Handler
	buf    *bytes.Buffer
	m      *sync.Mutex
	w      io.Writer
	json   *colorjson.Formatter
	colour bool
}

// NewPrettyHandler returns a PrettyHandler writing records at or above level to w.
// A nil w discards everything.
func NewPrettyHandler(w io.Writer, level slog.Leveler, colour bool) *PrettyHandler {
	if w == nil {
		w = io.Discard
	}

	buf := &bytes.Buffer{}
	f := colorjson.NewFormatter()
	f.Indent = 0
	f.DisabledColor = !colour

	return &PrettyHandler{
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropBuiltins,
		}),
		buf:    buf,
		m:      &sync.Mutex{},
		w:      w,
		json:   f,
		colour: colour,
	}
}

// dropBuiltins removes the keys the header line already shows.
func dropBuiltins(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey, slog.LevelKey, slog.MessageKey:
		return slog.Attr{}
	}

	return a
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.inner = h.inner.WithAttrs(attrs)

	return &c
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.inner = h.inner.WithGroup(name)

	return &c
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.attrs(ctx, r)
	if err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString(h.paint(r.Time.Format(TimeFormat), color.FgWhite))
	sb.WriteString(" ")
	sb.WriteString(h.paint(r.Level.String()+":", levelColour(r.Level)))
	sb.WriteString(" ")
	sb.WriteString(h.paint(r.Message, color.FgHiWhite))

	if len(attrs) > 0 {
		b, err := h.json.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		sb.WriteString(" ")
		sb.Write(b)
	}

	sb.WriteString("\n")

	if _, err := io.WriteString(h.w, sb.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// attrs renders the record through the inner handler and reads the attributes back.
func (h *PrettyHandler) attrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.buf.Reset()
		h.m.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, errors.Join(ErrMarshalAttribute, err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, errors.Join(ErrMarshalAttribute, err)
	}

	return attrs, nil
}

func (h *PrettyHandler) paint(s string, code color.Code) string {
	if !h.colour {
		return s
	}

	return color.Apply(s, code)
}

func levelColour(l slog.Level) color.Code {
	for _, lc := range levelColours {
		if l <= lc.upTo {
			return lc.code
		}
	}

	return color.FgHiMagenta
}
