package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fsmiamoto/binderclip/internal/cli"
	"github.com/fsmiamoto/binderclip/internal/config"
	"github.com/fsmiamoto/binderclip/internal/journal"
)

var (
	logHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Padding(0, 1)
	logCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// runLog implements "binderclip log": list sessions, or show one.
func runLog(w io.Writer, opts *cli.Options, cfg config.Config) error {
	root := cfg.JournalDir
	if root == "" {
		return errors.New("no journal directory: pass --journal-dir or set journal_dir in the config")
	}
	if opts.LogList {
		return listSessions(w, root)
	}
	dir, err := journal.Resolve(root, opts.LogSessionID)
	if err != nil {
		return err
	}
	return showSession(w, dir)
}

func listSessions(w io.Writer, root string) error {
	sessions, err := journal.List(root)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintf(w, "no sessions in %s\n", root)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SESSION", "STARTED", "DURATION", "STATUS", "INPUT", "FONT", "REFLOWS", "EVENTS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return logHeaderStyle
			}
			return logCellStyle
		})
	for _, s := range sessions {
		t.Row(
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			formatDuration(s.StartedAt, s.EndedAt),
			s.Status,
			inputLabel(s),
			strconv.Itoa(s.FontSize),
			strconv.Itoa(s.Reflows),
			strconv.Itoa(s.EventsCount),
		)
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func showSession(w io.Writer, dir string) error {
	meta, err := journal.ReadMeta(dir)
	if err != nil {
		return err
	}
	events, err := journal.ReadEvents(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "session:  %s\n", meta.SessionID)
	fmt.Fprintf(w, "started:  %s\n", meta.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "duration: %s\n", formatDuration(meta.StartedAt, meta.EndedAt))
	fmt.Fprintf(w, "status:   %s\n", meta.Status)
	fmt.Fprintf(w, "input:    %s\n", inputLabel(meta))
	fmt.Fprintf(w, "font:     %d\n", meta.FontSize)
	fmt.Fprintf(w, "chars:    %d\n", meta.FinalChars)
	fmt.Fprintf(w, "events:   %d (%d reflows)\n\n", meta.EventsCount, meta.Reflows)

	for _, ev := range events {
		fmt.Fprintf(w, "%s  %-6s %s\n", ev.Timestamp.Local().Format("15:04:05.000"), ev.Kind, describeEvent(ev))
	}
	return nil
}

func describeEvent(ev journal.Event) string {
	switch ev.Kind {
	case journal.KindReflow:
		return fmt.Sprintf("width=%dpx font=%d budget=%d lines=%d soft=%d cursor=%d",
			ev.WidthPx, ev.FontSize, ev.Budget, ev.Lines, ev.SoftBreaks, ev.Cursor)
	case journal.KindResize:
		return fmt.Sprintf("width=%dpx", ev.WidthPx)
	case journal.KindFont:
		return fmt.Sprintf("font=%d", ev.FontSize)
	case journal.KindCopy, journal.KindPaste:
		return fmt.Sprintf("cursor=%d", ev.Cursor)
	default:
		return ev.Detail
	}
}

func inputLabel(m journal.Meta) string {
	if m.InputPath != "" {
		return m.InputPath
	}
	return m.InputSource
}

func formatDuration(start, end time.Time) string {
	if end.IsZero() || end.Before(start) {
		return "-"
	}
	return end.Sub(start).Round(time.Second).String()
}
