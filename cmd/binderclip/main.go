// Command binderclip is a text pad that rewraps its content to the window
// width while you type.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/fsmiamoto/binderclip/internal/cli"
	"github.com/fsmiamoto/binderclip/internal/config"
	"github.com/fsmiamoto/binderclip/internal/input"
	"github.com/fsmiamoto/binderclip/internal/journal"
	"github.com/fsmiamoto/binderclip/internal/reflow"
	"github.com/fsmiamoto/binderclip/internal/tui"
)

// defaultPlainColumns is the wrap width in columns when plain mode has
// neither --width-px nor a terminal to measure.
const defaultPlainColumns = 80

func main() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			os.Exit(0)
		}
		fail(err)
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		fail(err)
	}

	if opts.LogList || opts.LogSessionID != "" {
		err = runLog(os.Stdout, opts, cfg)
	} else {
		err = runEditor(opts, cfg)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "binderclip: %v\n", err)
	os.Exit(1)
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings(opts *cli.Options) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path, opts.ConfigExplicit())
	if err != nil {
		return config.Config{}, err
	}

	if opts.FontSize != 0 {
		if !cfg.FontRange().Contains(opts.FontSize) {
			return config.Config{}, fmt.Errorf("--font-size %d outside [%d, %d]", opts.FontSize, cfg.MinFontSize, cfg.MaxFontSize)
		}
		cfg.FontSize = opts.FontSize
	}
	if opts.OnTop != nil {
		cfg.AlwaysOnTop = *opts.OnTop
	}
	if opts.JournalDir != "" {
		cfg.JournalDir = opts.JournalDir
	}
	return cfg, nil
}

func runEditor(opts *cli.Options, cfg config.Config) error {
	doc, err := input.Resolve(input.ResolveInput{Path: opts.InputFile, Stdin: os.Stdin})
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if opts.NoTUI || !interactive || doc.Source == input.SourceStdin {
		return runPlainMode(opts, cfg, doc)
	}
	return runTUI(cfg, doc)
}

func openJournal(cfg config.Config, doc input.Resolution) (*journal.Session, error) {
	if cfg.JournalDir == "" {
		return nil, nil
	}
	s, err := journal.Create(cfg.JournalDir, journal.Meta{
		InputSource: string(doc.Source),
		InputPath:   doc.Path,
		FontSize:    cfg.FontSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return s, nil
}

func runTUI(cfg config.Config, doc input.Resolution) error {
	session, err := openJournal(cfg, doc)
	if err != nil {
		return err
	}
	session.Logf("session started (input=%s, font_size=%d, always_on_top=%v)", doc.Source, cfg.FontSize, cfg.AlwaysOnTop)

	model := tui.NewModel(tui.Options{
		Text:        doc.Text,
		Props:       tui.WindowProps{AlwaysOnTop: cfg.AlwaysOnTop, FontSize: cfg.FontSize},
		FontRange:   cfg.FontRange(),
		CellWidthPx: cfg.CellWidthPx,
		Journal:     session,
		Log:         session.LogWriter(),
		Version:     cli.Version,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	if err := model.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "binderclip: warning: close journal: %v\n", err)
	}
	if runErr != nil {
		return fmt.Errorf("run tui: %w", runErr)
	}
	if session != nil {
		fmt.Fprintf(os.Stderr, "session %s recorded in %s\n", session.ID, session.Dir)
	}
	return nil
}

func runPlainMode(opts *cli.Options, cfg config.Config, doc input.Resolution) error {
	widthPx := opts.WidthPx
	if widthPx == 0 {
		cols := defaultPlainColumns
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			cols = w
		}
		widthPx = reflow.WidthPx(float64(cols) * cfg.CellWidthPx)
	}

	session, err := openJournal(cfg, doc)
	if err != nil {
		return err
	}
	logf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
		session.Logf(format, args...)
	}

	res, err := writePlain(os.Stdout, doc.Text, reflow.WrapContext{WidthPx: widthPx, FontSizePx: cfg.FontSize}, opts.Raw)
	if err != nil {
		logf("warning: %v", err)
	}
	if recErr := session.Record(journal.Event{
		Kind:       journal.KindReflow,
		WidthPx:    widthPx,
		FontSize:   cfg.FontSize,
		Budget:     res.Budget,
		Lines:      len(res.Layout),
		SoftBreaks: len(res.Layout) - 1 - res.Layout.HardBreaks(),
	}); recErr != nil {
		logf("warning: journal: %v", recErr)
	}

	status := "closed"
	if err != nil {
		status = "failed"
	}
	if closeErr := session.Close(status, cfg.FontSize, len([]rune(doc.Text))); closeErr != nil {
		logf("warning: close journal: %v", closeErr)
	}
	return err
}

// writePlain reflows text once and prints it. Soft breaks become newlines
// unless raw is set.
func writePlain(w io.Writer, text string, ctx reflow.WrapContext, raw bool) (reflow.Result, error) {
	res := reflow.Plan(reflow.Document{Text: text}, ctx)
	out := res.Doc.Text
	if !raw {
		out = strings.ReplaceAll(out, string(reflow.SoftBreak), "\n")
	}
	if out != "" && out[len(out)-1] != '\n' {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}
