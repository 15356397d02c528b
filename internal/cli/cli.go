// Package cli handles flag parsing for binderclip.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrHelp is returned when -h/--help was given. The caller should exit 0.
var ErrHelp = errors.New("help requested")

// Options holds the parsed command line. Zero-valued numeric fields mean
// "not given"; the config file or built-in defaults fill them in.
type Options struct {
	InputFile  string // "" for an empty document, "-" for stdin
	FontSize   int
	WidthPx    int   // plain mode wrap width; 0 derives it from the terminal
	OnTop      *bool // nil when --on-top was not given
	ConfigPath string
	NoTUI      bool
	Raw        bool // plain mode keeps soft break markers in the output
	JournalDir string

	// Subcommand
	LogSessionID string // non-empty means "log <session-id>"
	LogList      bool   // true means "log" without a session id
}

// ConfigExplicit reports whether --config was given.
func (o *Options) ConfigExplicit() bool { return o.ConfigPath != "" }

const usage = `Usage: binderclip [flags] [FILE]
       binderclip log [--journal-dir <path>] [session-id]

A text pad that rewraps its content to the window width as you type.
FILE is loaded as the initial document; "-" reads stdin.

Flags:
  -f, --font-size <n>     Initial font size in pixels (default: 18)
  -w, --width-px <n>      Wrap width in pixels for plain mode
  --on-top <bool>         Keep the window above others (default: true)
  --config <file>         Config file (default: $XDG_CONFIG_HOME/binderclip/config.toml)
  --no-tui                Reflow once and print to stdout
  --raw                   Plain mode: keep soft break markers
  --journal-dir <path>    Record a session journal under this directory
  -v, --version           Print version and exit
  -h, --help              Show this help

Subcommands:
  log [session-id]        List journaled sessions or show one
`

// Parse parses command-line arguments. Usage is written to stderr on
// --help and on invalid flags.
func Parse(args []string) (*Options, error) {
	if len(args) > 0 && args[0] == "log" {
		return parseLog(args[1:])
	}

	fs := flag.NewFlagSet("binderclip", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we handle output ourselves

	var (
		fontFlag    string
		fontShort   string
		widthFlag   string
		widthShort  string
		onTopFlag   string
		configPath  string
		noTUI       bool
		raw         bool
		journalDir  string
		version     bool
		versionShrt bool
		help        bool
		helpShort   bool
	)

	fs.StringVar(&fontFlag, "font-size", "", "")
	fs.StringVar(&fontShort, "f", "", "")
	fs.StringVar(&widthFlag, "width-px", "", "")
	fs.StringVar(&widthShort, "w", "", "")
	fs.StringVar(&onTopFlag, "on-top", "", "")
	fs.StringVar(&configPath, "config", "", "")
	fs.BoolVar(&noTUI, "no-tui", false, "")
	fs.BoolVar(&raw, "raw", false, "")
	fs.StringVar(&journalDir, "journal-dir", "", "")
	fs.BoolVar(&version, "version", false, "")
	fs.BoolVar(&versionShrt, "v", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&helpShort, "h", false, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, usage)
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	if help || helpShort {
		fmt.Fprint(os.Stderr, usage)
		return nil, ErrHelp
	}
	if version || versionShrt {
		fmt.Fprintf(os.Stdout, "binderclip %s\n", Version)
		return nil, ErrHelp
	}

	opts := &Options{
		ConfigPath: configPath,
		NoTUI:      noTUI,
		Raw:        raw,
		JournalDir: journalDir,
	}

	var err error
	if opts.FontSize, err = positiveInt("--font-size", pick(fontFlag, fontShort)); err != nil {
		return nil, err
	}
	if opts.WidthPx, err = positiveInt("--width-px", pick(widthFlag, widthShort)); err != nil {
		return nil, err
	}
	if onTopFlag != "" {
		v, err := strconv.ParseBool(onTopFlag)
		if err != nil {
			return nil, fmt.Errorf("--on-top must be true or false, got %q", onTopFlag)
		}
		opts.OnTop = &v
	}
	if raw && !noTUI {
		return nil, errors.New("--raw only applies with --no-tui")
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", len(positional))
	}
	if len(positional) == 1 {
		opts.InputFile = positional[0]
	}

	return opts, nil
}

func parseLog(args []string) (*Options, error) {
	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var journalDir string
	fs.StringVar(&journalDir, "journal-dir", "", "")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid log flags: %w", err)
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return nil, fmt.Errorf("expected at most one session id, got %d", len(remaining))
	}
	if len(remaining) == 0 {
		return &Options{LogList: true, JournalDir: journalDir}, nil
	}
	return &Options{LogSessionID: remaining[0], JournalDir: journalDir}, nil
}

// pick returns the short flag value when set, else the long one.
func pick(long, short string) string {
	if short != "" {
		return short
	}
	return long
}

func positiveInt(name, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}
