// Package input resolves the document binderclip starts with.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/fsmiamoto/binderclip/internal/reflow"
)

type Source string

const (
	SourceFile  Source = "file"
	SourceStdin Source = "stdin"
	SourceEmpty Source = "empty"
)

// StdinPath selects standard input as the document source.
const StdinPath = "-"

type ResolveInput struct {
	Path  string    // "" for an empty document
	Stdin io.Reader // used when Path is StdinPath; defaults to os.Stdin
}

type Resolution struct {
	Source Source
	Path   string
	Text   string // normalized, without soft break markers
}

// Resolve loads the initial document. Line endings are normalized and any
// soft break marker already present in the input is dropped, since the
// editor would otherwise treat it as one of its own line breaks.
func Resolve(in ResolveInput) (Resolution, error) {
	switch in.Path {
	case "":
		return Resolution{Source: SourceEmpty}, nil
	case StdinPath:
		r := in.Stdin
		if r == nil {
			r = os.Stdin
		}
		content, err := io.ReadAll(r)
		if err != nil {
			return Resolution{}, fmt.Errorf("read stdin: %w", err)
		}
		return Resolution{Source: SourceStdin, Path: StdinPath, Text: Clean(string(content))}, nil
	default:
		content, err := os.ReadFile(in.Path)
		if err != nil {
			return Resolution{}, fmt.Errorf("read input file %q: %w", in.Path, err)
		}
		return Resolution{Source: SourceFile, Path: in.Path, Text: Clean(string(content))}, nil
	}
}

// Clean prepares externally sourced text (files, stdin, clipboard) for the
// document buffer.
func Clean(s string) string {
	return reflow.Normalize(reflow.Collapse(s))
}
