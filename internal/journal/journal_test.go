package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	root := t.TempDir()
	s, err := Create(root, Meta{InputSource: "file", InputPath: "notes.txt", FontSize: 18})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ts := time.Now().UTC().Truncate(time.Second)
	if err := s.Record(Event{Timestamp: ts, Kind: KindReflow, WidthPx: 739, FontSize: 18, Budget: 82, Lines: 3, SoftBreaks: 2}); err != nil {
		t.Fatalf("record reflow: %v", err)
	}
	if err := s.Record(Event{Kind: KindFont, FontSize: 19}); err != nil {
		t.Fatalf("record font: %v", err)
	}
	s.Logf("font size %d", 19)
	fmt.Fprintln(s.LogWriter(), "from writer")

	if err := s.Close("closed", 19, 42); err != nil {
		t.Fatalf("close: %v", err)
	}

	for _, name := range []string{"events.jsonl", "session.log", "meta.json"} {
		if _, err := os.Stat(filepath.Join(s.Dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	meta, err := ReadMeta(s.Dir)
	if err != nil {
		t.Fatalf("read meta: %v", err)
	}
	if meta.SessionID != s.ID || meta.Status != "closed" || meta.InputPath != "notes.txt" {
		t.Fatalf("meta mismatch: %+v", meta)
	}
	if meta.Reflows != 1 || meta.EventsCount != 2 || meta.FontSize != 19 || meta.FinalChars != 42 {
		t.Fatalf("meta counters: %+v", meta)
	}

	events, err := ReadEvents(s.Dir)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if got := events[0]; got.Kind != KindReflow || got.Budget != 82 || !got.Timestamp.Equal(ts) {
		t.Fatalf("first event = %+v", got)
	}
	if events[1].Timestamp.IsZero() {
		t.Fatal("second event should have been stamped")
	}

	logData, err := os.ReadFile(filepath.Join(s.Dir, "session.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logData), "font size 19\n") || !strings.Contains(string(logData), "from writer\n") {
		t.Fatalf("session.log = %q", logData)
	}
}

func TestNilSessionIsNoop(t *testing.T) {
	var s *Session
	if err := s.Record(Event{Kind: KindReflow}); err != nil {
		t.Fatalf("record: %v", err)
	}
	s.Logf("ignored")
	fmt.Fprintln(s.LogWriter(), "ignored")
	if err := s.Close("closed", 18, 0); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestCreateRequiresRoot(t *testing.T) {
	if _, err := Create("", Meta{}); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"abc123", "abd456", "ff0000"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		prefix  string
		want    string
		wantErr string
	}{
		{prefix: "abc", want: "abc123"},
		{prefix: "ff", want: "ff0000"},
		{prefix: "ab", wantErr: "ambiguous"},
		{prefix: "zz", wantErr: "no session"},
	}
	for _, tc := range cases {
		t.Run(tc.prefix, func(t *testing.T) {
			dir, err := Resolve(root, tc.prefix)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %q", tc.prefix, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir != filepath.Join(root, tc.want) {
				t.Fatalf("Resolve(%q) = %q", tc.prefix, dir)
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"older", "newer"} {
		dir := filepath.Join(root, id)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		meta := Meta{SessionID: id, StartedAt: base.Add(time.Duration(i) * time.Hour), Status: "closed"}
		if err := WriteMeta(dir, meta); err != nil {
			t.Fatal(err)
		}
	}
	// A running session has no meta.json and is skipped.
	if err := os.Mkdir(filepath.Join(root, "running"), 0o755); err != nil {
		t.Fatal(err)
	}

	sessions, err := List(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 || sessions[0].SessionID != "newer" || sessions[1].SessionID != "older" {
		t.Fatalf("sessions = %+v", sessions)
	}
}

func TestListMissingRoot(t *testing.T) {
	sessions, err := List(filepath.Join(t.TempDir(), "missing"))
	if err != nil || sessions != nil {
		t.Fatalf("List(missing) = %v, %v", sessions, err)
	}
}

func TestRecordKeepsCursorZero(t *testing.T) {
	s, err := Create(t.TempDir(), Meta{InputSource: "empty"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(Event{Kind: KindCopy, Cursor: 0}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close("closed", 18, 0); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(s.Dir, "events.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"cursor":0`) {
		t.Fatalf("events.jsonl dropped the zero cursor: %s", raw)
	}
}
