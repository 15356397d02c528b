// Package journal records editing sessions to disk: one directory per
// session holding events.jsonl, session.log and meta.json.
package journal

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event kinds.
const (
	KindReflow = "reflow"
	KindFont   = "font"
	KindResize = "resize"
	KindWindow = "window"
	KindCopy   = "copy"
	KindPaste  = "paste"
)

// Event is one line of events.jsonl.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Kind       string    `json:"kind"`
	WidthPx    int       `json:"width_px,omitempty"`
	FontSize   int       `json:"font_size,omitempty"`
	Budget     int       `json:"budget,omitempty"`
	Lines      int       `json:"lines,omitempty"`
	SoftBreaks int       `json:"soft_breaks,omitempty"`
	Cursor     int       `json:"cursor"` // 0 is a real position
	Detail     string    `json:"detail,omitempty"`
}

// Meta is written to meta.json when a session closes.
type Meta struct {
	SessionID   string    `json:"session_id"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at,omitempty"`
	Status      string    `json:"status"`
	InputSource string    `json:"input_source"`
	InputPath   string    `json:"input_path,omitempty"`
	FontSize    int       `json:"font_size"`
	Reflows     int       `json:"reflows"`
	EventsCount int       `json:"events_count"`
	FinalChars  int       `json:"final_chars"`
}

// Session is an open journal. A nil *Session accepts every call and
// records nothing, so callers need not check whether journaling is on.
type Session struct {
	ID  string
	Dir string

	mu     sync.Mutex
	events *os.File
	log    *os.File
	meta   Meta
	now    func() time.Time
}

// Create opens a new session directory under root.
func Create(root string, meta Meta) (*Session, error) {
	if root == "" {
		return nil, fmt.Errorf("journal root cannot be empty")
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	events, err := os.OpenFile(filepath.Join(dir, "events.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	log, err := os.OpenFile(filepath.Join(dir, "session.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = events.Close()
		return nil, fmt.Errorf("open session log: %w", err)
	}

	s := &Session{ID: id, Dir: dir, events: events, log: log, meta: meta, now: time.Now}
	s.meta.SessionID = id
	s.meta.StartedAt = s.now()
	s.meta.Status = "running"
	return s, nil
}

// Record appends ev to events.jsonl, stamping it if needed.
func (s *Session) Record(ev Event) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.now()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := s.events.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	s.meta.EventsCount++
	switch ev.Kind {
	case KindReflow:
		s.meta.Reflows++
	case KindFont:
		s.meta.FontSize = ev.FontSize
	}
	return nil
}

// Logf appends a timestamped line to session.log.
func (s *Session) Logf(format string, args ...any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.log, "%s %s\n", s.now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}

// LogWriter returns a writer whose lines land in session.log.
func (s *Session) LogWriter() io.Writer {
	if s == nil {
		return io.Discard
	}
	return logWriter{s}
}

type logWriter struct{ s *Session }

func (w logWriter) Write(p []byte) (int, error) {
	w.s.Logf("%s", trimNewline(string(p)))
	return len(p), nil
}

// Close writes meta.json and closes the session files.
func (s *Session) Close(status string, fontSize, finalChars int) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meta.EndedAt = s.now()
	s.meta.Status = status
	s.meta.FontSize = fontSize
	s.meta.FinalChars = finalChars
	metaErr := WriteMeta(s.Dir, s.meta)

	var firstErr error
	for _, f := range []*os.File{s.events, s.log} {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if metaErr != nil {
		return metaErr
	}
	return firstErr
}

// WriteMeta writes meta.json into dir.
func WriteMeta(dir string, meta Meta) error {
	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "meta.json"), append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	return nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func newID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
