package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Eringobraugh/inf80057-assistant-backend/core"
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
)

// Corpus returns a small corpus: two documents of two sections each.
func Corpus() []tutor.Document {
	return []tutor.Document{
		{
			Title: "Guide",
			Href:  "/g",
			Sections: []tutor.Section{
				{Loc: "p.1", Text: "Task 1 Part 1 covers the proposal."},
				{Loc: "p.2", Text: "The reflective journal is written weekly."},
			},
		},
		{
			Title: "Outline",
			Href:  "/o",
			Sections: []tutor.Section{
				{Loc: "s.1", Text: "Journal entries are marked at the end of semester."},
				{Loc: "s.2", Text: "Client meetings happen every fortnight."},
			},
		},
	}
}

// Schedule returns a schedule holding numeric week 4, string week "5" and an empty week 6.
func Schedule() []tutor.WeekRecord {
	return []tutor.WeekRecord{
		{Week: tutor.NumericWeek(4), Milestones: []string{"Submit proposal"}},
		{Week: tutor.StringWeek("5"), Milestones: []string{"Client meeting"}},
		{Week: tutor.NumericWeek(6), Milestones: []string{}},
	}
}

func NewService(paused bool) *tutor.Service {
	return tutor.NewService(tutor.Options{
		Corpus:   Corpus(),
		Schedule: Schedule(),
		Paused:   paused,
		Name:     "assistant-backend",
		Version:  "0.1.0",
	})
}

func WriteFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

type LogEntry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger is a core.Logger that keeps what it is given.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log("FATAL", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

// Entries returns the entries logged at level.
func (l *Logger) Entries(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogEntry
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
