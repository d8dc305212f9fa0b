// Package runlog collects level/stage/message/detail records for one
// grading run. Entries accumulate in memory; with echo on they also go to
// stderr as they happen.
package runlog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type Entry struct {
	At      time.Time `json:"at"`
	Level   string    `json:"level"`
	Stage   string    `json:"stage"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
}

type RunLog struct {
	mu      sync.Mutex
	echo    bool
	entries []Entry
}

// New returns an empty run log. With echo set, every entry is also printed
// to stderr immediately.
func New(echo bool) *RunLog {
	return &RunLog{echo: echo}
}

func (l *RunLog) Log(level, stage, message, detail string) {
	e := Entry{
		At:      time.Now().UTC(),
		Level:   level,
		Stage:   stage,
		Message: message,
		Detail:  detail,
	}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	if l.echo {
		if detail != "" {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s (%s)\n", level, stage, message, detail)
		} else {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, stage, message)
		}
	}
}

// Entries returns a copy of everything logged so far.
func (l *RunLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
