package engine

import (
	"fmt"
	"os"
)

// DebugLogger mirrors the UCI conversation into a file when the
// "Debug Log File" option names one. An empty name closes the log.
type DebugLogger struct {
	file *os.File
}

func (l *DebugLogger) Start(path string) error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
	if path == "" || path == "<empty>" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	l.file = f
	return nil
}

// Print records one protocol line; dir marks the direction (">>" received,
// "<<" sent). A no-op while no log file is open.
func (l *DebugLogger) Print(dir, line string) {
	if l.file == nil {
		return
	}
	fmt.Fprintf(l.file, "%s %s\n", dir, line)
}

func (l *DebugLogger) Active() bool { return l.file != nil }
