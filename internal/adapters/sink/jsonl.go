package sink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// JSONLSink appends one JSON object per line to the configured log files.
// Signal and location records go to separate files so each log stays a
// uniform stream.
type JSONLSink struct {
	mu        sync.Mutex
	signalW   *lineWriter
	locationW *lineWriter
}

type lineWriter struct {
	file *os.File
	buf  *bufio.Writer
}

func newLineWriter(path string) (*lineWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &lineWriter{file: f, buf: bufio.NewWriter(f)}, nil
}

// writeLine marshals v, appends it with a trailing newline and flushes, so
// the log is tailable line by line.
func (w *lineWriter) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal log record: %w", err)
	}
	if _, err := w.buf.Write(b); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	return w.buf.Flush()
}

func (w *lineWriter) close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// NewJSONLSink opens (or creates) both log files, creating parent
// directories as needed.
func NewJSONLSink(signalPath, locationPath string) (*JSONLSink, error) {
	signalW, err := newLineWriter(signalPath)
	if err != nil {
		return nil, fmt.Errorf("open signal log: %w", err)
	}
	locationW, err := newLineWriter(locationPath)
	if err != nil {
		signalW.close()
		return nil, fmt.Errorf("open location log: %w", err)
	}
	return &JSONLSink{signalW: signalW, locationW: locationW}, nil
}

func (s *JSONLSink) WriteSignal(rec domain.SignalLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signalW.writeLine(rec)
}

func (s *JSONLSink) WriteLocation(rec domain.LocationLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locationW.writeLine(rec)
}

func (s *JSONLSink) Name() string { return "jsonl" }

// Close flushes and closes both log files.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err1 := s.signalW.close()
	err2 := s.locationW.close()
	if err1 != nil {
		return err1
	}
	return err2
}

var _ ports.Sink = (*JSONLSink)(nil)
