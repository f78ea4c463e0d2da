package antitrack

import (
	"errors"
	"sync"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// ErrChannelSinkClosed is returned by a channel sink after Close.
var ErrChannelSinkClosed = errors.New("channel sink is closed")

// Record is the union delivered by a channel sink. Exactly one field is
// non-nil.
type Record struct {
	Signal   *domain.SignalLogRecord
	Location *domain.LocationLogRecord
}

// CallbackSink invokes user functions for each record. Nil callbacks are
// skipped.
type CallbackSink struct {
	onSignal   func(domain.SignalLogRecord) error
	onLocation func(domain.LocationLogRecord) error
}

// NewCallbackSink adapts plain functions into a Sink.
func NewCallbackSink(onSignal func(domain.SignalLogRecord) error, onLocation func(domain.LocationLogRecord) error) *CallbackSink {
	return &CallbackSink{onSignal: onSignal, onLocation: onLocation}
}

func (c *CallbackSink) WriteSignal(rec domain.SignalLogRecord) error {
	if c.onSignal == nil {
		return nil
	}
	return c.onSignal(rec)
}

func (c *CallbackSink) WriteLocation(rec domain.LocationLogRecord) error {
	if c.onLocation == nil {
		return nil
	}
	return c.onLocation(rec)
}

func (c *CallbackSink) Name() string { return "callback" }

// ChannelSink delivers records to a channel the caller drains. Writes
// block when the channel is full, which backpressures the sessions.
type ChannelSink struct {
	ch     chan Record
	closed chan struct{}

	mu       sync.RWMutex
	isClosed bool
	inflight sync.WaitGroup
}

// NewChannelSink creates a channel sink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer < 0 {
		buffer = 0
	}
	return &ChannelSink{
		ch:     make(chan Record, buffer),
		closed: make(chan struct{}),
	}
}

// Records is the receive side. It is closed by Close after the last
// in-flight write has been delivered or dropped.
func (c *ChannelSink) Records() <-chan Record { return c.ch }

func (c *ChannelSink) WriteSignal(rec domain.SignalLogRecord) error {
	return c.send(Record{Signal: &rec})
}

func (c *ChannelSink) WriteLocation(rec domain.LocationLogRecord) error {
	return c.send(Record{Location: &rec})
}

func (c *ChannelSink) send(rec Record) error {
	c.mu.RLock()
	if c.isClosed {
		c.mu.RUnlock()
		return ErrChannelSinkClosed
	}
	c.inflight.Add(1)
	c.mu.RUnlock()
	defer c.inflight.Done()

	select {
	case c.ch <- rec:
		return nil
	case <-c.closed:
		return ErrChannelSinkClosed
	}
}

func (c *ChannelSink) Name() string { return "channel" }

// Close stops accepting writes, unblocks any writer stuck on a full
// channel, then closes the records channel so a ranging consumer
// terminates. Pending receives still drain the buffer first.
func (c *ChannelSink) Close() error {
	c.mu.Lock()
	if c.isClosed {
		c.mu.Unlock()
		return ErrChannelSinkClosed
	}
	c.isClosed = true
	c.mu.Unlock()

	close(c.closed)
	c.inflight.Wait()
	close(c.ch)
	return nil
}
