// Package history keeps the bounded most-recent ring of location fixes and
// the derived metrics computed over it.
package history

import (
	"sync"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/geo"
)

// DefaultCapacity matches the original trackers: the last 100 fixes.
const DefaultCapacity = 100

// Buffer is a bounded FIFO of location samples. Appending beyond capacity
// evicts the oldest entry. The tick worker is the only writer; the mutex is
// for readers polling from the UI goroutine.
type Buffer struct {
	mu   sync.Mutex
	data []domain.LocationSample
	cap  int
}

// New returns a buffer with the given capacity; values below 1 fall back to
// DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		data: make([]domain.LocationSample, 0, capacity),
		cap:  capacity,
	}
}

// Append stores a sample, dropping the oldest entry when full.
func (b *Buffer) Append(s domain.LocationSample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) >= b.cap {
		b.data = append(b.data[:0], b.data[1:]...)
	}
	b.data = append(b.data, s)
}

// Recent returns the most recent n samples, oldest first. n <= 0 or n
// beyond the stored count returns everything.
func (b *Buffer) Recent(n int) []domain.LocationSample {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n <= 0 || n > len(b.data) {
		n = len(b.data)
	}
	out := make([]domain.LocationSample, n)
	copy(out, b.data[len(b.data)-n:])
	return out
}

// Len reports how many samples are stored.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Last returns the newest sample, if any.
func (b *Buffer) Last() (domain.LocationSample, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		return domain.LocationSample{}, false
	}
	return b.data[len(b.data)-1], true
}

// TotalDistance sums the great-circle distance between consecutive stored
// samples, in kilometres. Fewer than two samples yields 0.
func (b *Buffer) TotalDistance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	var total float64
	for i := 1; i < len(b.data); i++ {
		prev, curr := b.data[i-1], b.data[i]
		total += geo.Haversine(prev.Lat, prev.Lon, curr.Lat, curr.Lon)
	}
	return total
}
