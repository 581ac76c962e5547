package store

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoizy/invoizy/pkg/logger"
)

func TestDebouncedSaverCoalescesBursts(t *testing.T) {
	var writes atomic.Int32
	s := NewDebouncedSaver(40*time.Millisecond, func() error {
		writes.Add(1)
		return nil
	}, logger.NewNop())
	defer s.Close()

	// A burst of edits inside the quiet window collapses to one write.
	for i := 0; i < 10; i++ {
		s.Schedule()
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), writes.Load())
}

func TestDebouncedSaverFlush(t *testing.T) {
	var writes atomic.Int32
	s := NewDebouncedSaver(time.Hour, func() error {
		writes.Add(1)
		return nil
	}, logger.NewNop())
	defer s.Close()

	s.Schedule()
	s.Flush()
	assert.Equal(t, int32(1), writes.Load())

	// Flush with nothing pending is a no-op.
	s.Flush()
	assert.Equal(t, int32(1), writes.Load())
}

func TestDebouncedSaverCancel(t *testing.T) {
	var writes atomic.Int32
	s := NewDebouncedSaver(20*time.Millisecond, func() error {
		writes.Add(1)
		return nil
	}, logger.NewNop())
	defer s.Close()

	s.Schedule()
	s.Cancel()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), writes.Load())
}

func TestDebouncedSaverClosedRefusesWork(t *testing.T) {
	var writes atomic.Int32
	s := NewDebouncedSaver(10*time.Millisecond, func() error {
		writes.Add(1)
		return nil
	}, logger.NewNop())

	s.Schedule()
	s.Close()
	s.Schedule()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), writes.Load())
}

func TestDebouncedSaverWriteFailureIsNonFatal(t *testing.T) {
	calls := 0
	s := NewDebouncedSaver(time.Hour, func() error {
		calls++
		return assert.AnError
	}, logger.NewNop())
	defer s.Close()

	s.Schedule()
	s.Flush()
	assert.Equal(t, 1, calls)

	// The saver keeps accepting schedules after a failed write.
	s.Schedule()
	s.Flush()
	assert.Equal(t, 2, calls)
}
