package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average over the last AVG_COUNT run durations.
type Metrics struct {
	mutex sync.Mutex

	avgCounter uint8
	samples    [AVG_COUNT]time.Duration
	filled     uint8
	runs       int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Update(elapsed time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.samples[m.avgCounter] = elapsed
	m.avgCounter++
	m.avgCounter %= AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}

	// Count all runs.
	m.runs++
}

// Average returns the mean of the samples collected so far, or zero when
// there are none.
func (m *Metrics) Average() time.Duration {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.filled == 0 {
		return 0
	}
	var total time.Duration
	for i := uint8(0); i < m.filled; i++ {
		total += m.samples[i]
	}
	return total / time.Duration(m.filled)
}

func (m *Metrics) Runs() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.runs
}
