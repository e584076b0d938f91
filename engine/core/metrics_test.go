package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAverage(t *testing.T) {
	m := NewMetrics()
	assert.Equal(t, time.Duration(0), m.Average())

	m.Update(10 * time.Millisecond)
	m.Update(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, m.Average())
	assert.Equal(t, 2, m.Runs())

	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(time.Second)
	}
	assert.Equal(t, time.Second, m.Average(), "old samples roll off")
	assert.Equal(t, int(AVG_COUNT)+2, m.Runs())
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed(), "clock not started")

	c.Start()
	time.Sleep(time.Millisecond)
	c.Update()
	first := c.Elapsed()
	assert.GreaterOrEqual(t, first, time.Millisecond)

	c.Stop()
	stopped := c.Elapsed()
	assert.GreaterOrEqual(t, stopped, first)
	c.Update()
	assert.Equal(t, stopped, c.Elapsed(), "stopped clocks keep their elapsed time")
}
