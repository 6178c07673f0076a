package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu          sync.Mutex
	stepElapsed time.Duration
	outputs     int64
	empties     int64
	skipped     int64
}

func (mt *DefaultMetric) AddOutput(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.outputs++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) AddEmpty(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.empties++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) AddSkipped() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.skipped++
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	total := mt.outputs + mt.empties
	if total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(total)))
}

func (mt *DefaultMetric) Outputs() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.outputs
}

func (mt *DefaultMetric) Empties() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.empties
}

func (mt *DefaultMetric) Skipped() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.skipped
}

func (mt *DefaultMetric) EmptyRatio() float64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	total := mt.outputs + mt.empties
	if total == 0 {
		return 0
	}

	return float64(mt.empties) / float64(total)
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
