package metrics

import "time"

// ProblemReporter reports the sticky problem flag of a logger.
// *applog.Logger satisfies it.
type ProblemReporter interface {
	Name() string
	ProblemOccurred() bool
}

// Collector periodically refreshes the problem-state gauges from a set
// of reporters. The observer only raises the gauge; a Reset on the
// logger clears the flag without a callback, so the gauge has to be
// polled back down.
type Collector struct {
	reporters []ProblemReporter
	interval  time.Duration
	stopChan  chan struct{}
}

// NewCollector creates a new collector polling every interval.
func NewCollector(interval time.Duration, reporters ...ProblemReporter) *Collector {
	return &Collector{
		reporters: reporters,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the collection loop
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	for _, r := range c.reporters {
		state := 0.0
		if r.ProblemOccurred() {
			state = 1.0
		}
		ProblemState.WithLabelValues(r.Name()).Set(state)
	}
}
