package telemetry

import (
	"io"
	"sync"
	"time"
)

// TimingCollector collects hierarchical timing data as a tree of timers.
type TimingCollector struct {
	root    *timerNode
	current *timerNode
	mu      sync.Mutex
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	children []*timerNode
	parent   *timerNode
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. The first timer started becomes the
// root of the report tree.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{
		name:  name,
		start: time.Now(),
	}

	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree to w. Implemented in format.go.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	formatTimingTree(w, c.root)
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

// End stops the timer and moves the collector's cursor back to the parent.
func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()

	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child creates a timer nested under this one.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{
		name:   name,
		start:  time.Now(),
		parent: t.node,
	}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: t.collector, node: node}
}
