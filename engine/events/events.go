// Package events implements combat event recording. Recorders observe
// damage applications and never influence combat outcome.
package events

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nathoo/bossrush/types"
)

// Recorder receives one event per damage application.
type Recorder interface {
	Record(ev types.CombatEvent)
}

// RecorderFunc adapts a plain function to a Recorder.
type RecorderFunc func(ev types.CombatEvent)

// Record calls f(ev).
func (f RecorderFunc) Record(ev types.CombatEvent) { f(ev) }

// Nop discards every event.
var Nop Recorder = RecorderFunc(func(types.CombatEvent) {})

// Log stamps events with its clock and dispatches them to every sink,
// in registration order. Single pass, no filtering.
type Log struct {
	sinks []Recorder
	Now   func() time.Time
}

// NewLog creates a Log forwarding to the given sinks. Nil sinks are skipped.
func NewLog(sinks ...Recorder) *Log {
	l := &Log{Now: time.Now}
	for _, s := range sinks {
		l.Add(s)
	}
	return l
}

// Add registers another sink.
func (l *Log) Add(s Recorder) {
	if s == nil {
		return
	}
	l.sinks = append(l.sinks, s)
}

// Record stamps ev (if unstamped) and dispatches it.
func (l *Log) Record(ev types.CombatEvent) {
	if ev.At.IsZero() && l.Now != nil {
		ev.At = l.Now()
	}
	for _, s := range l.sinks {
		s.Record(ev)
	}
}

// FormatEvent renders an event in the console log format.
func FormatEvent(ev types.CombatEvent) string {
	return fmt.Sprintf("[%s] COMBAT LOG: %s attacked %s for %d damage",
		ev.At.Format("15:04:05"), ev.Attacker, ev.Defender, ev.Damage)
}

// Console writes one formatted line per event.
type Console struct {
	Out io.Writer
}

// Record writes the event line to c.Out.
func (c Console) Record(ev types.CombatEvent) {
	fmt.Fprintln(c.Out, FormatEvent(ev))
}

// Collector keeps every event in memory.
type Collector struct {
	mu     sync.Mutex
	events []types.CombatEvent
}

// Record appends ev.
func (c *Collector) Record(ev types.CombatEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Events returns a copy of the recorded events.
func (c *Collector) Events() []types.CombatEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.CombatEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Zap writes events as structured log entries.
type Zap struct {
	Logger *zap.Logger
}

// Record logs ev at info level.
func (z Zap) Record(ev types.CombatEvent) {
	z.Logger.Info("combat",
		zap.String("attacker", ev.Attacker),
		zap.String("defender", ev.Defender),
		zap.Int("damage", ev.Damage),
		zap.Time("at", ev.At))
}
