// Package bench measures smallstring.Buffer append throughput against
// the standard library's growable builders (strings.Builder and
// bytes.Buffer).
//
// A Scenario describes one workload: runs repetitions of rounds, each
// round resetting the buffer and appending a fixed chunk a number of
// times. Every measured target gets the same workload and the same
// up-front capacity reservation, so the comparison isolates the append
// path itself.
package bench

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haivivi/smallstring/pkg/smallstring"
)

// Scenario describes one benchmark workload.
type Scenario struct {
	// Name identifies the scenario in results.
	Name string `json:"name" yaml:"name"`

	// Capacity is the reservation every target starts with.
	Capacity int `json:"capacity" yaml:"capacity"`

	// Runs is how many times the whole workload is repeated.
	Runs int `json:"runs" yaml:"runs"`

	// Rounds is the number of reset-then-fill cycles per run.
	Rounds int `json:"rounds" yaml:"rounds"`

	// Appends is the number of chunk appends per round.
	Appends int `json:"appends" yaml:"appends"`

	// Chunk is the text appended each time.
	Chunk string `json:"chunk" yaml:"chunk"`
}

// DefaultScenario is the classic workload: 100 rounds of 100 "hello"
// appends into a 2 KiB reservation.
func DefaultScenario() Scenario {
	return Scenario{
		Name:     "hello-2k",
		Capacity: 2048,
		Runs:     200,
		Rounds:   100,
		Appends:  100,
		Chunk:    "hello",
	}
}

// normalize fills zero or negative fields from DefaultScenario.
func (s Scenario) normalize() Scenario {
	def := DefaultScenario()
	if s.Name == "" {
		s.Name = def.Name
	}
	if s.Capacity <= 0 {
		s.Capacity = def.Capacity
	}
	if s.Runs <= 0 {
		s.Runs = def.Runs
	}
	if s.Rounds <= 0 {
		s.Rounds = def.Rounds
	}
	if s.Appends <= 0 {
		s.Appends = def.Appends
	}
	if s.Chunk == "" {
		s.Chunk = def.Chunk
	}
	return s
}

// Result is one target's measurement for a scenario. Results from the
// same Run call share a RunID.
type Result struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Scenario string        `json:"scenario" yaml:"scenario"`
	Target   string        `json:"target" yaml:"target"`
	Bytes    int64         `json:"bytes" yaml:"bytes"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
	NsPerOp  float64       `json:"ns_per_append" yaml:"ns_per_append"`
	MBPerSec float64       `json:"mib_per_sec" yaml:"mib_per_sec"`
}

// sink keeps measured loops observable so they cannot be elided.
var sink int

type target struct {
	name string
	run  func(s Scenario)
}

func targets(pool *smallstring.Pool) []target {
	return []target{
		{name: "smallstring.Buffer", run: func(s Scenario) {
			runBuffer(smallstring.NewSize(s.Capacity), s)
		}},
		{name: "smallstring.Pool", run: func(s Scenario) {
			buf := pool.Get()
			runBuffer(buf, s)
			pool.Put(buf)
		}},
		{name: "strings.Builder", run: runStringsBuilder},
		{name: "bytes.Buffer", run: runBytesBuffer},
	}
}

func runBuffer(buf *smallstring.Buffer, s Scenario) {
	for r := 0; r < s.Rounds; r++ {
		buf.Reset()
		for i := 0; i < s.Appends; i++ {
			_ = buf.PushString(s.Chunk)
		}
	}
	sink += buf.Len()
}

func runStringsBuilder(s Scenario) {
	for r := 0; r < s.Rounds; r++ {
		var sb strings.Builder
		sb.Grow(s.Capacity)
		for i := 0; i < s.Appends; i++ {
			sb.WriteString(s.Chunk)
		}
		sink += sb.Len()
	}
}

func runBytesBuffer(s Scenario) {
	var bb bytes.Buffer
	bb.Grow(s.Capacity)
	for r := 0; r < s.Rounds; r++ {
		bb.Reset()
		for i := 0; i < s.Appends; i++ {
			bb.WriteString(s.Chunk)
		}
	}
	sink += bb.Len()
}

// Run measures every target under the scenario and returns one Result
// per target. Zero scenario fields fall back to DefaultScenario values.
func Run(s Scenario) []Result {
	s = s.normalize()
	runID := uuid.New().String()
	pool := smallstring.NewPool(s.Capacity)

	tgts := targets(pool)
	results := make([]Result, 0, len(tgts))
	ops := int64(s.Runs) * int64(s.Rounds) * int64(s.Appends)
	total := ops * int64(len(s.Chunk))

	for _, t := range tgts {
		start := time.Now()
		for run := 0; run < s.Runs; run++ {
			t.run(s)
		}
		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Nanosecond
		}
		results = append(results, Result{
			RunID:    runID,
			Scenario: s.Name,
			Target:   t.name,
			Bytes:    total,
			Elapsed:  elapsed,
			NsPerOp:  float64(elapsed.Nanoseconds()) / float64(ops),
			MBPerSec: float64(total) / elapsed.Seconds() / (1 << 20),
		})
	}
	return results
}
