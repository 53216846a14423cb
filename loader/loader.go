/*
Package loader reads key/value lines from a stream into a tree.

Lines are of the form "key value", separated by the first whitespace
run; everything after the separator is the value. Blank lines and lines
without a value are skipped. Ingestion runs on the caller's goroutine,
while progress events are broadcast to any number of watchers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package loader

import (
	"bufio"
	"io"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bplus"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Progress is the event type broadcast to watchers during a load.
// Watchers receive a snapshot after every processed line; the final
// event has Done set.
type Progress struct {
	Inserted int  // lines stored in the tree
	Skipped  int  // malformed or blank lines
	Done     bool // set on the last event of a load
}

// Bulk loads whitespace-separated key/value lines into a tree. A Bulk
// is good for a single Load call; create it with NewBulk.
type Bulk struct {
	tree *bplus.Tree[string, string]
	cast *caster.Caster // broadcaster for progress messages
}

// NewBulk creates a loader writing into tree.
func NewBulk(tree *bplus.Tree[string, string]) *Bulk {
	return &Bulk{
		tree: tree,
		cast: caster.New(nil), // we will broadcast messages as lines are loaded
	}
}

// Watch subscribes to progress events. It returns a receive channel
// and a cancel function; the channel is closed either by cancel or when
// the load finishes. Watchers must be set up before Load is called.
func (b *Bulk) Watch() (<-chan interface{}, func()) {
	ch, ok := b.cast.Sub(nil, 1)
	if !ok { // caster already closed, i.e. load has finished
		closed := make(chan interface{})
		close(closed)
		return closed, func() {}
	}
	return ch, func() { b.cast.Unsub(ch) }
}

// Load reads r line by line and inserts every well-formed line into the
// tree, replacing values for repeated keys. It runs synchronously on
// the caller's goroutine and closes the broadcaster when done. The
// returned Progress is the final event, with Done set.
func (b *Bulk) Load(r io.Reader) (Progress, error) {
	defer b.cast.Close()
	var p Progress
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, val, ok := splitLine(scanner.Text())
		if !ok {
			p.Skipped++
			T().Debugf("loader: skipping malformed line")
		} else {
			b.tree.Insert(key, val)
			p.Inserted++
		}
		b.cast.TryPub(p)
	}
	if err := scanner.Err(); err != nil {
		T().Errorf("loader: reading input failed: %v", err)
		p.Done = true
		b.cast.Pub(p)
		return p, err
	}
	p.Done = true
	b.cast.Pub(p)
	return p, nil
}

// splitLine splits a line at the first whitespace run. Lines without
// both a key and a value are rejected.
func splitLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	i := strings.IndexFunc(line, isSpace)
	if i < 0 {
		return "", "", false
	}
	key = line[:i]
	val = strings.TrimLeftFunc(line[i:], isSpace)
	if val == "" {
		return "", "", false
	}
	return key, val, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
