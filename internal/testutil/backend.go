// Package testutil holds in-memory stand-ins for the external services the
// server talks to.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Write records one call made against MemoryBackend.
type Write struct {
	Op   string
	Path string
	Data json.RawMessage
}

// MemoryBackend is a tiny realtime database: values are stored as JSON by
// full path, and reading a parent path assembles its direct children.
type MemoryBackend struct {
	mu      sync.Mutex
	values  map[string]json.RawMessage
	writes  []Write
	reads   int
	nextKey int

	// FailWrites makes Set and Push return this error.
	FailWrites error
	// FailReads makes Get return this error.
	FailReads error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]json.RawMessage)}
}

func (b *MemoryBackend) Set(ctx context.Context, path string, v interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWrites != nil {
		return b.FailWrites
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.values[path] = data
	b.writes = append(b.writes, Write{Op: "set", Path: path, Data: data})
	return nil
}

func (b *MemoryBackend) Push(ctx context.Context, path string, v interface{}) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWrites != nil {
		return "", b.FailWrites
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	b.nextKey++
	key := fmt.Sprintf("-K%06d", b.nextKey)
	b.values[path+"/"+key] = data
	b.writes = append(b.writes, Write{Op: "push", Path: path, Data: data})
	return key, nil
}

func (b *MemoryBackend) Get(ctx context.Context, path string, v interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reads++
	if b.FailReads != nil {
		return b.FailReads
	}
	if data, ok := b.values[path]; ok {
		return json.Unmarshal(data, v)
	}

	prefix := path + "/"
	children := make(map[string]json.RawMessage)
	for p, data := range b.values {
		if rest, ok := strings.CutPrefix(p, prefix); ok && !strings.Contains(rest, "/") {
			children[rest] = data
		}
	}
	if len(children) == 0 {
		return nil
	}
	data, err := json.Marshal(children)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SetRaw stores data verbatim at path without recording a write, for
// shapes the database produces on its own such as array-valued locations.
func (b *MemoryBackend) SetRaw(path string, data string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[path] = json.RawMessage(data)
}

// Delete removes a value the way an out-of-band console edit would, without
// recording a write.
func (b *MemoryBackend) Delete(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, path)
}

// Writes returns every Set and Push made so far.
func (b *MemoryBackend) Writes() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Write, len(b.writes))
	copy(out, b.writes)
	return out
}

// Reads returns how many times Get was called.
func (b *MemoryBackend) Reads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reads
}
