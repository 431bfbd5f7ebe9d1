// Package testing provides test doubles for the source package.
package testing

import (
	"strings"
	"sync"
)

// FakeSource serves canned file contents and command outputs.
// Unknown paths and commands return "", like a failing real source.
type FakeSource struct {
	mu       sync.Mutex
	files    map[string]string
	commands map[string]string

	// Tracking for assertions
	FileReads []string
	Runs      []string
}

// NewFakeSource creates an empty fake source.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		files:    make(map[string]string),
		commands: make(map[string]string),
	}
}

// SetFile sets the contents returned for path.
func (f *FakeSource) SetFile(path, contents string) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = contents
	return f
}

// SetCommand sets the output returned for a command line.
func (f *FakeSource) SetCommand(output string, name string, args ...string) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[commandKey(name, args)] = output
	return f
}

// ReadFile implements source.Source.
func (f *FakeSource) ReadFile(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FileReads = append(f.FileReads, path)
	return f.files[path]
}

// Run implements source.Source.
func (f *FakeSource) Run(name string, args ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := commandKey(name, args)
	f.Runs = append(f.Runs, key)
	return f.commands[key]
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
