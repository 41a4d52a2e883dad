package api

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

func TestClassifyChange_Kinds(t *testing.T) {
	fw := &FileWatcher{dir: "/site/dist"}

	tests := []struct {
		name     string
		path     string
		op       fsnotify.Op
		wantKind FileChangeKind
		wantType FileChangeType
		wantPath string
	}{
		{"page created", "/site/dist/index.html", fsnotify.Create, FileChangeKindPage, FileChangeCreated, "index.html"},
		{"style modified", "/site/dist/style.css", fsnotify.Write, FileChangeKindStyle, FileChangeModified, "style.css"},
		{"script removed", "/site/dist/app.js", fsnotify.Remove, FileChangeKindScript, FileChangeDeleted, "app.js"},
		{"engine rebuilt", "/site/dist/shades.wasm", fsnotify.Write, FileChangeKindEngine, FileChangeModified, "shades.wasm"},
		{"names renamed (treated as deleted)", "/site/dist/shades.toml", fsnotify.Rename, FileChangeKindNames, FileChangeDeleted, "shades.toml"},
		{"nested asset", "/site/dist/embed/index.HTML", fsnotify.Write, FileChangeKindPage, FileChangeModified, "embed/index.HTML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := fw.classifyChange(fsnotify.Event{Name: tt.path, Op: tt.op})

			if change.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", change.Kind, tt.wantKind)
			}
			if change.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", change.Type, tt.wantType)
			}
			if change.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", change.Path, tt.wantPath)
			}
		})
	}
}

func TestClassifyChange_Unknown(t *testing.T) {
	fw := &FileWatcher{dir: "/site/dist"}

	tests := []struct {
		name string
		path string
		op   fsnotify.Op
	}{
		{"random file", "/site/dist/notes.txt", fsnotify.Write},
		{"no extension", "/site/dist/Makefile", fsnotify.Write},
		{"outside dir", "/site/other/index.html", fsnotify.Write},
		{"chmod only", "/site/dist/index.html", fsnotify.Chmod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := fw.classifyChange(fsnotify.Event{Name: tt.path, Op: tt.op})
			if change.Kind != FileChangeKindUnknown {
				t.Errorf("Kind = %q, want %q", change.Kind, FileChangeKindUnknown)
			}
		})
	}
}

// mockSubscriber implements FileWatcherSubscriber for testing
type mockSubscriber struct {
	mu      sync.Mutex
	changes []FileChange
}

func (m *mockSubscriber) OnFileChange(change FileChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, change)
}

func (m *mockSubscriber) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.changes)
}

func TestFileWatcher_Subscribe(t *testing.T) {
	fw := &FileWatcher{}

	fw.Subscribe(&mockSubscriber{})
	fw.Subscribe(&mockSubscriber{})

	if len(fw.subscribers) != 2 {
		t.Errorf("Expected 2 subscribers, got %d", len(fw.subscribers))
	}
}

func TestFileWatcher_Unsubscribe(t *testing.T) {
	sub1 := &mockSubscriber{}
	sub2 := &mockSubscriber{}

	fw := &FileWatcher{
		subscribers: []FileWatcherSubscriber{sub1, sub2},
	}

	fw.Unsubscribe(sub1)

	if len(fw.subscribers) != 1 {
		t.Errorf("Expected 1 subscriber, got %d", len(fw.subscribers))
	}
	if fw.subscribers[0] != sub2 {
		t.Error("Wrong subscriber remained")
	}
}

func TestFileWatcher_StoppedPreventsRestart(t *testing.T) {
	fw := &FileWatcher{stopped: true}

	if err := fw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}

func TestFileWatcher_MissingDir(t *testing.T) {
	fw, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope"), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Stop()

	if err := fw.Start(); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestFileWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWatcher(dir, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	sub := &mockSubscriber{}
	fw.Subscribe(sub)
	if err := fw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer fw.Stop()

	path := filepath.Join(dir, "style.css")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("body{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for sub.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if sub.count() == 0 {
		t.Fatal("no change delivered")
	}

	// Give stray timers a chance; a five-write burst should not become five events
	time.Sleep(3 * debounceDelay)
	if sub.count() >= 5 {
		t.Errorf("burst not debounced: %d changes", sub.count())
	}
}
