package course

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Library holds the courses available to new rounds.
// It is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	courses map[string]Course
	order   []string
}

// NewLibrary returns a library preloaded with the built-in course.
func NewLibrary() *Library {
	l := &Library{courses: make(map[string]Course)}
	if err := l.Add(Bloomington()); err != nil {
		// The built-in course is static data, a failure here is a programming error.
		panic(err)
	}
	return l
}

// Add validates and registers a course, replacing any course with the same name.
func (l *Library) Add(c Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c = c.Normalize()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.courses[c.Name]; !ok {
		l.order = append(l.order, c.Name)
	}
	l.courses[c.Name] = c
	return nil
}

// Get looks up a course by name.
func (l *Library) Get(name string) (Course, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.courses[name]
	if !ok {
		return Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}
	return c, nil
}

// Default returns the first registered course.
func (l *Library) Default() Course {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.courses[l.order[0]]
}

// All returns the courses in registration order.
func (l *Library) All() []Course {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Course, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.courses[name])
	}
	return out
}

// LoadFile decodes a course from a .yaml, .yml or .json file and adds it.
func (l *Library) LoadFile(path string) (Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, fmt.Errorf("failed to read course file %s: %w", path, err)
	}

	var c Course
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".json":
		err = json.Unmarshal(data, &c)
	default:
		return Course{}, fmt.Errorf("unsupported course file type: %s", path)
	}
	if err != nil {
		return Course{}, fmt.Errorf("failed to decode course file %s: %w", path, err)
	}

	if err := l.Add(c); err != nil {
		return Course{}, err
	}
	return c.Normalize(), nil
}

// LoadDir adds every course file found in dir. Files that fail to load are
// logged and skipped. It returns the number of courses added.
func (l *Library) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read courses dir %s: %w", dir, err)
	}

	loaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		c, err := l.LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Warn("Skipping course file", "file", e.Name(), "error", err)
			continue
		}
		log.Info("Loaded course", "name", c.Name, "file", e.Name())
		loaded++
	}
	return loaded, nil
}
