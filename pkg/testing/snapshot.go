package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/widgets"
)

// UpdateSnapshotsEnv names the environment variable that switches
// MatchesFile into update mode when set to "1".
const UpdateSnapshotsEnv = "EASYSTATE_UPDATE_SNAPSHOTS"

// snapshotJSON sorts map keys so snapshot files are stable across runs.
var snapshotJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the element tree structure.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node represents an element in the serialized tree.
type Node struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Component string         `json:"component,omitempty"`
	Key       string         `json:"key,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	State     map[string]any `json:"state,omitempty"`
	Children  []*Node        `json:"children,omitempty"`
}

// CaptureSnapshot captures the current element tree.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.root != nil {
		snap.Tree = captureNode(t.root, &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// EASYSTATE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// String returns the indented JSON form of the snapshot.
func (s *Snapshot) String() string {
	data, err := marshalSnapshot(s)
	if err != nil {
		return fmt.Sprintf("<invalid snapshot: %v>", err)
	}
	return string(data)
}

// typeCounter assigns stable IDs like "Text#0", "Text#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(e core.Element, counter *typeCounter) *Node {
	typeName := widgetTypeName(e.Widget())
	node := &Node{
		ID:   counter.next(typeName),
		Type: typeName,
	}
	if key := e.Widget().Key(); key != nil {
		node.Key = fmt.Sprint(key)
	}
	if text, ok := e.Widget().(widgets.Text); ok {
		content := text.Content
		node.Text = &content
	}
	if component, ok := e.(*core.ComponentElement); ok {
		node.Component = component.Definition().Label()
		node.Props = serializeValues(component.Props())
		node.State = serializeValues(component.State())
	}

	e.VisitChildren(func(child core.Element) bool {
		node.Children = append(node.Children, captureNode(child, counter))
		return true
	})
	return node
}

func widgetTypeName(w core.Widget) string {
	t := reflect.TypeOf(w)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func serializeValues[M ~map[string]any](values M) map[string]any {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = serializeValue(reflect.ValueOf(value))
	}
	return out
}

// serializeValue reduces a prop or state value to something stable in
// JSON. Funcs, channels and pointers serialize as their type, since their
// addresses change between runs.
func serializeValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Slice, reflect.Array:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = serializeValue(v.Index(i))
		}
		return items
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return fmt.Sprintf("<%s len=%d>", v.Type(), v.Len())
		}
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = serializeValue(iter.Value())
		}
		return m
	case reflect.Struct:
		return serializeStruct(v)
	case reflect.Interface:
		return serializeValue(v.Elem())
	default:
		return fmt.Sprintf("<%s>", v.Type())
	}
}

// serializeStruct collects exported, non-embedded fields into a map.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		m[f.Name] = serializeValue(v.Field(i))
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := snapshotJSON.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// marshalSnapshot round-trips through a generic value so loaded and captured
// snapshots compare equal regardless of the Go types held in props.
func marshalSnapshot(s *Snapshot) ([]byte, error) {
	raw, err := snapshotJSON.Marshal(s)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := snapshotJSON.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	data, err := snapshotJSON.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
