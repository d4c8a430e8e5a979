package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/easystate/pkg/core"
)

// DefaultSettleFrames bounds PumpAndSettle when no limit is given.
const DefaultSettleFrames = 100

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tree did not settle")

// Tester mounts a widget tree and drives build frames by hand, so store
// mutations and the renders they cause can be asserted deterministically.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
	frames     int
	requested  int
}

// NewTester creates a tester. Call Cleanup when done, or use
// NewTesterWithT instead.
func NewTester() *Tester {
	t := &Tester{buildOwner: core.NewBuildOwner()}
	t.buildOwner.OnNeedsFrame = func() { t.requested++ }
	return t
}

// NewTesterWithT creates a tester that unmounts its tree via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree so reactive bindings are released.
func (t *Tester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// PumpWidget mounts (or remounts) a widget and runs one frame.
func (t *Tester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, then the build flush.
func (t *Tester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	t.buildOwner.FlushBuild()
	t.frames++
	return nil
}

// PumpAndSettle runs frames until nothing is dirty and no dispatch is
// queued. A maxFrames of zero or less uses DefaultSettleFrames.
func (t *Tester) PumpAndSettle(maxFrames int) error {
	if maxFrames <= 0 {
		maxFrames = DefaultSettleFrames
	}
	for range maxFrames {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *Tester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *Tester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Frames returns how many frames have been pumped.
func (t *Tester) Frames() int {
	return t.frames
}

// FrameRequests returns how many times the tree asked for a new frame.
// Coalesced invalidations count once.
func (t *Tester) FrameRequests() int {
	return t.requested
}

// Rebuilds returns the number of element rebuilds performed so far.
func (t *Tester) Rebuilds() int {
	return t.buildOwner.Rebuilds()
}

// BuildOwner returns the tester's build owner.
func (t *Tester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// RootElement returns the root element of the mounted tree.
func (t *Tester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
