// Package testing provides a component testing harness for easystate.
//
// # Quick Start
//
// Create a tester, pump a widget, mutate a store and make assertions:
//
//	func TestGreeting(t *testing.T) {
//	    name := observer.NewValue("Ada")
//	    tester := estest.NewTesterWithT(t)
//	    tester.PumpWidget(core.El(view.Wrap(greeting(name)), nil))
//
//	    name.Set("Grace")
//	    tester.Pump()
//
//	    if !tester.Find(estest.ByText("hello Grace")).Exists() {
//	        t.Error("expected greeting to follow the store")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/greeting.snapshot.json")
//
// Update snapshots with:
//
//	EASYSTATE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import estest "github.com/go-drift/easystate/pkg/testing"
package testing
