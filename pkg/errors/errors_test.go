package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFrameworkErrorString(t *testing.T) {
	err := &FrameworkError{
		Op:   "core.validateProps",
		Kind: KindValidation,
		Err:  &PropTypeError{Component: "Counter", Prop: "count", Reason: "expected int"},
	}
	got := err.Error()
	want := `core.validateProps [validation]: invalid prop "count" supplied to Counter: expected int`
	if got != want {
		t.Errorf("FrameworkError.Error() = %q, want %q", got, want)
	}
}

func TestFrameworkErrorWithComponent(t *testing.T) {
	err := &FrameworkError{
		Op:        "core.resolveContext",
		Kind:      KindValidation,
		Component: "Greeting",
		Err:       fmt.Errorf("undeclared key"),
	}
	if !strings.Contains(err.Error(), "component=Greeting") {
		t.Errorf("error string %q should contain component", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindValidation, "validation"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "observer.flush"
	if got, want := err.Error(), "panic in observer.flush: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *FrameworkError
	handler := &testHandler{
		onError: func(err *FrameworkError) {
			capturedErr = err
		},
	}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&FrameworkError{Op: "test.op", Kind: KindInit, Err: fmt.Errorf("boom")})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportValidation_NilErrorIgnored(t *testing.T) {
	calls := 0
	SetHandler(&testHandler{onError: func(*FrameworkError) { calls++ }})
	defer SetHandler(nil)

	ReportValidation("op", "Comp", nil)
	if calls != 0 {
		t.Errorf("expected no report for nil error, got %d", calls)
	}

	ReportValidation("op", "Comp", fmt.Errorf("bad"))
	if calls != 1 {
		t.Errorf("expected one report, got %d", calls)
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { capturedPanic = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{Component: "Counter", Recovered: "nil pointer dereference"}
	if got, want := err.Error(), "panic in Counter.Render(): nil pointer dereference"; got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	err2 := &BuildError{Component: "Counter", Err: fmt.Errorf("bad state")}
	if !strings.Contains(err2.Error(), "error in Counter.Render()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", err2.Error())
	}

	err3 := &BuildError{Component: "Counter"}
	if got, want := err3.Error(), "unknown error in Counter.Render()"; got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	SetHandler(&testHandler{onBuildError: func(err *BuildError) { capturedErr = err }})
	defer SetHandler(nil)

	ReportBuildError(&BuildError{Component: "Test", Element: "*core.ComponentElement", Recovered: "x"})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestLogHandler_WritesToOut(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleBuildError(&BuildError{Component: "Counter", Recovered: "boom"})
	if !strings.Contains(buf.String(), "[easystate build error] panic in Counter.Render(): boom") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSlogHandler_ValidationIsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := NewSlogHandler(logger, false)

	h.HandleError(&FrameworkError{Op: "core.validateProps", Kind: KindValidation, Component: "Counter", Err: fmt.Errorf("bad")})

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON record: %v", err)
	}
	if record["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", record["level"])
	}
	if record["component"] != "Counter" {
		t.Errorf("component = %v, want Counter", record["component"])
	}
}

type testHandler struct {
	onError      func(*FrameworkError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *FrameworkError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
