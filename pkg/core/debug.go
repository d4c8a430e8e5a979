package core

// DebugMode controls prop-type and context-type validation.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the runtime.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
