package core

import (
	"fmt"
	"sort"

	"github.com/go-drift/easystate/pkg/errors"
)

type contextProvider interface {
	childContext() ContextValues
}

// collectContext merges the child context of every provider from start up to
// the root. Nearer providers win.
func collectContext(start Element) ContextValues {
	var chain []contextProvider
	current := start
	for current != nil {
		if provider, ok := current.(contextProvider); ok {
			chain = append(chain, provider)
		}
		base, ok := current.(interface{ parentElement() Element })
		if !ok {
			break
		}
		current = base.parentElement()
	}

	merged := ContextValues{}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].childContext() {
			merged[k] = v
		}
	}
	return merged
}

// resolveContext returns the subset of the inherited context that def
// declares in ContextTypes. A definition without ContextTypes sees an empty
// context.
func resolveContext(parent Element, def *Definition) ContextValues {
	resolved := ContextValues{}
	if len(def.ContextTypes) == 0 {
		return resolved
	}
	available := collectContext(parent)
	for key := range def.ContextTypes {
		if value, ok := available[key]; ok {
			resolved[key] = value
		}
	}
	if DebugMode {
		checkSpec("core.resolveContext", def.Label(), def.ContextTypes, resolved)
	}
	return resolved
}

// validateChildContext reports provided keys missing from the declared
// child context types, then runs the declared validators.
func validateChildContext(component string, spec TypeSpec, values ContextValues) {
	var undeclared []string
	for key := range values {
		if _, ok := spec[key]; !ok {
			undeclared = append(undeclared, key)
		}
	}
	sort.Strings(undeclared)
	for _, key := range undeclared {
		errors.ReportValidation("core.childContext", component,
			fmt.Errorf("child context key %q is not declared in ChildContextTypes", key))
	}
	checkSpec("core.childContext", component, spec, values)
}
