// Package widgets provides the output widgets components render into: text
// leaves, columns of children, context providers and error boundaries.
package widgets
