package demo

import "github.com/go-drift/easystate/pkg/observer"

// Step is one scripted mutation applied between frames.
type Step struct {
	Name  string
	Apply func(*Store) error
}

// Script returns the mutations "easystate run" plays back, one per frame.
func Script() []Step {
	return []Step{
		{"add two todos", func(s *Store) error {
			observer.Batch(func() {
				s.Add("write the binding")
				s.Add("wire the store")
			})
			return nil
		}},
		{"complete #1", func(s *Store) error { s.Toggle(1); return nil }},
		{"show active", showFilter(FilterActive)},
		{"add #3", func(s *Store) error { s.Add("ship it"); return nil }},
		{"show done", showFilter(FilterDone)},
		{"remove #1", func(s *Store) error { s.Remove(1); return nil }},
		{"show all", showFilter(FilterAll)},
	}
}

func showFilter(filter string) func(*Store) error {
	return func(s *Store) error {
		return s.SetFilter(filter)
	}
}
