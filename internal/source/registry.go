package source

import (
	"fmt"
	"sort"

	"NewsletterDesk/internal/ports"
)

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]ports.SubmissionSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.SubmissionSource{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(src ports.SubmissionSource) {
	if r.sources == nil {
		r.sources = map[string]ports.SubmissionSource{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.SubmissionSource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source %s is not registered", name)
}

// Names lists registered sources alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand turns "all" into every registered name and drops duplicates, keeping order.
func (r *Registry) Expand(names []string) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(n string) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	for _, n := range names {
		if n == "all" {
			for _, registered := range r.Names() {
				add(registered)
			}
			continue
		}
		add(n)
	}
	return out
}
