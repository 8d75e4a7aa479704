package rpc

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router groups procedures of one namespace by short name.
type Router map[string]*Procedure

// Registry is the immutable set of procedures served by the application.
// It is built once at startup and only read afterwards.
type Registry struct {
	procedures []*Procedure
	byName     map[string]*Procedure
}

// Registry construction errors.
var (
	ErrEmptyName      = errors.New("procedure name is empty")
	ErrNilProcedure   = errors.New("procedure is nil")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrInvalidRoute   = errors.New("invalid route")
)

// NewRegistry composes namespaced routers into a registry.
// Procedure names become "<namespace>.<name>". Procedures are copied, so
// later changes to the given routers do not affect the registry.
func NewRegistry(namespaces map[string]Router) (*Registry, error) {
	reg := &Registry{byName: make(map[string]*Procedure)}
	routes := make(map[string]string)

	for ns, router := range namespaces {
		if ns == "" {
			return nil, fmt.Errorf("namespace: %w", ErrEmptyName)
		}
		for name, proc := range router {
			if name == "" {
				return nil, fmt.Errorf("namespace %q: %w", ns, ErrEmptyName)
			}
			full := ns + "." + name
			if proc == nil {
				return nil, fmt.Errorf("%s: %w", full, ErrNilProcedure)
			}
			if proc.method == "" || !strings.HasPrefix(proc.path, "/") {
				return nil, fmt.Errorf("%s: %w: %s %q", full, ErrInvalidRoute, proc.method, proc.path)
			}

			route := proc.method + " " + routePattern(proc.path)
			if other, ok := routes[route]; ok {
				return nil, fmt.Errorf("%s and %s: %w: %s", other, full, ErrDuplicateRoute, route)
			}
			routes[route] = full

			cp := *proc
			cp.name = full
			cp.tags = append([]string(nil), proc.tags...)
			cp.gates = append([]Gate(nil), proc.gates...)
			cp.security = append([]string(nil), proc.security...)
			cp.errors = append([]Code(nil), proc.errors...)

			reg.procedures = append(reg.procedures, &cp)
			reg.byName[full] = &cp
		}
	}

	sort.Slice(reg.procedures, func(i, j int) bool {
		return reg.procedures[i].name < reg.procedures[j].name
	})

	return reg, nil
}

// routePattern replaces each {param} in path with {} so that templates
// chi would match identically compare equal.
func routePattern(path string) string {
	var b strings.Builder
	depth := 0
	for _, c := range path {
		switch {
		case c == '{':
			if depth == 0 {
				b.WriteString("{}")
			}
			depth++
		case c == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Procedures returns the registered procedures ordered by name.
func (reg *Registry) Procedures() []*Procedure {
	return append([]*Procedure(nil), reg.procedures...)
}

// Lookup finds a procedure by its full name.
func (reg *Registry) Lookup(name string) (*Procedure, bool) {
	p, ok := reg.byName[name]
	return p, ok
}

// Len returns the number of procedures.
func (reg *Registry) Len() int {
	return len(reg.procedures)
}

// Mount registers every procedure on r.
func (reg *Registry) Mount(r chi.Router, logger *slog.Logger) {
	for _, p := range reg.procedures {
		r.Method(p.method, p.path, p.Handler(logger))
	}
}
