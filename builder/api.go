// SPDX-License-Identifier: MIT
//
// api.go - BuildGraph orchestrator and the Parse entry point.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cycledecomp/core"
)

// Constructor adds a topology to g. Constructors validate their parameters
// before touching g and return sentinel errors wrapped with context.
type Constructor func(g *core.Graph) error

// BuildGraph creates an empty graph and applies cons in order. The first
// constructor error aborts the build.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, c := range cons {
		if err = c(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Parse maps "cycle:n", "complete:n", "wheel:n", "path:n", "petersen" and
// "fixture" to their constructors.
func Parse(def string) (Constructor, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(def), ":")
	kind = strings.ToLower(kind)

	if named, ok := namedKinds[kind]; ok {
		if hasArg {
			return nil, fmt.Errorf("Parse(%q): %s takes no size: %w", def, kind, ErrUnknownKind)
		}

		return named(), nil
	}

	sized, ok := sizedKinds[kind]
	if !ok {
		return nil, fmt.Errorf("Parse(%q): %w", def, ErrUnknownKind)
	}
	n, err := strconv.Atoi(arg)
	if !hasArg || err != nil {
		return nil, fmt.Errorf("Parse(%q): want %s:<n>: %w", def, kind, ErrUnknownKind)
	}

	return sized(n), nil
}

var namedKinds = map[string]func() Constructor{
	"petersen": Petersen,
	"fixture":  Fixture,
}

var sizedKinds = map[string]func(int) Constructor{
	"cycle":    Cycle,
	"complete": Complete,
	"wheel":    Wheel,
	"path":     Path,
}

// addEdge wraps core.AddEdge with the constructor's method tag.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
