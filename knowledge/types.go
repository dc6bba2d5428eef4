// SPDX-License-Identifier: MIT

package knowledge

import (
	"log/slog"
	"regexp"
	"sync"
)

// Edge is an ordered pair of variable names.
type Edge struct {
	From string
	To   string
}

// String renders "From --> To".
func (e Edge) String() string { return e.From + " --> " + e.To }

// GroupKind tags a knowledge group.
type GroupKind int

const (
	// ForbiddenGroup forbids every From -> To edge of the group.
	ForbiddenGroup GroupKind = iota
	// RequiredGroup requires every From -> To edge of the group.
	RequiredGroup
)

// String implements fmt.Stringer.
func (g GroupKind) String() string {
	if g == RequiredGroup {
		return "required"
	}
	return "forbidden"
}

// Group is a legacy bundle equivalent to one rule over two name sets.
type Group struct {
	Kind GroupKind
	From []string
	To   []string
}

// rule is an ordered pair of specs.
type rule struct {
	from, to string
}

// Knowledge is a constraint store over variable names. Queries may run concurrently;
// mutation may not, so share a mutable Knowledge through Copy.
type Knowledge struct {
	known map[string]struct{}

	tiers                []map[string]struct{}
	forbiddenWithin      map[int]bool
	onlyCanCauseNextTier map[int]bool

	forbidden []rule
	required  []rule
	groups    []Group

	nameOK func(string) bool
	logger *slog.Logger

	// patternsMu guards the compiled wildcard cache filled by queries.
	patternsMu sync.RWMutex
	patterns   map[string][]*regexp.Regexp
}

// New returns an empty Knowledge.
func New(opts ...Option) *Knowledge {
	k := &Knowledge{
		known:                make(map[string]struct{}),
		forbiddenWithin:      make(map[int]bool),
		onlyCanCauseNextTier: make(map[int]bool),
		nameOK:               PermissiveNames,
		logger:               slog.New(slog.DiscardHandler),
		patterns:             make(map[string][]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}
