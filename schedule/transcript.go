package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aeromesh/skyroute/teg"
)

// Schedule is the rendered turn-by-turn movement transcript (spec §4.6):
// one line per turn that has at least one drone movement token, in
// ascending turn order, tokens within a line ordered by ascending drone ID.
type Schedule struct {
	lines []string
}

// String joins the transcript's lines with newlines, matching the format
// spec.md renders in its worked examples.
func (s Schedule) String() string { return strings.Join(s.lines, "\n") }

// Lines returns the transcript's lines for callers that want to inspect
// individual turns programmatically rather than the joined string.
func (s Schedule) Lines() []string { return s.lines }

// cursor tracks one drone's position within its own Route while Emit walks
// the shared turn axis.
type cursor struct {
	route *Route
	ptr   int // index of the step the drone currently occupies or is departing
}

func (c *cursor) done() bool { return c.ptr >= len(c.route.Steps)-1 }

// Emit walks turns [0, maxTurn) and renders the movement token for every
// drone still in flight at each turn, per spec §4.6:
//   - a wait edge (same hub) emits nothing;
//   - a one-turn move emits "D<id>-<destHub>" on its single turn;
//   - a two-turn (RESTRICTED-target) move emits "D<id>-<srcHub>-<destHub>"
//     on BOTH turns it consumes, per spec.md's worked restricted-traversal
//     example.
//
// maxTurn is not a parameter: Emit computes it as the maximum final arrival
// turn across all routes.
func Emit(g *teg.Graph, routes []Route) Schedule {
	ordered := make([]Route, len(routes))
	copy(ordered, routes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Drone < ordered[j].Drone })

	cursors := make([]*cursor, len(ordered))
	maxTurn := 0
	for i := range ordered {
		cursors[i] = &cursor{route: &ordered[i]}
		if n := len(ordered[i].Steps); n > 0 {
			if turn := g.Node(ordered[i].Steps[n-1].Node).Turn; turn > maxTurn {
				maxTurn = turn
			}
		}
	}

	var lines []string
	for t := 0; t < maxTurn; t++ {
		var tokens []string
		for _, c := range cursors {
			if tok, ok := c.advance(g, t); ok {
				tokens = append(tokens, tok)
			}
		}
		if len(tokens) > 0 {
			lines = append(lines, strings.Join(tokens, " "))
		}
	}
	return Schedule{lines: lines}
}

// advance emits this cursor's token for turn t, if any, and advances its
// internal pointer once the underlying move or wait edge has fully
// resolved (spec §4.6's "second consecutive turn" rule for RESTRICTED
// traversals).
func (c *cursor) advance(g *teg.Graph, t int) (string, bool) {
	if c.done() {
		return "", false
	}
	cur := g.Node(c.route.Steps[c.ptr].Node)
	next := g.Node(c.route.Steps[c.ptr+1].Node)
	duration := next.Turn - cur.Turn

	switch {
	case t == cur.Turn:
		var tok string
		wait := next.Hub.Name == cur.Hub.Name
		switch {
		case wait:
			// no token
		case duration == 2:
			tok = fmt.Sprintf("D%d-%s-%s", c.route.Drone, cur.Hub.Name, next.Hub.Name)
		default:
			tok = fmt.Sprintf("D%d-%s", c.route.Drone, next.Hub.Name)
		}
		if duration == 1 {
			c.ptr++
		}
		if tok == "" {
			return "", false
		}
		return tok, true

	case duration == 2 && t == cur.Turn+1:
		tok := fmt.Sprintf("D%d-%s-%s", c.route.Drone, cur.Hub.Name, next.Hub.Name)
		c.ptr++
		return tok, true

	default:
		return "", false
	}
}
