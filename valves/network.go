// SPDX-License-Identifier: MIT

package valves

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/apsp"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/graph"
)

// Sentinel errors for parsing and planning.
var (
	// ErrMalformed indicates a line that does not describe a valve.
	ErrMalformed = errors.New("valves: malformed line")
	// ErrUnknownValve indicates a tunnel or start naming an undeclared valve.
	ErrUnknownValve = errors.New("valves: unknown valve")
	// ErrDuplicateValve indicates a valve declared twice.
	ErrDuplicateValve = errors.New("valves: duplicate valve")
	// ErrTooManyValves indicates more non-zero valves than a plan can track.
	ErrTooManyValves = errors.New("valves: too many valves with non-zero rate")
	// ErrBadMinutes indicates a negative time budget.
	ErrBadMinutes = errors.New("valves: minutes must be non-negative")
)

// maxOpenable is the number of non-zero valves an opened-set mask can hold.
const maxOpenable = 63

var lineRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`)

// Valve is one parsed valve.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

// Network is a parsed valve network. It is read-only after Parse.
type Network struct {
	valves map[string]*Valve
	order  []string
	g      *graph.Labeled

	log  logrus.FieldLogger
	opts []dijkstra.Option
}

// Option configures a Network.
type Option func(*Network)

// WithLogger routes planner diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
			n.opts = append(n.opts, dijkstra.WithLogger(l))
		}
	}
}

// WithSearchOptions forwards opts to the searches that build distance tables.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(n *Network) { n.opts = append(n.opts, opts...) }
}

// Parse reads one valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Blank lines are skipped. Tunnels are directed as written.
func Parse(r io.Reader, opts ...Option) (*Network, error) {
	n := &Network{
		valves: make(map[string]*Valve),
		g:      graph.NewLabeled(),
		log:    discard,
	}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rate: %v", ErrMalformed, lineNo, err)
		}
		if _, dup := n.valves[m[1]]; dup {
			return nil, fmt.Errorf("%w: %s on line %d", ErrDuplicateValve, m[1], lineNo)
		}
		v := &Valve{Name: m[1], Rate: rate, Tunnels: strings.Split(m[3], ", ")}
		n.valves[v.Name] = v
		n.order = append(n.order, v.Name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valves: read: %w", err)
	}

	for _, name := range n.order {
		n.g.AddNode(name)
		for _, to := range n.valves[name].Tunnels {
			if _, ok := n.valves[to]; !ok {
				return nil, fmt.Errorf("%w: %s (tunnel from %s)", ErrUnknownValve, to, name)
			}
			n.g.AddArc(name, to)
		}
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.order) }

// Valve returns the named valve.
func (n *Network) Valve(name string) (Valve, bool) {
	v, ok := n.valves[name]
	if !ok {
		return Valve{}, false
	}
	return *v, true
}

// Graph returns the tunnel graph.
func (n *Network) Graph() graph.Graph[string] { return n.g }

// Interesting returns start followed by every other valve with a non-zero
// rate, in name order.
func (n *Network) Interesting(start string) ([]string, error) {
	if _, ok := n.valves[start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownValve, start)
	}
	out := []string{start}
	for _, name := range n.g.Nodes() {
		if name != start && n.valves[name].Rate > 0 {
			out = append(out, name)
		}
	}
	return out, nil
}

// Distances returns the tunnel distances between the interesting valves.
func (n *Network) Distances(start string) (*apsp.Table[string], error) {
	keys, err := n.Interesting(start)
	if err != nil {
		return nil, err
	}
	return apsp.Build[string](n.g, keys, n.opts...)
}

// Order lists valves in declaration order.
func (n *Network) Order() []string {
	return append([]string(nil), n.order...)
}
