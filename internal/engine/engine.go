// Released under an MIT license. See LICENSE.

// Package engine evaluates hyper commands.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/hyper/internal/chunk"
	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/struct/hash"
	"github.com/michaelmacinnis/hyper/internal/common/struct/random"
	"github.com/michaelmacinnis/hyper/internal/common/type/boolean"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/engine/commands"
	"github.com/michaelmacinnis/hyper/internal/index"
	"github.com/michaelmacinnis/hyper/internal/reader"
	"github.com/michaelmacinnis/hyper/internal/system/settings"
	"github.com/michaelmacinnis/hyper/internal/types"
)

// It is the variable that holds the result of the last command.
const It = "it"

// T (engine) holds the state that hyper commands are evaluated against.
type T struct {
	sync.RWMutex

	caseSensitive bool
	current       int
	itemDelimiter string
	lineEnding    string
	permitted     map[string]bool
	recent        int

	commands  map[string]commands.Command
	index     *index.T
	log       *slog.Logger
	registry  *describe.Registry
	variables *hash.T
}

type engine = T

// New creates a new engine configured by s that logs to log.
func New(s *settings.T, log *slog.Logger) *engine {
	x := index.New(random.New(s.Seed))

	e := &engine{
		caseSensitive: s.CaseSensitive,
		itemDelimiter: s.ItemDelimiter,
		lineEnding:    s.LineEnding,
		permitted:     map[string]bool{},

		commands:  commands.Builtins(),
		index:     x,
		log:       log,
		registry:  types.New(x),
		variables: hash.New(),
	}

	e.permit(s.Permissions)

	return e
}

// Assign sets the variable called name to v.
func (e *engine) Assign(name string, v cell.I) {
	e.variables.Set(name, v)
}

// CaseSensitive returns true if text comparisons consider case.
func (e *engine) CaseSensitive() bool {
	e.RLock()
	defer e.RUnlock()

	return e.caseSensitive
}

// Configure changes the setting called name to v.
func (e *engine) Configure(name string, v cell.I) {
	s, ok := common.Text(describe.Deref(v))
	if !ok {
		panic(v.Name() + " cannot be used as a setting")
	}

	e.Lock()
	defer e.Unlock()

	switch strings.ToLower(name) {
	case "casesensitive":
		b, ok := boolean.Parse(s)
		if !ok {
			panic("casesensitive must be true or false")
		}

		e.caseSensitive = boolean.To(b).Bool()
	case "itemdelimiter":
		if s == "" {
			panic("itemdelimiter cannot be empty")
		}

		e.itemDelimiter = s
	case "lineending":
		if s == "" {
			panic("lineending cannot be empty")
		}

		e.lineEnding = s
	case "permissions":
		e.permitted = map[string]bool{}
		e.permit(settings.List(s))
	default:
		panic("no such setting: " + name)
	}

	e.log.Info("setting changed", "setting", name, "value", s)
}

// Current returns the position of the chunk most recently reached.
func (e *engine) Current() int {
	e.RLock()
	defer e.RUnlock()

	return e.current
}

// Evaluate evaluates the command c. The result is also assigned to "it".
func (e *engine) Evaluate(c reader.Command) (v cell.I, err error) {
	if len(c.Words) == 0 {
		return nil, nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		default:
			err = errors.New(fmt.Sprint(r))
		}

		err = fmt.Errorf("line %d: %w", c.Line, err)
		v = nil

		e.log.Warn("command failed", "line", c.Line, "command", c.Words[0].String(), "error", err)
	}()

	n, ok := c.Words[0].Bare()
	if !ok {
		panic(c.Words[0].String() + " is not a command")
	}

	cmd, ok := e.commands[strings.ToLower(n)]
	if !ok {
		panic("no such command: " + n)
	}

	e.log.Debug("evaluating", "line", c.Line, "command", n, "arguments", len(c.Words)-1)

	v = cmd(e, c.Words[1:])
	if v != nil {
		e.Assign(It, v)
	}

	return v, nil
}

// Index returns the engine's index resolver.
func (e *engine) Index() *index.T {
	return e.index
}

// ItemDelimiter returns the text that separates items.
func (e *engine) ItemDelimiter() string {
	e.RLock()
	defer e.RUnlock()

	return e.itemDelimiter
}

// LineEnding returns the text that separates lines.
func (e *engine) LineEnding() string {
	e.RLock()
	defer e.RUnlock()

	return e.lineEnding
}

// Lookup returns the value of the variable called name.
func (e *engine) Lookup(name string) (cell.I, bool) {
	r := e.variables.Get(name)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Names returns the words a line editor can complete: command, setting,
// chunk, type and variable names.
func (e *engine) Names() []string {
	seen := map[string]bool{}

	for n := range e.commands {
		seen[n] = true
	}

	for _, n := range commands.Settings() {
		seen[n] = true
	}

	for n := range chunk.Kinds(e.LineEnding(), e.ItemDelimiter()) {
		seen[n] = true
		seen[n+"s"] = true
	}

	for _, n := range e.registry.Names() {
		seen[n] = true
	}

	for _, n := range e.variables.Keys() {
		seen["$"+n] = true
	}

	ns := make([]string, 0, len(seen))
	for n := range seen {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}

// Permitted returns true if action has been permitted.
func (e *engine) Permitted(action string) bool {
	e.RLock()
	defer e.RUnlock()

	return e.permitted[strings.ToLower(action)]
}

// Recent returns the position of the last chunk most recently reached.
func (e *engine) Recent() int {
	e.RLock()
	defer e.RUnlock()

	return e.recent
}

// Registry returns the engine's types.
func (e *engine) Registry() *describe.Registry {
	return e.registry
}

// Visit records the range of chunks most recently reached.
func (e *engine) Visit(first, last int) {
	e.Lock()
	defer e.Unlock()

	e.current, e.recent = first, last
}

func (e *engine) permit(actions []string) {
	for _, a := range actions {
		e.permitted[strings.ToLower(a)] = true
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t engine

	// The engine can be passed to commands.
	_ = commands.Machine(&t)
}
