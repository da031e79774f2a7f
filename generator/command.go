package generator

import (
	"strings"

	"respfuzz/pkg/conv"
)

const (
	// FocusSingleProb is the chance of picking the focus command when there
	// is exactly one.
	FocusSingleProb = 0.30
	// FocusMultiProb is the chance of picking one of several focus commands.
	FocusMultiProb = 0.50
	// OptionalProb is the chance of adding optional arguments at all.
	OptionalProb = 0.7
)

// Command is one generated or parsed command.
type Command struct {
	Name string
	Args []string
}

// Argv returns the wire tokens: a container name such as "ACL CAT" is
// split into its words, followed by the arguments.
func (c Command) Argv() []string {
	words := strings.Fields(c.Name)
	argv := make([]string, 0, len(words)+len(c.Args))
	argv = append(argv, words...)
	return append(argv, c.Args...)
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandGenerator draws commands from a catalog.
type CommandGenerator struct {
	ctx     *Context
	catalog *Catalog

	excluded  map[string]struct{}
	available []*Schema
	focus     []*Schema
}

// NewCommandGenerator builds a generator over catalog. Exclusions win over
// focus, names missing from the catalog are ignored. When every command is
// excluded the full catalog is used for generation.
func NewCommandGenerator(ctx *Context, catalog *Catalog, exclude, focus []string) *CommandGenerator {
	g := &CommandGenerator{
		ctx:      ctx,
		catalog:  catalog,
		excluded: make(map[string]struct{}, len(exclude)),
	}
	for _, name := range exclude {
		g.excluded[normalizeName(name)] = struct{}{}
	}
	for _, s := range catalog.Schemas() {
		if !g.Excluded(s.Name) {
			g.available = append(g.available, s)
		}
	}
	if len(g.available) == 0 {
		g.available = catalog.Schemas()
	}
	seen := make(map[string]struct{}, len(focus))
	for _, name := range focus {
		name = normalizeName(name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if s, ok := catalog.Lookup(name); ok && !g.Excluded(name) {
			g.focus = append(g.focus, s)
		}
	}
	if ctx.names == nil {
		ctx.names = catalog.Names()
	}
	return g
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(conv.UpperASCII(name)), " ")
}

// Context returns the generation context.
func (g *CommandGenerator) Context() *Context {
	return g.ctx
}

// Catalog returns the command table.
func (g *CommandGenerator) Catalog() *Catalog {
	return g.catalog
}

// Excluded reports whether name is in the exclusion set.
func (g *CommandGenerator) Excluded(name string) bool {
	_, ok := g.excluded[name]
	return ok
}

// Accept returns the schema of name if it is in the catalog and not
// excluded.
func (g *CommandGenerator) Accept(name string) (*Schema, bool) {
	if g.Excluded(name) {
		return nil, false
	}
	return g.catalog.Lookup(name)
}

// Focus returns the effective focus commands.
func (g *CommandGenerator) Focus() []*Schema {
	return g.focus
}

// SelectCommand picks the next command.
func (g *CommandGenerator) SelectCommand() *Schema {
	r := g.ctx.rnd
	switch len(g.focus) {
	case 0:
	case 1:
		if r.Float64() < FocusSingleProb {
			return g.focus[0]
		}
	default:
		if r.Float64() < FocusMultiProb {
			return g.focus[r.Intn(len(g.focus))]
		}
	}
	return g.available[r.Intn(len(g.available))]
}

// BuildArgs expands the required arguments of s in order, then, with
// probability OptionalProb, a random sized sample of its optional clauses
// in sampled order.
func (g *CommandGenerator) BuildArgs(s *Schema) []string {
	r := g.ctx.rnd
	args := make([]string, 0, len(s.Required))
	for i := range s.Required {
		args = g.appendSpec(args, &s.Required[i])
	}
	if n := len(s.Optional); n > 0 && r.Float64() < OptionalProb {
		k := r.Intn(n + 1)
		for _, i := range r.Perm(n)[:k] {
			args = g.appendOptional(args, &s.Optional[i])
		}
	}
	return args
}

func (g *CommandGenerator) appendSpec(args []string, spec *ArgSpec) []string {
	switch spec.Spec {
	case SpecLiteral:
		return append(args, spec.Token)
	case SpecAlternatives:
		return append(args, spec.Alternatives[g.ctx.rnd.Intn(len(spec.Alternatives))])
	}
	return append(args, g.ctx.Value(spec.Kind))
}

func (g *CommandGenerator) appendOptional(args []string, opt *OptionalArg) []string {
	switch opt.Shape {
	case OptLiteral:
		return append(args, opt.Token)
	case OptAlternatives:
		return append(args, opt.Alternatives[g.ctx.rnd.Intn(len(opt.Alternatives))])
	case OptTokenWithType:
		args = append(args, opt.Token)
	}
	for i := range opt.Args {
		args = g.appendSpec(args, &opt.Args[i])
	}
	return args
}

// Generate selects a command and builds its arguments.
func (g *CommandGenerator) Generate() Command {
	s := g.SelectCommand()
	return Command{Name: s.Name, Args: g.BuildArgs(s)}
}

// GenerateN returns n generated commands.
func (g *CommandGenerator) GenerateN(n int) []Command {
	cmds := make([]Command, n)
	for i := range cmds {
		cmds[i] = g.Generate()
	}
	return cmds
}
