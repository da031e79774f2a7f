package generator

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// SpecKind tells which field of an ArgSpec is set.
type SpecKind uint8

// ArgSpec shapes.
const (
	SpecKindOf SpecKind = iota
	SpecLiteral
	SpecAlternatives
)

// ArgSpec is one required argument: a generated Kind, a literal token, or
// one literal out of a set of alternatives.
type ArgSpec struct {
	Spec         SpecKind
	Kind         Kind
	Token        string
	Alternatives []string
}

// OptionalShape tells how an OptionalArg expands.
type OptionalShape uint8

// OptionalArg shapes.
const (
	// OptLiteral emits Token.
	OptLiteral OptionalShape = iota
	// OptAlternatives emits one of Alternatives.
	OptAlternatives
	// OptTokenWithType emits Token then expands Args.
	OptTokenWithType
	// OptValues expands Args.
	OptValues
)

// OptionalArg is one optional clause of a command.
type OptionalArg struct {
	Shape        OptionalShape
	Token        string
	Alternatives []string
	// Args follow Token for OptTokenWithType and make up OptValues.
	Args []ArgSpec
}

// Schema is the argument grammar of one command.
type Schema struct {
	Name     string
	Required []ArgSpec
	Optional []OptionalArg
}

// CommandDef is the textual form of a Schema.
//
// Args is a space separated list of required arguments. Optional is a ';'
// separated list of clauses, each one of:
//
//	WITHSCORES          literal token
//	NX|XX               one of the alternatives
//	MATCH pattern       token followed by generated values
//	ON HASH|JSON        token followed by one of the alternatives
//	field value ...     generated values
//
// Lower case words name argument kinds (see LookupKind), anything else is a
// literal. A trailing "..." is accepted and ignored, variadic clauses are
// expanded once per draw.
type CommandDef struct {
	Name     string
	Args     string
	Optional string
}

func parseArgSpec(tok string) ArgSpec {
	if strings.Contains(tok, "|") {
		return ArgSpec{Spec: SpecAlternatives, Alternatives: strings.Split(tok, "|")}
	}
	if k, ok := LookupKind(tok); ok {
		return ArgSpec{Spec: SpecKindOf, Kind: k}
	}
	return ArgSpec{Spec: SpecLiteral, Token: tok}
}

func isLiteralWord(tok string) bool {
	return strings.ToUpper(tok) == tok
}

func parseOptional(clause string) (OptionalArg, error) {
	fields := strings.Fields(clause)
	if n := len(fields); n > 0 && fields[n-1] == "..." {
		fields = fields[:n-1]
	}
	if len(fields) == 0 {
		return OptionalArg{}, errors.Errorf("empty optional clause %q", clause)
	}
	head := parseArgSpec(fields[0])
	if head.Spec == SpecLiteral && !isLiteralWord(head.Token) {
		return OptionalArg{}, errors.Errorf("unknown argument %q in clause %q", head.Token, clause)
	}
	if len(fields) == 1 {
		switch head.Spec {
		case SpecAlternatives:
			return OptionalArg{Shape: OptAlternatives, Alternatives: head.Alternatives}, nil
		case SpecLiteral:
			return OptionalArg{Shape: OptLiteral, Token: head.Token}, nil
		}
		return OptionalArg{Shape: OptValues, Args: []ArgSpec{head}}, nil
	}
	opt := OptionalArg{Shape: OptValues, Args: []ArgSpec{head}}
	if head.Spec == SpecLiteral {
		opt = OptionalArg{Shape: OptTokenWithType, Token: head.Token}
	}
	for _, f := range fields[1:] {
		spec := parseArgSpec(f)
		if spec.Spec == SpecLiteral {
			return OptionalArg{}, errors.Errorf("unexpected literal %q in clause %q", f, clause)
		}
		opt.Args = append(opt.Args, spec)
	}
	return opt, nil
}

// ParseSchema turns a CommandDef into a Schema.
func ParseSchema(def CommandDef) (*Schema, error) {
	name := strings.Join(strings.Fields(strings.ToUpper(def.Name)), " ")
	if name == "" {
		return nil, errors.New("empty command name")
	}
	s := &Schema{Name: name}
	for _, tok := range strings.Fields(def.Args) {
		spec := parseArgSpec(tok)
		if spec.Spec == SpecLiteral && !isLiteralWord(tok) {
			return nil, errors.Errorf("%s: unknown argument %q", name, tok)
		}
		s.Required = append(s.Required, spec)
	}
	if strings.TrimSpace(def.Optional) != "" {
		for _, clause := range strings.Split(def.Optional, ";") {
			opt, err := parseOptional(clause)
			if err != nil {
				return nil, errors.Wrap(err, name)
			}
			s.Optional = append(s.Optional, opt)
		}
	}
	return s, nil
}

// Catalog is the immutable command table, in definition order.
type Catalog struct {
	schemas []*Schema
	byName  map[string]*Schema
}

// NewCatalog parses defs. Duplicate names are an error.
func NewCatalog(defs []CommandDef) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*Schema, len(defs))}
	for _, def := range defs {
		s, err := ParseSchema(def)
		if err != nil {
			return nil, err
		}
		if _, ok := c.byName[s.Name]; ok {
			return nil, errors.Errorf("duplicate command %q", s.Name)
		}
		c.byName[s.Name] = s
		c.schemas = append(c.schemas, s)
	}
	return c, nil
}

// MustNewCatalog is NewCatalog that panics on error.
func MustNewCatalog(defs []CommandDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DefaultCatalog returns the built in command table.
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNewCatalog(commandDefs)
	})
	return defaultCatalog
}

// Lookup finds a command by its upper case name.
func (c *Catalog) Lookup(name string) (*Schema, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Schemas returns the commands in definition order.
func (c *Catalog) Schemas() []*Schema {
	return c.schemas
}

// Names returns the command names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.schemas))
	for i, s := range c.schemas {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of commands.
func (c *Catalog) Len() int {
	return len(c.schemas)
}
