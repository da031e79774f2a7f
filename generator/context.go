package generator

import (
	"math/rand"
	"strings"
)

const (
	// SpecialChars are appended to, or mixed into, textual values.
	SpecialChars = `!@#$%^&*()-_=+[]{}|;:'",.<>/?\`
	// DefaultMixRatio is the default chance of drawing a pooled literal.
	DefaultMixRatio = 0.9
)

// EscapeSequences are two character escapes, kept in their source form.
var EscapeSequences = []string{`\\`, `\n`, `\r`, `\t`, `\"`, `\'`, `\0`, `\a`, `\b`, `\f`, `\v`}

// Context carries everything value generation reads: the random stream and
// the literal pools. One Context serves a whole run and is not safe for
// concurrent use.
type Context struct {
	rnd *rand.Rand

	// Dict holds the literal dictionary entries.
	Dict []string
	// Corpus holds values captured from earlier inputs.
	Corpus []string
	// MixRatio is the chance in [0,1] that a value comes from the pools.
	MixRatio float64

	names []string
}

// NewContext returns a Context drawing from rnd.
func NewContext(rnd *rand.Rand, dict, corpus []string, mixRatio float64) *Context {
	return &Context{rnd: rnd, Dict: dict, Corpus: corpus, MixRatio: mixRatio}
}

// NewSeededContext returns a Context with its own stream seeded by seed.
func NewSeededContext(seed int64, dict, corpus []string, mixRatio float64) *Context {
	return NewContext(rand.New(rand.NewSource(seed)), dict, corpus, mixRatio)
}

// Rand returns the random stream shared by every draw of the run.
func (c *Context) Rand() *rand.Rand {
	return c.rnd
}

// Value returns a value for k.
//
// With probability MixRatio, and when a pool is not empty, it is a literal
// picked from the corpus or the dictionary (50/50 when both are loaded).
// Otherwise it is synthesized for k, possibly decorated with special
// characters, escape sequences, or replaced by a mixed or binary string for
// the kinds that allow it.
func (c *Context) Value(k Kind) string {
	if c.rnd.Float64() < c.MixRatio {
		if s, ok := c.pooled(); ok {
			return s
		}
	}
	return c.Synthetic(k)
}

// ValueFor is Value for an argument name. A name that resolves to no kind
// is returned unchanged when the pools are not used.
func (c *Context) ValueFor(name string) string {
	if k, ok := LookupKind(name); ok {
		return c.Value(k)
	}
	if c.rnd.Float64() < c.MixRatio {
		if s, ok := c.pooled(); ok {
			return s
		}
	}
	return name
}

func (c *Context) pooled() (string, bool) {
	switch {
	case len(c.Corpus) > 0 && len(c.Dict) > 0:
		if c.rnd.Float64() < 0.5 {
			return c.pick(c.Corpus), true
		}
		return c.pick(c.Dict), true
	case len(c.Corpus) > 0:
		return c.pick(c.Corpus), true
	case len(c.Dict) > 0:
		return c.pick(c.Dict), true
	}
	return "", false
}

func (c *Context) pick(pool []string) string {
	return pool[c.rnd.Intn(len(pool))]
}

// Synthetic generates a value for k without looking at the pools.
func (c *Context) Synthetic(k Kind) string {
	info := &kinds[k]
	v := c.rnd.Float64()
	switch {
	case v < 0.2 && info.traits&traitSuffix != 0:
		return info.gen(c) + c.special()
	case v < 0.4 && info.traits&traitSuffix != 0:
		return info.gen(c) + c.escape()
	case v < 0.6 && info.traits&traitFree != 0:
		return c.mixed()
	case v < 0.8 && info.traits&traitFree != 0:
		return c.binary()
	}
	return info.gen(c)
}

func (c *Context) special() string {
	return string(SpecialChars[c.rnd.Intn(len(SpecialChars))])
}

func (c *Context) escape() string {
	return EscapeSequences[c.rnd.Intn(len(EscapeSequences))]
}

// mixed joins 5 to 20 fragments, each a letter or digit, a special character
// or an escape sequence.
func (c *Context) mixed() string {
	n := 5 + c.rnd.Intn(16)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		switch c.rnd.Intn(3) {
		case 0:
			sb.WriteByte(alnum[c.rnd.Intn(len(alnum))])
		case 1:
			sb.WriteString(c.special())
		default:
			sb.WriteString(c.escape())
		}
	}
	return sb.String()
}

// binary spells 1 to 10 random bytes as \x followed by their hex digits.
func (c *Context) binary() string {
	n := 1 + c.rnd.Intn(10)
	b := make([]byte, 2, 2+2*n)
	b[0], b[1] = '\\', 'x'
	for i := 0; i < n; i++ {
		x := c.rnd.Intn(256)
		b = append(b, hexDigits[x>>4], hexDigits[x&0xf])
	}
	return string(b)
}
