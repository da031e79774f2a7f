package harness

import (
	"context"
	"io"
	"io/ioutil"
	"time"

	"respfuzz/generator"
	"respfuzz/pkg/hashkit"
	"respfuzz/pkg/log"
	"respfuzz/pkg/prom"
	"respfuzz/pkg/types"
	"respfuzz/runner"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
)

// DefaultMaxCommands bounds the size of a test case.
const DefaultMaxCommands = 20

type stage int

const (
	stageStart stage = iota
	stageReadInput
	stageParseInput
	stageMix
	stageShuffle
	stageExecute
	stageReport
	stageTerminate
)

var stageNames = [...]string{
	stageStart:      "start",
	stageReadInput:  "read_input",
	stageParseInput: "parse_input",
	stageMix:        "mix",
	stageShuffle:    "shuffle",
	stageExecute:    "execute",
	stageReport:     "report",
	stageTerminate:  "terminate",
}

func (s stage) String() string {
	return stageNames[s]
}

// Options configures a Harness.
type Options struct {
	MixRatio    float64
	MaxCommands int

	// Seed fixes the random stream, 0 derives it from the input.
	Seed    int64
	Exclude []string
	Focus   []string
	Dict    []string
	Corpus  []string

	// SaveDir keeps every executed test case when not empty.
	SaveDir    string
	SaveFormat types.SaveFormat
	Hash       hashkit.Func

	// ProbeAddr is checked with an independent client after a failed
	// connect, empty disables the probe.
	ProbeAddr    string
	ProbeTimeout time.Duration
}

// Report describes one run. It is returned even when the run failed.
type Report struct {
	RunID    string           `json:"run_id"`
	Seed     int64            `json:"seed"`
	Parsed   int              `json:"parsed"`
	Dropped  int              `json:"dropped"`
	TestCase *runner.TestCase `json:"-"`
	Stats    runner.RunStats  `json:"stats"`
	SavedTo  string           `json:"saved_to,omitempty"`
	Err      error            `json:"-"`
}

// Harness turns seed input into a test case and runs it.
type Harness struct {
	opts    Options
	catalog *generator.Catalog
	runner  *runner.Runner
	stage   stage
}

// New returns a Harness executing through r.
func New(opts Options, catalog *generator.Catalog, r *runner.Runner) *Harness {
	if opts.MaxCommands <= 0 {
		opts.MaxCommands = DefaultMaxCommands
	}
	if !opts.SaveFormat.Valid() {
		opts.SaveFormat = types.SaveFormatJSON
	}
	if opts.Hash == nil {
		opts.Hash, _ = hashkit.New(hashkit.HashMethodMurmur)
	}
	return &Harness{opts: opts, catalog: catalog, runner: r}
}

func (h *Harness) enter(s stage) {
	h.stage = s
	log.V(3).Infof("harness stage %s", s)
}

func (h *Harness) seed(input []byte) int64 {
	if h.opts.Seed != 0 {
		return h.opts.Seed
	}
	if s, ok := SeedFromInput(input); ok {
		return s
	}
	return time.Now().UnixNano()
}

func (h *Harness) newGenerator(seed int64) *generator.CommandGenerator {
	ctx := generator.NewSeededContext(seed, h.opts.Dict, h.opts.Corpus, h.opts.MixRatio)
	return generator.NewCommandGenerator(ctx, h.catalog, h.opts.Exclude, h.opts.Focus)
}

// Run reads in once, builds a test case from it and executes it.
// An unreadable or empty input runs a fully generated test case.
func (h *Harness) Run(ctx context.Context, in io.Reader) *Report {
	rep := &Report{RunID: uuid.New()}
	h.enter(stageStart)

	h.enter(stageReadInput)
	var input []byte
	if in != nil {
		var err error
		if input, err = ioutil.ReadAll(in); err != nil {
			log.Warnf("read input failed, running generated commands only: %v", err)
			input = nil
		}
	}
	rep.Seed = h.seed(input)
	g := h.newGenerator(rep.Seed)

	h.enter(stageParseInput)
	parsed := h.parse(input, g, rep)

	h.enter(stageMix)
	tc := runner.NewTestCase(Mix(g, parsed, h.opts.MaxCommands))

	h.enter(stageShuffle)
	tc.Shuffle(g.Context().Rand())
	rep.TestCase = tc

	h.execute(ctx, tc, rep)
	return rep
}

func (h *Harness) parse(input []byte, g *generator.CommandGenerator, rep *Report) (parsed []generator.Command) {
	if len(input) == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("parse input panic, running generated commands only: %v", r)
			parsed, rep.Parsed, rep.Dropped = nil, 0, 0
		}
	}()
	parsed, rep.Dropped = ParseInput(input, g)
	rep.Parsed = len(parsed)
	prom.DroppedAdd(rep.Dropped)
	if rep.Dropped > 0 {
		log.Infof("parsed %d commands from input, dropped %d lines", rep.Parsed, rep.Dropped)
	}
	return
}

// Mix builds a test case of 1 to max commands. With parsed commands
// available up to half of it, plus one, is sampled from them without
// replacement; the rest is generated.
func Mix(g *generator.CommandGenerator, parsed []generator.Command, max int) []generator.Command {
	rnd := g.Context().Rand()
	n := 1 + rnd.Intn(max)
	cmds := make([]generator.Command, 0, n)
	if len(parsed) > 0 {
		k := n/2 + 1
		if len(parsed) < k {
			k = len(parsed)
		}
		for _, i := range rnd.Perm(len(parsed))[:k] {
			cmds = append(cmds, parsed[i])
		}
	}
	for len(cmds) < n {
		cmds = append(cmds, g.Generate())
	}
	return cmds
}

func (h *Harness) execute(ctx context.Context, tc *runner.TestCase, rep *Report) {
	h.enter(stageExecute)
	before := h.runner.Stats()
	rep.Err = h.runner.Execute(ctx, tc)
	after := h.runner.Stats()
	rep.Stats = runner.RunStats{
		Total:      after.Total - before.Total,
		Successful: after.Successful - before.Successful,
		Errors:     after.Errors - before.Errors,
		Timeouts:   after.Timeouts - before.Timeouts,
	}
	prom.CaseIncr()
	if rep.Err != nil && errors.Cause(rep.Err) != context.Canceled && h.opts.ProbeAddr != "" {
		if _, ok := rep.Err.(*runner.TransportError); ok {
			if line, err := runner.Probe(h.opts.ProbeAddr, h.opts.ProbeTimeout); err != nil {
				log.Errorf("probe %s failed: %v", h.opts.ProbeAddr, err)
			} else {
				log.Warnf("probe %s answered %q, connect failed anyway", h.opts.ProbeAddr, line)
			}
		}
	}

	h.enter(stageReport)
	if h.opts.SaveDir != "" {
		path, err := tc.Save(h.opts.SaveDir, h.opts.Hash, h.opts.SaveFormat)
		if err != nil {
			log.Errorf("save test case: %v", err)
		} else {
			rep.SavedTo = path
		}
	}
	log.Infof("run %s seed %d: %d commands (%d from input, %d lines dropped), %s",
		rep.RunID, rep.Seed, len(tc.Commands), rep.Parsed, rep.Dropped, rep.Stats)
	h.enter(stageTerminate)
}

// Replay executes a saved test case as is, without shuffling it again.
func (h *Harness) Replay(ctx context.Context, tc *runner.TestCase) *Report {
	rep := &Report{RunID: uuid.New(), Parsed: len(tc.Commands), TestCase: tc}
	h.enter(stageStart)
	h.execute(ctx, tc, rep)
	return rep
}

// Loop runs generated test cases until ctx is done or, when iterations is
// positive, that many have run. Every test case draws from one random
// stream seeded once.
func (h *Harness) Loop(ctx context.Context, iterations int) (stats runner.RunStats, err error) {
	seed := h.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := h.newGenerator(seed)
	log.Infof("loop start seed %d", seed)
	for i := 0; iterations <= 0 || i < iterations; i++ {
		if err = ctx.Err(); err != nil {
			return
		}
		rep := &Report{RunID: uuid.New(), Seed: seed}
		tc := runner.NewTestCase(Mix(g, nil, h.opts.MaxCommands))
		tc.Shuffle(g.Context().Rand())
		rep.TestCase = tc
		h.execute(ctx, tc, rep)
		stats.Merge(rep.Stats)
		if errors.Cause(rep.Err) == context.Canceled {
			return stats, rep.Err
		}
	}
	return
}
