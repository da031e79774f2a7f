package seedparser

import (
	"respfuzz/generator"
	"respfuzz/harness"
)

var catalog = generator.DefaultCatalog()

// Fuzz parses data as seed input and mixes it like a run would. Every
// parsed command must be accepted by the generator and survive in the
// mixed test case at most once per parsed line.
func Fuzz(data []byte) int {
	s, _ := harness.SeedFromInput(data)
	ctx := generator.NewSeededContext(s, nil, nil, 0.5)
	g := generator.NewCommandGenerator(ctx, catalog, []string{"FLUSHALL"}, nil)
	parsed, dropped := harness.ParseInput(data, g)
	for _, cmd := range parsed {
		if _, ok := g.Accept(cmd.Name); !ok {
			panic("parsed a command the generator does not accept: " + cmd.Name)
		}
	}
	cmds := harness.Mix(g, parsed, harness.DefaultMaxCommands)
	if len(cmds) < 1 || len(cmds) > harness.DefaultMaxCommands {
		panic("mixed test case out of bounds")
	}
	if len(parsed) == 0 {
		if dropped > 0 {
			return 0
		}
		return -1
	}
	return 1
}
