package harness

import (
	"encoding/binary"
	"strings"

	"respfuzz/generator"
	"respfuzz/pkg/log"
)

// SeedFromInput derives a run seed from the first four input bytes, read
// as a little endian uint32.
func SeedFromInput(data []byte) (int64, bool) {
	if len(data) < 4 {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint32(data[:4])), true
}

// ParseInput turns seed input into commands. Every non-empty line is
// "NAME arg1 arg2 ...", split on single spaces; the name is matched case
// insensitively against the commands g accepts, a two word name such as
// "ACL CAT" is tried before the first word alone. Lines whose first word
// is excluded, or matching nothing, are dropped and counted.
func ParseInput(data []byte, g *generator.CommandGenerator) (cmds []generator.Command, dropped int) {
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(strings.TrimSpace(strings.ToValidUTF8(line, "")), " ")
		cmd, ok := matchCommand(parts, g)
		if !ok {
			dropped++
			log.V(1).Infof("drop seed line %q: unknown or excluded command", line)
			continue
		}
		cmds = append(cmds, cmd)
	}
	return
}

func matchCommand(parts []string, g *generator.CommandGenerator) (generator.Command, bool) {
	if g.Excluded(strings.ToUpper(parts[0])) {
		return generator.Command{}, false
	}
	if len(parts) >= 2 {
		name := strings.ToUpper(parts[0] + " " + parts[1])
		if _, ok := g.Accept(name); ok {
			return generator.Command{Name: name, Args: parts[2:]}, true
		}
	}
	name := strings.ToUpper(parts[0])
	if _, ok := g.Accept(name); ok {
		return generator.Command{Name: name, Args: parts[1:]}, true
	}
	return generator.Command{}, false
}
