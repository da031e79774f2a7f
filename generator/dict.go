package generator

import (
	"bufio"
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"respfuzz/pkg/log"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	dictSamplesPerKind = 10
	dictMixedSamples   = 20
	dictRealistic      = 10
)

// LoadDictionary reads an AFL dictionary. A missing file is an empty
// dictionary.
func LoadDictionary(path string) ([]string, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read dictionary %s", path)
	}
	return ParseDictionary(data), nil
}

// ParseDictionary returns the literals of an AFL dictionary: one quoted
// literal per line, optionally prefixed by name=, with \\, \" and \xNN
// decoded. Comments, blank and malformed lines are skipped, as are empty
// literals.
func ParseDictionary(data []byte) []string {
	var entries []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if i := bytes.IndexByte(line, '"'); i > 0 {
			if eq := bytes.IndexByte(line[:i], '='); eq < 0 {
				continue
			}
			line = line[i:]
		}
		if len(line) < 2 || line[0] != '"' || line[len(line)-1] != '"' {
			continue
		}
		if s := unquoteDict(line[1 : len(line)-1]); s != "" {
			entries = append(entries, s)
		}
	}
	return entries
}

func unquoteDict(b []byte) string {
	if bytes.IndexByte(b, '\\') < 0 {
		return string(b)
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}
		switch b[i+1] {
		case '\\', '"':
			out = append(out, b[i+1])
			i++
		case 'x':
			if i+3 < len(b) {
				if x, err := strconv.ParseUint(string(b[i+2:i+4]), 16, 8); err == nil {
					out = append(out, byte(x))
					i += 3
					continue
				}
			}
			out = append(out, b[i])
		default:
			out = append(out, b[i])
		}
	}
	return string(out)
}

// QuoteDict renders s as an AFL dictionary literal.
func QuoteDict(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == '"':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c < 0x20 || c >= 0x7f:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xf])
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// LoadCorpus collects argument strings from every *.txt file in dir: each
// non-empty line "CMD rest" contributes "rest". A missing dir is an empty
// corpus, unreadable files are logged and skipped.
func LoadCorpus(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrapf(err, "glob corpus %s", dir)
	}
	sort.Strings(files)
	var values []string
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			log.Warnf("skip corpus file %s: %v", file, err)
			continue
		}
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if i := strings.IndexByte(line, ' '); i > 0 && i+1 < len(line) {
				values = append(values, line[i+1:])
			}
		}
		if err = sc.Err(); err != nil {
			log.Warnf("corpus file %s read incompletely: %v", file, err)
		}
		f.Close()
	}
	return values, nil
}

// BuildDictionary returns the literals of a fresh dictionary: every
// command name not excluded, base samples of every kind, the special
// characters, the escape sequences, some mixed strings and a few
// realistic names and addresses.
func BuildDictionary(c *Context, g *CommandGenerator) []string {
	var entries []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		entries = append(entries, s)
	}
	for _, s := range g.Catalog().Schemas() {
		if !g.Excluded(s.Name) {
			add(s.Name)
		}
	}
	for _, s := range g.Focus() {
		add(s.Name)
	}
	for _, k := range Kinds() {
		for i := 0; i < dictSamplesPerKind; i++ {
			add(kinds[k].gen(c))
		}
	}
	for i := 0; i < len(SpecialChars); i++ {
		add(SpecialChars[i : i+1])
	}
	for _, esc := range EscapeSequences {
		add(esc)
	}
	for i := 0; i < dictMixedSamples; i++ {
		add(c.mixed())
	}
	for i := 0; i < dictRealistic; i++ {
		add(randomdata.SillyName())
		add(randomdata.Email())
		add(randomdata.City())
		add(randomdata.IpV4Address())
	}
	return entries
}

// WriteDictionary writes entries to path as an AFL dictionary. The file is
// guarded by an flock on path.lock so that parallel fuzzer instances never
// read a partial dictionary.
func WriteDictionary(path string, entries []string) (err error) {
	locker := flock.New(path + ".lock")
	if err = locker.Lock(); err != nil {
		return errors.Wrapf(err, "lock dictionary %s", path)
	}
	defer func() {
		if uerr := locker.Unlock(); uerr != nil {
			log.Errorf("unlock dictionary %s: %v", path, uerr)
		}
	}()
	var buf bytes.Buffer
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(QuoteDict(e))
	}
	tmp := path + ".tmp"
	if err = ioutil.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write dictionary %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, path), "rename dictionary")
}
