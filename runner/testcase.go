package runner

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"respfuzz/generator"
	"respfuzz/pkg/hashkit"
	"respfuzz/pkg/log"
	"respfuzz/pkg/types"
	"respfuzz/proto/resp"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Result is the outcome of one command: exactly one of Reply, Error or
// Timeout is set.
type Result struct {
	Command string      `json:"command" msgpack:"command"`
	Args    []string    `json:"args" msgpack:"args"`
	Reply   *resp.Value `json:"result,omitempty" msgpack:"result,omitempty"`
	Error   string      `json:"error,omitempty" msgpack:"error,omitempty"`
	Timeout bool        `json:"timeout,omitempty" msgpack:"timeout,omitempty"`
}

// Outcome classifies r. An error reply from the server is a success: the
// command was executed and answered.
func (r *Result) Outcome() types.Outcome {
	switch {
	case r.Timeout:
		return types.OutcomeTimeout
	case r.Error != "":
		return types.OutcomeError
	}
	return types.OutcomeSuccess
}

func (r *Result) String() string {
	switch r.Outcome() {
	case types.OutcomeTimeout:
		return "timeout"
	case types.OutcomeError:
		return "error: " + r.Error
	}
	if r.Reply == nil {
		return "(nil)"
	}
	return r.Reply.String()
}

// TestCase is an ordered list of commands and, once executed, their
// results in the same order.
type TestCase struct {
	Commands []generator.Command
	Results  []Result

	shuffled bool
}

// NewTestCase returns a TestCase running cmds.
func NewTestCase(cmds []generator.Command) *TestCase {
	return &TestCase{Commands: cmds}
}

// Shuffle permutes the commands with rnd. Only the first call has an
// effect.
func (tc *TestCase) Shuffle(rnd *rand.Rand) {
	if tc.shuffled {
		return
	}
	tc.shuffled = true
	rnd.Shuffle(len(tc.Commands), func(i, j int) {
		tc.Commands[i], tc.Commands[j] = tc.Commands[j], tc.Commands[i]
	})
}

// Shuffled reports whether Shuffle was called.
func (tc *TestCase) Shuffled() bool {
	return tc.shuffled
}

// Fingerprint hashes the wire encoding of the commands with h.
func (tc *TestCase) Fingerprint(h hashkit.Func) uint32 {
	var buf []byte
	for _, cmd := range tc.Commands {
		buf = append(buf, resp.EncodeCommand(cmd.Argv()...)...)
	}
	return h(buf)
}

// FileName returns the name a TestCase is saved under.
func (tc *TestCase) FileName(h hashkit.Func, format types.SaveFormat) string {
	return fmt.Sprintf("case-%08x%s", tc.Fingerprint(h), format.Ext())
}

// commandTuple is the persisted form of a command: [name, [args...]].
type commandTuple struct {
	_msgpack struct{} `msgpack:",as_array"`

	Name string
	Args []string
}

func (t commandTuple) MarshalJSON() ([]byte, error) {
	args := t.Args
	if args == nil {
		args = []string{}
	}
	return json.Marshal([]interface{}{t.Name, args})
}

func (t *commandTuple) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) == 0 || len(raw) > 2 {
		return errors.Errorf("command must be [name, [args]], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.Name); err != nil {
		return err
	}
	t.Args = nil
	if len(raw) == 2 {
		return json.Unmarshal(raw[1], &t.Args)
	}
	return nil
}

type testCaseFile struct {
	Commands []commandTuple `json:"commands" msgpack:"commands"`
	Results  []Result       `json:"results,omitempty" msgpack:"results,omitempty"`
}

// Marshal encodes tc in format.
func (tc *TestCase) Marshal(format types.SaveFormat) ([]byte, error) {
	f := testCaseFile{Commands: make([]commandTuple, len(tc.Commands)), Results: tc.Results}
	for i, cmd := range tc.Commands {
		f.Commands[i] = commandTuple{Name: cmd.Name, Args: cmd.Args}
	}
	if format == types.SaveFormatMsgpack {
		return msgpack.Marshal(&f)
	}
	return json.MarshalIndent(&f, "", "  ")
}

// Unmarshal decodes a TestCase encoded in format.
func Unmarshal(data []byte, format types.SaveFormat) (*TestCase, error) {
	var (
		f   testCaseFile
		err error
	)
	if format == types.SaveFormatMsgpack {
		err = msgpack.Unmarshal(data, &f)
	} else if err = json.Unmarshal(data, &f); err != nil {
		// keep the commands when the results cannot be decoded
		var cf struct {
			Commands []commandTuple `json:"commands"`
		}
		if json.Unmarshal(data, &cf) == nil {
			log.Warnf("test case results ignored: %v", err)
			f, err = testCaseFile{Commands: cf.Commands}, nil
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s test case", format)
	}
	tc := &TestCase{Commands: make([]generator.Command, len(f.Commands)), Results: f.Results}
	for i, t := range f.Commands {
		tc.Commands[i] = generator.Command{Name: t.Name, Args: t.Args}
	}
	return tc, nil
}

// Save writes tc into dir and returns the file path. Writers of the same
// directory are serialized by an flock.
func (tc *TestCase) Save(dir string, h hashkit.Func, format types.SaveFormat) (path string, err error) {
	data, err := tc.Marshal(format)
	if err != nil {
		return "", errors.Wrap(err, "encode test case")
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	locker := flock.New(filepath.Join(dir, ".lock"))
	if err = locker.Lock(); err != nil {
		return "", errors.Wrapf(err, "lock %s", dir)
	}
	defer locker.Unlock()

	path = filepath.Join(dir, tc.FileName(h, format))
	tmp, err := ioutil.TempFile(dir, ".case-")
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "write test case")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "close test case")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "rename test case")
	}
	return path, nil
}

// Load reads a TestCase saved by Save, the extension selects the format.
func Load(path string) (*TestCase, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	format := types.SaveFormatJSON
	if strings.HasSuffix(path, types.SaveFormatMsgpack.Ext()) {
		format = types.SaveFormatMsgpack
	}
	return Unmarshal(data, format)
}
