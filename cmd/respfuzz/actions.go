package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"respfuzz/config"
	"respfuzz/generator"
	"respfuzz/harness"
	"respfuzz/pkg/hashkit"
	"respfuzz/pkg/log"
	"respfuzz/runner"
	"respfuzz/version"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func newHarness(c *config.Config) (*harness.Harness, *runner.Runner, error) {
	cat := generator.DefaultCatalog()
	checkFocus(c, cat)
	dict, corpus := loadPools(c)
	hash, err := hashkit.New(c.Fuzz.Fingerprint)
	if err != nil {
		return nil, nil, err
	}
	dial, read, write := c.Target.Timeouts()
	r := runner.New(&runner.TCPDialer{
		Address:      c.Target.Addr(),
		DialTimeout:  dial,
		ReadTimeout:  read,
		WriteTimeout: write,
	})
	h := harness.New(harness.Options{
		MixRatio:     c.Fuzz.MixRatio,
		MaxCommands:  c.Fuzz.MaxCommands,
		Seed:         c.Fuzz.Seed,
		Exclude:      c.Fuzz.Exclude,
		Focus:        c.Fuzz.Focus,
		Dict:         dict,
		Corpus:       corpus,
		SaveDir:      c.Fuzz.SaveDir,
		SaveFormat:   c.Fuzz.SaveFormat,
		Hash:         hash,
		ProbeAddr:    c.Target.Addr(),
		ProbeTimeout: read,
	}, cat, r)
	return h, r, nil
}

func runContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go signalHandler(cancel)
	return ctx
}

func fuzzAction(ctx *cli.Context) error {
	c, release, err := setup()
	if err != nil {
		return err
	}
	defer release()
	h, r, err := newHarness(c)
	if err != nil {
		return err
	}
	defer r.Close()
	log.Infof("respfuzz version[%s] fuzzing %s", version.Str(), c.Target.Addr())
	rep := h.Run(runContext(), os.Stdin)
	if rep.Err != nil {
		log.Errorf("run %s finished with error: %v", rep.RunID, rep.Err)
	}
	printReport(ctx.App.Writer, rep)
	return nil
}

// printReport writes the summary of a run. Failed commands do not fail the
// process, the report carries them.
func printReport(w io.Writer, rep *harness.Report) {
	fmt.Fprintf(w, "run: %s, seed: %d, parsed: %d, dropped: %d\n", rep.RunID, rep.Seed, rep.Parsed, rep.Dropped)
	fmt.Fprintln(w, rep.Stats.String())
	if rep.SavedTo != "" {
		fmt.Fprintf(w, "saved: %s\n", rep.SavedTo)
	}
	if rep.Err != nil {
		fmt.Fprintf(w, "error: %v\n", rep.Err)
	}
}

func runAction(ctx *cli.Context) error {
	c, release, err := setup()
	if err != nil {
		return err
	}
	defer release()
	h, r, err := newHarness(c)
	if err != nil {
		return err
	}
	defer r.Close()
	log.Infof("respfuzz version[%s] looping against %s", version.Str(), c.Target.Addr())
	stats, err := h.Loop(runContext(), iterations)
	fmt.Fprintln(ctx.App.Writer, stats.String())
	if err == context.Canceled {
		return nil
	}
	return err
}

func replayAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		cli.ShowCommandHelp(ctx, "replay")
		return errors.New("missing test case file")
	}
	c, release, err := setup()
	if err != nil {
		return err
	}
	defer release()
	tc, err := runner.Load(path)
	if err != nil {
		return err
	}
	h, r, err := newHarness(c)
	if err != nil {
		return err
	}
	defer r.Close()
	rep := h.Replay(runContext(), tc)
	for i := range tc.Results {
		res := &tc.Results[i]
		fmt.Fprintf(ctx.App.Writer, "%d) %s -> %s\n", i+1, tc.Commands[i], res)
	}
	fmt.Fprintln(ctx.App.Writer, rep.Stats.String())
	return rep.Err
}

func dictAction(ctx *cli.Context) error {
	c, release, err := setup()
	if err != nil {
		return err
	}
	defer release()
	path := output
	if path == "" {
		path = c.Fuzz.DictFile
	}
	cat := generator.DefaultCatalog()
	checkFocus(c, cat)
	s := c.Fuzz.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	gctx := generator.NewSeededContext(s, nil, nil, 0)
	g := generator.NewCommandGenerator(gctx, cat, c.Fuzz.Exclude, c.Fuzz.Focus)
	entries := generator.BuildDictionary(gctx, g)
	if err = generator.WriteDictionary(path, entries); err != nil {
		return err
	}
	log.Infof("dictionary created: %s, %d entries", path, len(entries))
	fmt.Fprintln(ctx.App.Writer, path)
	return nil
}
