package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"respfuzz/config"
	"respfuzz/generator"
	"respfuzz/pkg/log"
	"respfuzz/pkg/prom"
	"respfuzz/version"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var (
	confFile string
	host     string
	port     int
	commands int
	seed     string
	logFile  string
	logVl    int
	debug    bool
	metrics  string

	iterations int
	output     string
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "respfuzz: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "respfuzz"
	app.Usage = "protocol level fuzzer for RESP key-value servers"
	app.Version = version.Str()
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "conf", Usage: "run with the specific configuration", Destination: &confFile},
		cli.StringFlag{Name: "host", Usage: "target host, high priority than conf and env", Destination: &host},
		cli.IntFlag{Name: "port", Usage: "target port", Destination: &port},
		cli.IntFlag{Name: "commands", Usage: "max commands per test case", Destination: &commands},
		cli.StringFlag{Name: "seed", Usage: "fixed random seed, 0 derives it from the input", Destination: &seed},
		cli.StringFlag{Name: "log", Usage: "log file", Destination: &logFile},
		cli.IntFlag{Name: "log-vl", Usage: "log verbose level", Destination: &logVl},
		cli.BoolFlag{Name: "debug", Usage: "log to stdout", Destination: &debug},
		cli.StringFlag{Name: "metrics", Usage: "prometheus /metrics listen addr", Destination: &metrics},
	}
	fuzz := cli.Command{
		Name:        "fuzz",
		Usage:       "run one test case seeded by stdin",
		Description: "read the input of an external fuzzer from stdin, mix it with generated commands and run it",
		Action:      fuzzAction,
	}
	run := cli.Command{
		Name:  "run",
		Usage: "run generated test cases without an external fuzzer",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "iterations,n", Usage: "number of test cases, 0 runs until interrupted", Destination: &iterations},
		},
		Action: runAction,
	}
	replay := cli.Command{
		Name:      "replay",
		Usage:     "execute a saved test case again",
		ArgsUsage: "<file>",
		Action:    replayAction,
	}
	dict := cli.Command{
		Name:  "dict",
		Usage: "build the AFL dictionary",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "output,o", Usage: "dictionary file, default is conf fuzz.dict_file", Destination: &output},
		},
		Action: dictAction,
	}
	app.Commands = []cli.Command{fuzz, run, replay, dict}
	app.Action = fuzzAction
	return app
}

// parseConfig builds the config: defaults, then the conf file, then the
// environment, then flags.
func parseConfig() (c *config.Config, warns []*config.ConfigError, err error) {
	c = config.DefaultConfig()
	if confFile != "" {
		var fw []*config.ConfigError
		if fw, err = c.LoadFromFile(confFile); err != nil {
			return
		}
		warns = append(warns, fw...)
	}
	warns = append(warns, c.ApplyEnv()...)
	// high priority start
	if host != "" {
		c.Target.Host = host
	}
	if port > 0 {
		c.Target.Port = port
	}
	if commands != 0 {
		c.Fuzz.MaxCommands = commands
	}
	if seed != "" {
		if c.Fuzz.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			err = errors.Wrapf(err, "invalid seed %q", seed)
			return
		}
	}
	if debug {
		c.Debug = debug
	}
	if logFile != "" {
		c.Log = logFile
	}
	if logVl > 0 {
		c.LogVL = logVl
	}
	if metrics != "" {
		c.Metrics = metrics
	}
	// high priority end
	warns = append(warns, c.Validate()...)
	return
}

// setup loads the config, starts logging and metrics. The returned func
// releases them.
func setup() (*config.Config, func(), error) {
	c, warns, err := parseConfig()
	if err != nil {
		return nil, nil, err
	}
	closeLog := log.Init(c.LogConfig())
	for _, w := range warns {
		log.Warnf("%v", w)
	}
	if c.Metrics != "" {
		prom.Init()
		go func() {
			if err := http.ListenAndServe(c.Metrics, nil); err != nil {
				log.Errorf("metrics listen %s: %v", c.Metrics, err)
			}
		}()
	} else {
		prom.On = false
	}
	return c, func() {
		if closeLog {
			log.Close()
		}
	}, nil
}

// loadPools reads the dictionary and the corpus. Either one failing only
// leaves its pool empty.
func loadPools(c *config.Config) (dict, corpus []string) {
	var err error
	if dict, err = generator.LoadDictionary(c.Fuzz.DictFile); err != nil {
		log.Warnf("load dictionary: %v", err)
	}
	if corpus, err = generator.LoadCorpus(c.Fuzz.CorpusDir); err != nil {
		log.Warnf("load corpus: %v", err)
	}
	log.V(1).Infof("loaded %d dictionary entries, %d corpus values", len(dict), len(corpus))
	return
}

// checkFocus drops focus commands missing from the catalog.
func checkFocus(c *config.Config, cat *generator.Catalog) {
	valid := c.Fuzz.Focus[:0]
	for _, name := range c.Fuzz.Focus {
		if _, ok := cat.Lookup(name); !ok {
			log.Warnf("focus command %q is unknown and will be ignored", name)
			continue
		}
		valid = append(valid, name)
	}
	c.Fuzz.Focus = valid
	if len(valid) > 0 {
		log.Infof("focus commands enabled: %v", valid)
	}
}

// signalHandler cancels the run on the first SIGINT or SIGTERM and exits
// on the second one.
func signalHandler(cancel context.CancelFunc) {
	var ch = make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	stopping := false
	for {
		si := <-ch
		log.Infof("respfuzz version[%s] signal(%s)", version.Str(), si.String())
		switch si {
		case syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT:
			if stopping {
				log.Infof("respfuzz version[%s] exited", version.Str())
				log.Close()
				os.Exit(1)
			}
			stopping = true
			cancel()
		case syscall.SIGHUP:
		default:
			return
		}
	}
}
