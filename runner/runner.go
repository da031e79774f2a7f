package runner

import (
	"context"
	"time"

	"respfuzz/generator"
	"respfuzz/pkg/log"
	"respfuzz/pkg/prom"
	"respfuzz/pkg/types"
)

// Runner executes test cases over a single connection, one command at a
// time. A Runner is not safe for concurrent use.
type Runner struct {
	dialer Dialer
	conn   *conn
	stats  RunStats
}

// New returns a Runner dialing through d. No connection is made until
// Connect or Execute.
func New(d Dialer) *Runner {
	return &Runner{dialer: d}
}

// Connect dials the target if not connected yet.
func (r *Runner) Connect(ctx context.Context) error {
	if r.conn != nil {
		return nil
	}
	sock, err := r.dialer.Dial(ctx)
	if err != nil {
		return newTransportError("dial", r.dialer.Addr(), err)
	}
	r.conn = newConn(r.dialer.Addr(), sock)
	return nil
}

// Execute runs the commands of tc in order and fills tc.Results.
//
// A failed command never stops the run: its Result carries the failure,
// the connection is dropped and redialed before the next command. When
// the first connection cannot be established every command gets the dial
// error and Execute returns it. Cancelling ctx stops before the next send
// or read and returns ctx.Err() with the results gathered so far.
func (r *Runner) Execute(ctx context.Context, tc *TestCase) error {
	tc.Results = make([]Result, 0, len(tc.Commands))
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Connect(ctx); err != nil {
		msg := err.Error()
		for _, cmd := range tc.Commands {
			tc.Results = append(tc.Results, Result{Command: cmd.Name, Args: cmd.Args, Error: msg})
			r.stats.Add(types.OutcomeError)
		}
		prom.ExecAdd(string(types.OutcomeError), len(tc.Commands))
		log.Errorf("connect %s failed: %v, %d commands not executed", r.dialer.Addr(), err, len(tc.Commands))
		return err
	}
	for i, cmd := range tc.Commands {
		if err := ctx.Err(); err != nil {
			log.Warnf("run cancelled after %d of %d commands", i, len(tc.Commands))
			return err
		}
		res := r.execute(ctx, cmd)
		tc.Results = append(tc.Results, res)
		r.record(&res)
		log.V(2).Infof("command %d/%d %s -> %s", i+1, len(tc.Commands), cmd.Name, res.String())
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) execute(ctx context.Context, cmd generator.Command) (res Result) {
	res = Result{Command: cmd.Name, Args: cmd.Args}
	if err := r.Connect(ctx); err != nil {
		res.fail(err)
		return
	}
	start := time.Now()
	defer func() {
		prom.CommandTime(cmd.Name, int64(time.Since(start)/time.Microsecond))
		if res.Reply == nil {
			r.dropConn()
		}
	}()

	c := r.conn
	stop := context.AfterFunc(ctx, c.interrupt)
	defer stop()

	if err := c.write(cmd.Argv()); err != nil {
		res.failCtx(ctx, err)
		return
	}
	if err := ctx.Err(); err != nil {
		res.fail(err)
		return
	}
	v, err := c.read()
	if err != nil {
		res.failCtx(ctx, err)
		return
	}
	res.Reply = &v
	return
}

func (res *Result) fail(err error) {
	if te, ok := err.(*TransportError); ok && te.Timeout {
		res.Timeout = true
		return
	}
	res.Error = err.Error()
}

// failCtx records err unless it was caused by ctx being cancelled.
func (res *Result) failCtx(ctx context.Context, err error) {
	if cerr := ctx.Err(); cerr != nil {
		res.Error = cerr.Error()
		return
	}
	res.fail(err)
}

func (r *Runner) record(res *Result) {
	o := res.Outcome()
	r.stats.Add(o)
	prom.ExecIncr(string(o))
	if o != types.OutcomeSuccess {
		log.V(1).Warnf("command %s failed: %s", res.Command, res.String())
	}
}

func (r *Runner) dropConn() {
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
}

// Stats returns the counters of every command executed so far.
func (r *Runner) Stats() RunStats {
	return r.stats
}

// Close drops the connection.
func (r *Runner) Close() error {
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}
