package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stdinScript is the script name that makes chainreplay read the script from stdin.
const stdinScript = "-"

// Replay replays scripts against fresh container instances. Every script gets its own container, so scripts can be
// replayed concurrently.
type Replay struct {
	settings *Settings
	log      *zap.SugaredLogger
	metrics  *metrics
	stdin    io.Reader

	replayedCommands *atomic.Int64
}

// NewReplay creates a new Replay.
func NewReplay(settings *Settings, log *zap.SugaredLogger) *Replay {
	return &Replay{
		settings:         settings,
		log:              log,
		metrics:          newMetrics(),
		stdin:            os.Stdin,
		replayedCommands: atomic.NewInt64(0),
	}
}

// scriptResult contains the output of a single script.
type scriptResult struct {
	lines []string
	err   error
}

// Run replays the scripts and writes their output to the writer, in the order of the scripts. The returned error
// contains the failure of every script that failed.
func (r *Replay) Run(scripts []string, out io.Writer) error {
	if len(scripts) == 0 {
		return ErrNoScripts
	}

	pool, err := ants.NewPool(r.settings.Workers)
	if err != nil {
		return errors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	results := make([]*scriptResult, len(scripts))

	var wg sync.WaitGroup
	for i, script := range scripts {
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			results[i] = r.replayScript(script)
		}); err != nil {
			wg.Done()
			results[i] = &scriptResult{err: errors.Wrapf(err, "failed to schedule script %s", script)}
		}
	}
	wg.Wait()

	for _, result := range results {
		for _, line := range result.lines {
			if _, err = fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
		}
	}

	r.log.Infow("replay finished", "scripts", len(scripts), "commands", r.replayedCommands.Load())

	return multierr.Combine(lo.Map(results, func(result *scriptResult) error { return result.err })...)
}

// ReplayedCommands returns the number of commands that were replayed so far.
func (r *Replay) ReplayedCommands() int64 {
	return r.replayedCommands.Load()
}

// PrintMetrics writes the operation counters to the writer.
func (r *Replay) PrintMetrics(out io.Writer) error {
	lines, err := r.metrics.summary()
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return errors.Wrap(err, "failed to write metrics")
		}
	}

	return nil
}

func (r *Replay) replayScript(script string) *scriptResult {
	log := r.log.With("script", script)

	commands, err := r.readScript(script)
	if err != nil {
		log.Errorw("failed to read script", "err", err)

		return &scriptResult{err: err}
	}

	target, err := newReplayer(r.settings.Container)
	if err != nil {
		return &scriptResult{err: err}
	}

	result := &scriptResult{lines: make([]string, 0, len(commands))}
	for _, command := range commands {
		output, applyErr := target.Apply(command)
		r.metrics.observe(r.settings.Container, command, applyErr)
		r.replayedCommands.Inc()

		if applyErr != nil {
			log.Errorw("failed to replay command", "line", command.Line, "command", command.String(), "err", applyErr)
			result.err = errors.Wrapf(applyErr, "failed to replay %s", command.Location())

			return result
		}

		log.Debugw("replayed command", "line", command.Line, "command", command.String(), "result", output)
		result.lines = append(result.lines, command.Location()+" "+command.String()+" => "+output)
	}

	return result
}

func (r *Replay) readScript(script string) ([]*Command, error) {
	if script == stdinScript {
		return ParseScript("stdin", r.stdin)
	}

	file, err := os.Open(script)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", script)
	}
	defer file.Close()

	return ParseScript(script, file)
}
