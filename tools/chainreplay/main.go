// chainreplay replays scripts of container operations against a stack, a singly-linked list or a doubly-linked list and
// prints the result of every operation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) (err error) {
	settings, scripts, err := loadSettings(args)
	if err != nil {
		return err
	}

	if settings.Interactive {
		if err = selectContainer(settings); err != nil {
			return err
		}
	}

	log, err := newLogger(settings.LoggerLevel, settings.LoggerEncoding)
	if err != nil {
		return err
	}
	defer func() {
		// Sync fails for stderr on some platforms
		_ = log.Sync()
	}()

	log.Debugw("starting replay", "container", settings.Container, "workers", settings.Workers, "scripts", scripts)

	replay := NewReplay(settings, log)
	err = replay.Run(scripts, out)

	if settings.PrintMetrics && !errors.Is(err, ErrNoScripts) {
		err = multierr.Append(err, replay.PrintMetrics(out))
	}

	return err
}
