package main

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownContainer is returned if no container with the configured name exists.
	ErrUnknownContainer = errors.New("unknown container")
	// ErrUnknownCommand is returned if a script contains a command that the container does not support.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned if a command was called without its required arguments.
	ErrMissingArgument = errors.New("missing argument")
	// ErrNoScripts is returned if chainreplay was started without any script.
	ErrNoScripts = errors.New("no script given")
	// ErrRepeatedStdin is returned if stdin is named as a script more than once.
	ErrRepeatedStdin = errors.New("stdin can only be replayed once")
)
