package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// commentPrefix starts a comment that reaches until the end of the line.
const commentPrefix = "#"

// Command is a single operation of a script.
type Command struct {
	Script string
	Line   int
	Name   string
	Args   []string
}

// Location returns the position of the Command in its script.
func (c *Command) Location() string {
	return c.Script + ":" + strconv.Itoa(c.Line)
}

// String returns the Command the way it was written in the script.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// arg returns the argument at the given position.
func (c *Command) arg(position int) (string, error) {
	if position >= len(c.Args) {
		return "", errors.Wrapf(ErrMissingArgument, "%s needs at least %d argument(s)", c.Name, position+1)
	}

	return c.Args[position], nil
}

// ParseScript reads the commands of a script. Blank lines and comments are skipped.
func ParseScript(name string, reader io.Reader) (commands []*Command, err error) {
	scanner := bufio.NewScanner(reader)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if commentStart := strings.Index(text, commentPrefix); commentStart >= 0 {
			text = text[:commentStart]
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		commands = append(commands, &Command{
			Script: name,
			Line:   line,
			Name:   strings.ToLower(fields[0]),
			Args:   fields[1:],
		})
	}

	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", name)
	}

	return commands, nil
}
