package main

import (
	"iter"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/linkedlists/packages/datastructure/doublylinkedlist"
	"github.com/iotaledger/linkedlists/packages/datastructure/singlylinkedlist"
	"github.com/iotaledger/linkedlists/packages/datastructure/stack"
	"github.com/iotaledger/linkedlists/packages/datastructure/traversal"
)

// absent is the result of a command that found no element.
const absent = "<none>"

// replayer applies the commands of a script to a container.
type replayer interface {
	Apply(command *Command) (result string, err error)
}

// replayerFactories contains the constructors of the replayers by the name of their container.
var replayerFactories = map[string]func() replayer{
	"stack":  func() replayer { return &stackReplayer{stack: stack.New[string]()} },
	"singly": func() replayer { return &singlyReplayer{list: singlylinkedlist.New[string]()} },
	"doubly": func() replayer { return &doublyReplayer{list: doublylinkedlist.New[string]()} },
}

// newReplayer creates a replayer for the container with the given name.
func newReplayer(container string) (replayer, error) {
	factory, exists := replayerFactories[container]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownContainer, "%q", container)
	}

	return factory(), nil
}

// region stackReplayer /////////////////////////////////////////////////////////////////////////////////////////////////

type stackReplayer struct {
	stack *stack.Stack[string]
}

func (s *stackReplayer) Apply(command *Command) (string, error) {
	switch command.Name {
	case "push":
		element, err := command.arg(0)
		if err != nil {
			return "", err
		}
		s.stack.Push(element)

		return strconv.Itoa(s.stack.Len()), nil
	case "pop":
		element, err := s.stack.Pop()
		if err != nil {
			// popping an empty stack is a valid operation, its error is the result
			return err.Error(), nil
		}

		return element, nil
	case "peek":
		return formatElement(s.stack.Peek()), nil
	case "len":
		return strconv.Itoa(s.stack.Len()), nil
	case "empty":
		return strconv.FormatBool(s.stack.IsEmpty()), nil
	case "clear":
		s.stack.Clear()

		return "ok", nil
	case "dump":
		return formatSeq(s.stack.All()), nil
	default:
		return "", unknownCommand(command)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region singlyReplayer ////////////////////////////////////////////////////////////////////////////////////////////////

type singlyReplayer struct {
	list *singlylinkedlist.SinglyLinkedList[string]
}

func (s *singlyReplayer) Apply(command *Command) (string, error) {
	switch command.Name {
	case "add_front":
		element, err := command.arg(0)
		if err != nil {
			return "", err
		}
		s.list.AddFront(element)

		return strconv.Itoa(s.list.Len()), nil
	case "remove_front":
		return formatElement(s.list.RemoveFront()), nil
	case "front":
		return formatElement(s.list.Front()), nil
	case "contains":
		element, err := command.arg(0)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(singlylinkedlist.Contains(s.list, element)), nil
	case "len":
		return strconv.Itoa(s.list.Len()), nil
	case "empty":
		return strconv.FormatBool(s.list.IsEmpty()), nil
	case "clear":
		s.list.Clear()

		return "ok", nil
	case "dump":
		return formatSeq(s.list.All()), nil
	default:
		return "", unknownCommand(command)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region doublyReplayer ////////////////////////////////////////////////////////////////////////////////////////////////

type doublyReplayer struct {
	list *doublylinkedlist.DoublyLinkedList[string]
}

func (d *doublyReplayer) Apply(command *Command) (string, error) {
	switch command.Name {
	case "push_front", "push_back":
		element, err := command.arg(0)
		if err != nil {
			return "", err
		}

		if command.Name == "push_front" {
			d.list.PushFront(element)
		} else {
			d.list.PushBack(element)
		}

		return strconv.Itoa(d.list.Len()), nil
	case "pop_front":
		return formatElement(d.list.PopFront()), nil
	case "pop_back":
		return formatElement(d.list.PopBack()), nil
	case "front":
		return formatElement(d.list.Front()), nil
	case "back":
		return formatElement(d.list.Back()), nil
	case "append":
		if _, err := command.arg(0); err != nil {
			return "", err
		}
		d.list.Append(doublylinkedlist.FromSlice(command.Args))

		return strconv.Itoa(d.list.Len()), nil
	case "contains":
		element, err := command.arg(0)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(doublylinkedlist.Contains(d.list, element)), nil
	case "len":
		return strconv.Itoa(d.list.Len()), nil
	case "empty":
		return strconv.FormatBool(d.list.IsEmpty()), nil
	case "clear":
		d.list.Clear()

		return "ok", nil
	case "dump":
		return formatSeq(d.list.All()), nil
	case "dump_back":
		return formatSeq(d.list.Backward()), nil
	default:
		return "", unknownCommand(command)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utility functions ////////////////////////////////////////////////////////////////////////////////////////////

func formatElement(element string, exists bool) string {
	if !exists {
		return absent
	}

	return element
}

func formatSeq(seq iter.Seq[string]) string {
	return "[" + strings.Join(traversal.Collect(seq), " ") + "]"
}

func unknownCommand(command *Command) error {
	return errors.Wrapf(ErrUnknownCommand, "%q", command.Name)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
