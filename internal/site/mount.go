package site

import (
	"github.com/a-h/templ"

	"catalogsite/views/components"
)

// State is the user-visible result of loading one container.
type State int

const (
	Loaded State = iota
	Empty
	Failed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Empty:
		return "empty"
	default:
		return "failed"
	}
}

// Outcome is the result of the fetch/filter step for one container.
type Outcome[T any] struct {
	Items []T
	Err   error
}

func Result[T any](items []T, err error) Outcome[T] {
	return Outcome[T]{Items: items, Err: err}
}

func (o Outcome[T]) State() State {
	switch {
	case o.Err != nil:
		return Failed
	case len(o.Items) == 0:
		return Empty
	default:
		return Loaded
	}
}

// Messages are the two fixed notices a container can show instead of items.
type Messages struct {
	Empty  string
	Failed string
}

// Mount picks the container content for an outcome: the concatenated item
// fragments in order, the empty notice, or the failure notice.
func Mount[T any](o Outcome[T], render func(T) templ.Component, msg Messages) templ.Component {
	switch o.State() {
	case Failed:
		return components.Message(msg.Failed)
	case Empty:
		return components.Message(msg.Empty)
	default:
		return components.List(o.Items, render)
	}
}
