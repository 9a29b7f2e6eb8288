package domain

import (
	"fmt"
	"strings"
)

type View string

const (
	ViewBoard   View = "board"
	ViewChat    View = "chat"
	ViewProfile View = "profile"
)

func Views() []View {
	return []View{ViewBoard, ViewChat, ViewProfile}
}

func (v View) Valid() bool {
	switch v {
	case ViewBoard, ViewChat, ViewProfile:
		return true
	default:
		return false
	}
}

func (v View) String() string {
	return string(v)
}

func ParseView(raw string) (View, error) {
	view := View(strings.ToLower(strings.TrimSpace(raw)))
	if !view.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, raw)
	}
	return view, nil
}

// Next and Prev cycle through Views in tab order.
func (v View) Next() View {
	return v.shift(1)
}

func (v View) Prev() View {
	return v.shift(-1)
}

func (v View) shift(delta int) View {
	views := Views()
	for i, candidate := range views {
		if candidate == v {
			return views[(i+delta+len(views))%len(views)]
		}
	}
	return ViewBoard
}
