package tabs

import (
	"errors"
	"fmt"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies a screen in the bottom navigation
type Tab string

const (
	Dialer    Tab = "dialer"
	History   Tab = "history"
	FollowUps Tab = "followups"
	Profile   Tab = "profile"
	Settings  Tab = "settings"
)

var order = []Tab{Dialer, History, FollowUps, Profile, Settings}

// All returns the tabs in navigation order
func All() []Tab {
	return append([]Tab(nil), order...)
}

// Label is the text under the tab icon
func (t Tab) Label() string {
	switch t {
	case Dialer:
		return "Dialer"
	case History:
		return "History"
	case FollowUps:
		return "Follow-ups"
	case Profile:
		return "Profile"
	case Settings:
		return "Settings"
	}
	return string(t)
}

// Valid reports whether t is one of the fixed tabs
func (t Tab) Valid() bool {
	return indexOf(t) >= 0
}

// Router holds the active tab. The zero value starts on the dialer.
type Router struct {
	active Tab
}

func NewRouter() *Router {
	return &Router{active: Dialer}
}

// Active returns the selected tab
func (r *Router) Active() Tab {
	if r.active == "" {
		return Dialer
	}
	return r.active
}

// Select makes t the active tab
func (r *Router) Select(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	r.active = t
	return nil
}

// Next moves to the following tab, wrapping around
func (r *Router) Next() Tab {
	r.active = order[(indexOf(r.Active())+1)%len(order)]
	return r.active
}

// Prev moves to the previous tab, wrapping around
func (r *Router) Prev() Tab {
	r.active = order[(indexOf(r.Active())+len(order)-1)%len(order)]
	return r.active
}

func indexOf(t Tab) int {
	for i, o := range order {
		if o == t {
			return i
		}
	}
	return -1
}
