// Package panel tracks which builder panels are enabled and which one is
// active.
package panel

import "fmt"

// ID names a builder panel.
type ID string

const (
	Data     ID = "data"
	Settings ID = "settings"
	Style    ID = "style"
	Preview  ID = "preview"
)

// Priority is the fixed order used to pick a replacement active panel. It is
// also the display order.
var Priority = []ID{Data, Settings, Style, Preview}

// ParseID converts a panel name into an ID.
func ParseID(name string) (ID, error) {
	for _, id := range Priority {
		if string(id) == name {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown panel %q", name)
}

// State is the visibility state of one panel.
type State struct {
	ID      ID
	Enabled bool
	Active  bool
}

// Controller is the panel state machine. Preview is always enabled, so at
// least one panel is enabled and exactly one panel is active at any time.
type Controller struct {
	enabled map[ID]bool
	active  ID
}

// NewController builds a controller from the external enable flags. Panels
// missing from enabled start enabled. The initial active panel is chosen by
// the same rule used after a disable.
func NewController(enabled map[ID]bool) *Controller {
	c := &Controller{enabled: make(map[ID]bool, len(Priority))}
	for _, id := range Priority {
		on, ok := enabled[id]
		c.enabled[id] = !ok || on
	}
	c.enabled[Preview] = true
	c.reselect()
	return c
}

// Active returns the active panel.
func (c *Controller) Active() ID {
	return c.active
}

// Enabled reports whether id is enabled.
func (c *Controller) Enabled(id ID) bool {
	return c.enabled[id]
}

// SetEnabled applies an external enable toggle. Preview cannot be disabled.
// Disabling the active panel moves activation to the first enabled panel in
// priority order. It reports whether the active panel changed.
func (c *Controller) SetEnabled(id ID, enabled bool) bool {
	if id == Preview || !c.known(id) {
		return false
	}
	c.enabled[id] = enabled
	if id != c.active || enabled {
		return false
	}
	before := c.active
	c.reselect()
	return before != c.active
}

// Activate makes id the active panel. Activating a disabled or unknown panel
// is a no-op and returns false.
func (c *Controller) Activate(id ID) bool {
	if !c.enabled[id] {
		return false
	}
	c.active = id
	return true
}

// States returns every panel state in priority order.
func (c *Controller) States() []State {
	states := make([]State, len(Priority))
	for i, id := range Priority {
		states[i] = State{ID: id, Enabled: c.enabled[id], Active: id == c.active}
	}
	return states
}

// Visible returns the enabled panels in display order.
func (c *Controller) Visible() []ID {
	var out []ID
	for _, id := range Priority {
		if c.enabled[id] {
			out = append(out, id)
		}
	}
	return out
}

// Next returns the enabled panel after the active one, wrapping around.
func (c *Controller) Next() ID {
	return c.step(1)
}

// Prev returns the enabled panel before the active one, wrapping around.
func (c *Controller) Prev() ID {
	return c.step(-1)
}

func (c *Controller) step(delta int) ID {
	visible := c.Visible()
	for i, id := range visible {
		if id == c.active {
			return visible[(i+delta+len(visible))%len(visible)]
		}
	}
	return c.active
}

func (c *Controller) reselect() {
	for _, id := range Priority {
		if c.enabled[id] {
			c.active = id
			return
		}
	}
}

func (c *Controller) known(id ID) bool {
	_, ok := c.enabled[id]
	return ok
}
