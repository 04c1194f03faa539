package config

import "reflect"

// View identifiers, as used in documents and URLs.
const (
	ViewMain       = "main"
	ViewChat       = "chat"
	ViewCaption    = "caption"
	ViewSettings   = "settings"
	ViewRemote     = "remote"
	ViewLocal      = "local"
	ViewWhiteboard = "whiteboard"
)

// Views returns all view identifiers in schema order.
func Views() []string {
	return []string{ViewMain, ViewChat, ViewCaption, ViewSettings, ViewRemote, ViewLocal, ViewWhiteboard}
}

// View returns the flags of one view keyed by button identifier. The map is
// built on every call; changing it does not affect b.
func (b ButtonsConfig) View(name string) (map[string]bool, bool) {
	node, ok := schema().byPath[joinPath("buttons", name)]
	if !ok || node.kind != kindGroup {
		return nil, false
	}

	view := fieldByNames(reflect.ValueOf(b), node.names[1:])
	flags := make(map[string]bool, len(node.children))
	for key, child := range node.children {
		flags[key] = view.FieldByName(child.names[len(child.names)-1]).Bool()
	}

	return flags, true
}

// AnyVisible reports whether at least one flag of the view is set. Unknown
// views have no visible buttons.
func (b ButtonsConfig) AnyVisible(name string) bool {
	flags, _ := b.View(name)
	return AnyVisible(flags)
}

// AnyVisible reports whether flags, as returned by [ButtonsConfig.View],
// show at least one button.
func AnyVisible(flags map[string]bool) bool {
	for _, visible := range flags {
		if visible {
			return true
		}
	}
	return false
}
