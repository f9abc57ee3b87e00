package client

import "fmt"

// Extension contributes callbacks to a registry. It receives the registry
// already holding everything registered before it and returns it with its own
// callbacks appended. It cannot see or remove earlier entries.
type Extension interface {
	EventHandler(h EventHandler) EventHandler
}

// ExtensionFunc adapts a plain function to Extension.
type ExtensionFunc func(h EventHandler) EventHandler

// EventHandler calls f(h).
func (f ExtensionFunc) EventHandler(h EventHandler) EventHandler { return f(h) }

// Apply applies exts to h in order: the result is ext_n(...ext_1(h)).
// For any kind, callbacks of an earlier extension run before those of a
// later one.
func Apply(h EventHandler, exts ...Extension) EventHandler {
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		h = ext.EventHandler(h)
	}
	return h
}

// ExtensionName returns ext's Name() when it has one, its type otherwise.
func ExtensionName(ext Extension) string {
	if named, ok := ext.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", ext)
}
