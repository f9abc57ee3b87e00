package client

import (
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

//go:generate go run ./internal/eventgen -o events.go

// Kind names one entry of the gateway event catalogue. The value is the
// gateway event name, e.g. "MESSAGE_CREATE".
type Kind string

func (k Kind) String() string { return string(k) }

// Catalogue returns every kind EventHandler can dispatch, in table order.
func Catalogue() []Kind {
	return slices.Clone(catalogue[:])
}

// Callback is application behavior bound to one event kind. E is the
// kind's payload, always a pointer shared by every callback of one event;
// callbacks must treat it as read-only.
type Callback[E any] func(ctx *Context, ev E)

type callbacks[E any] []Callback[E]

// add returns a list with cb appended. The receiver's backing array is never
// written, so registries derived from a common base stay independent.
func (c callbacks[E]) add(cb Callback[E]) callbacks[E] {
	if cb == nil {
		return c
	}
	return append(slices.Clip(c), cb)
}

func (c callbacks[E]) fire(ctx *Context, ev E) {
	for _, cb := range c {
		cb(ctx, ev)
	}
}

// EventHandler is the callback registry. It holds, for every catalogue kind,
// the callbacks registered for it in registration order, plus callbacks for
// gateway events outside the catalogue keyed by event name.
//
// EventHandler has value semantics: each On* method returns an updated copy
// and leaves the receiver untouched, so registrations are threaded through a
// chain:
//
//	h := client.NewEventHandler().
//		OnReady(onReady).
//		OnMessageCreate(onMessage)
//
// There is no removal or inspection. Once handed to a Builder the registry is
// read-only and safe to dispatch from many goroutines.
type EventHandler struct {
	table   handlerTable
	unknown map[string]callbacks[any]
}

// NewEventHandler returns an empty registry.
func NewEventHandler() EventHandler {
	return EventHandler{}
}

// OnUnknown registers cb for gateway events named tag that are not in the
// catalogue. cb receives the decoded JSON payload (map[string]any, []any, ...).
// Several callbacks may share a tag; all of them run.
func (h EventHandler) OnUnknown(tag string, cb Callback[any]) EventHandler {
	if cb == nil {
		return h
	}
	unknown := make(map[string]callbacks[any], len(h.unknown)+1)
	maps.Copy(unknown, h.unknown)
	unknown[tag] = unknown[tag].add(cb)
	h.unknown = unknown
	return h
}

// Dispatch runs every callback registered for the kind of ev, in
// registration order, each returning before the next starts. It reports the
// kind and whether ev belongs to the catalogue; kinds without callbacks are
// a no-op. Panics raised by callbacks are not recovered here.
func (h EventHandler) Dispatch(ctx *Context, ev any) (Kind, bool) {
	return h.table.dispatch(ctx, ev)
}

// DispatchUnknown runs the callbacks registered under tag with raw as
// payload. An unregistered tag is a no-op.
func (h EventHandler) DispatchUnknown(ctx *Context, tag string, raw any) {
	h.unknown[tag].fire(ctx, raw)
}

// dispatchRaw decodes data only when tag has callbacks. A payload that is not
// valid JSON is passed on as jsoniter.RawMessage.
func (h EventHandler) dispatchRaw(ctx *Context, tag string, data []byte) bool {
	cbs := h.unknown[tag]
	if len(cbs) == 0 {
		return false
	}

	var raw any
	if err := jsoniter.Unmarshal(data, &raw); err != nil {
		raw = jsoniter.RawMessage(data)
	}
	cbs.fire(ctx, raw)
	return true
}
