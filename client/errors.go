package client

import "errors"

// Build errors. Build wraps the cause, e.g. errors.Is(err, ErrIdentityLookup).
var (
	ErrIdentityLookup = errors.New("client: application identity lookup failed")
	ErrConnect        = errors.New("client: gateway client construction failed")
)

// Client errors.
var (
	ErrAlreadyStarted = errors.New("client: already started")
	ErrNoShards       = errors.New("client: no shards to open")
)
