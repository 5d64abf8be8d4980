// Package channel implements the per-process session that caches channel
// metadata and orchestrates paginated retrieval from the catalog.
package channel

import "errors"

// ErrNoChannel reports that an operation requiring a resolved channel was
// invoked before ResolveChannel succeeded.
var ErrNoChannel = errors.New("channel: you must set a channel")

// ErrChannelNotFound reports that a channel search yielded no match.
var ErrChannelNotFound = errors.New("channel: not found")

// ErrPlaylistNotFound reports that a requested playlist title is absent from
// the channel's playlist mapping.
var ErrPlaylistNotFound = errors.New("channel: playlist not found")
