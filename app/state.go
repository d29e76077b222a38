// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// State is the state of the [App].
type State int32

const (
	// Initializing is the state until the graphics context
	// has been delivered. Window events are ignored.
	Initializing State = iota

	// Ready is the state once the graphics context is available.
	Ready
)

func (st State) String() string {
	switch st {
	case Initializing:
		return "Initializing"
	case Ready:
		return "Ready"
	}
	return "Unknown"
}

// Key is a keyboard key that the [App] responds to.
type Key int32

const (
	KeyUnknown Key = iota

	// KeyEscape requests exit.
	KeyEscape
)

func (k Key) String() string {
	if k == KeyEscape {
		return "Escape"
	}
	return "Unknown"
}
