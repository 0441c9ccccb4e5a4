package player

// Package player implements local preview playback of downloaded files. The
// Controller owns an explicit playback state machine; audio work is
// delegated to a Mixer, with the production implementation built on beep.
