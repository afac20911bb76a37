// Package apm counts user actions (changes of the pressed mouse button set or
// of the pressed key set) inside a trailing time window.
package apm

import (
	"time"
)

const DefaultWindow = time.Minute

// Chord is a set of keys that must all be held at once.
type Chord []Key

var DefaultQuitChords = []Chord{
	{KeyLControl, KeyQ},
	{KeyLAlt, KeyF4},
}

type Option func(*Tracker)

func WithWindow(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.window = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func WithQuitChords(chords ...Chord) Option {
	return func(t *Tracker) {
		t.quitChords = chords
	}
}

// Tracker is not safe for concurrent use, it is meant to be driven
// by a single render loop.
type Tracker struct {
	src        Source
	window     time.Duration
	now        func() time.Time
	quitChords []Chord

	actions     []time.Time
	lastButtons Buttons
	lastKeys    KeySet
	keys        KeySet
	rate        int
}

// New panics if src is nil.
func New(src Source, opts ...Option) *Tracker {
	if src == nil {
		panic("apm: nil Source")
	}
	t := &Tracker{
		src:        src,
		window:     DefaultWindow,
		now:        time.Now,
		quitChords: DefaultQuitChords,
		actions:    make([]time.Time, 0, 64),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update polls the source once and advances the tracker to the current time.
func (t *Tracker) Update() (rate int, quit bool) {
	now := t.now()
	return t.Step(now, t.src.Snapshot())
}

// Step advances the tracker with an already fetched snapshot.
// A frame where both the buttons and the keys changed records two actions.
func (t *Tracker) Step(now time.Time, snap Snapshot) (rate int, quit bool) {
	t.evict(now.Add(-t.window))

	if snap.Buttons != t.lastButtons {
		t.actions = append(t.actions, now)
		t.lastButtons = snap.Buttons
	}

	if !snap.Keys.Equal(t.lastKeys) {
		t.actions = append(t.actions, now)
		t.lastKeys = snap.Keys
	}
	t.keys = snap.Keys

	t.rate = len(t.actions)
	return t.rate, t.ShouldQuit()
}

// evict drops every action not strictly after cutoff.
func (t *Tracker) evict(cutoff time.Time) {
	i := 0
	for i < len(t.actions) && !t.actions[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return
	}
	n := copy(t.actions, t.actions[i:])
	clear(t.actions[n:])
	t.actions = t.actions[:n]
}

// Rate returns the number of actions inside the window as of the last update.
func (t *Tracker) Rate() int {
	return t.rate
}

func (t *Tracker) Len() int {
	return len(t.actions)
}

func (t *Tracker) Window() time.Duration {
	return t.window
}

// ShouldQuit reports whether the key set of the last update holds a quit chord.
func (t *Tracker) ShouldQuit() bool {
	return QuitRequested(t.keys, t.quitChords...)
}

// QuitRequested reports whether keys is a superset of any of the chords.
func QuitRequested(keys KeySet, chords ...Chord) bool {
	for _, c := range chords {
		if len(c) != 0 && keys.ContainsAll(c...) {
			return true
		}
	}
	return false
}
