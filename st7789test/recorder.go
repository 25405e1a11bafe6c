// Package st7789test provides transports for testing code that drives an
// ST7789 without hardware.
//
// A [Recorder] logs every transport call. A [Panel] interprets the byte
// stream like the controller does and renders the result into an image.
package st7789test

import "sync"

// Op is a transport call.
type Op uint8

// Transport calls.
const (
	OpSelect Op = iota
	OpDeselect
	OpCommandMode
	OpDataMode
	OpTransmit
	OpReceive
)

func (op Op) String() string {
	switch op {
	case OpSelect:
		return "select"
	case OpDeselect:
		return "deselect"
	case OpCommandMode:
		return "command"
	case OpDataMode:
		return "data"
	case OpTransmit:
		return "transmit"
	case OpReceive:
		return "receive"
	default:
		return "invalid"
	}
}

// Event is one recorded transport call.
type Event struct {
	Op Op

	// Byte transmitted or received.
	Byte byte

	// Command is set for bytes transmitted in command mode.
	Command bool
}

// Recorder is a transport that records every call.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	command bool

	// ReadValue is returned by Receive.
	ReadValue byte

	// Err, if set, is returned by every call after it has been recorded.
	Err error
}

func (r *Recorder) record(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.Err
}

func (r *Recorder) Select() error {
	return r.record(Event{Op: OpSelect})
}

func (r *Recorder) Deselect() error {
	return r.record(Event{Op: OpDeselect})
}

func (r *Recorder) SetCommandMode() error {
	r.mu.Lock()
	r.command = true
	r.mu.Unlock()
	return r.record(Event{Op: OpCommandMode})
}

func (r *Recorder) SetDataMode() error {
	r.mu.Lock()
	r.command = false
	r.mu.Unlock()
	return r.record(Event{Op: OpDataMode})
}

func (r *Recorder) Transmit(b byte) error {
	r.mu.Lock()
	command := r.command
	r.mu.Unlock()
	return r.record(Event{Op: OpTransmit, Byte: b, Command: command})
}

func (r *Recorder) Receive() (byte, error) {
	err := r.record(Event{Op: OpReceive, Byte: r.ReadValue})
	return r.ReadValue, err
}

// Events returns a copy of the recorded calls.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Bytes returns all transmitted bytes, commands and data.
func (r *Recorder) Bytes() []byte {
	return r.filter(func(e Event) bool { return true })
}

// Commands returns the bytes transmitted in command mode.
func (r *Recorder) Commands() []byte {
	return r.filter(func(e Event) bool { return e.Command })
}

// Data returns the bytes transmitted in data mode.
func (r *Recorder) Data() []byte {
	return r.filter(func(e Event) bool { return !e.Command })
}

func (r *Recorder) filter(keep func(Event) bool) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []byte
	for _, e := range r.events {
		if e.Op == OpTransmit && keep(e) {
			out = append(out, e.Byte)
		}
	}
	return out
}

// Transactions splits the recorded calls into select/deselect brackets. The
// returned transactions exclude the Select and Deselect events; calls outside
// any bracket are dropped.
func (r *Recorder) Transactions() [][]Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var (
		out     [][]Event
		current []Event
		open    bool
	)
	for _, e := range r.events {
		switch {
		case e.Op == OpSelect:
			open, current = true, []Event{}
		case e.Op == OpDeselect && open:
			out = append(out, current)
			open = false
		case open:
			current = append(current, e)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
