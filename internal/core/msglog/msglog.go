// Package msglog holds the append-only game message log.
package msglog

import "image/color"

// Message is one line of the log
type Message struct {
	Text  string
	Color color.RGBA
}

// Log is an ordered, oldest-first list of messages. The simulation only
// appends; frontends read it for display.
type Log struct {
	Messages []Message

	// OnAdd is called after every append (e.g. for debug logging)
	OnAdd func(m Message) `cbor:"-"`
}

// New creates an empty log
func New() *Log {
	return &Log{}
}

// Add appends a message
func (l *Log) Add(text string, clr color.RGBA) {
	m := Message{Text: text, Color: clr}
	l.Messages = append(l.Messages, m)
	if l.OnAdd != nil {
		l.OnAdd(m)
	}
}

// Len returns the number of messages
func (l *Log) Len() int {
	return len(l.Messages)
}

// Last returns up to n of the newest messages, oldest first
func (l *Log) Last(n int) []Message {
	if n >= len(l.Messages) {
		return l.Messages
	}
	return l.Messages[len(l.Messages)-n:]
}
