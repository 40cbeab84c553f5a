// Package testutil holds test doubles shared across packages.
package testutil

import "sync"

// Sent is one message captured by RecordingSender.
type Sent struct {
	Channel string
	ReplyTo string
	Text    string
}

// RecordingSender captures chat messages instead of sending them.
type RecordingSender struct {
	mu   sync.Mutex
	sent []Sent
}

// Say records a plain channel message.
func (s *RecordingSender) Say(channel, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Sent{Channel: channel, Text: text})
}

// Reply records a threaded reply.
func (s *RecordingSender) Reply(channel, parentMsgID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Sent{Channel: channel, ReplyTo: parentMsgID, Text: text})
}

// Messages returns a copy of everything sent so far.
func (s *RecordingSender) Messages() []Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sent, len(s.sent))
	copy(out, s.sent)
	return out
}

// Reset forgets recorded messages.
func (s *RecordingSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
