// Package chat holds the conversation session: an ordered message log and a
// single busy flag guarding the one simulated reply that may be in flight.
//
// A Session is owned by one goroutine (the UI update loop or a headless
// driver) and is not safe for concurrent use.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"demochat/pkg/logging"

	"github.com/google/uuid"
)

// DefaultMaxLength is the submission limit in characters.
const DefaultMaxLength = 4000

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	MaxLength   int
	ActionDelay time.Duration
	Responder   Responder
	Clock       Clock
	Logger      *slog.Logger
}

// Turn is a user message awaiting its simulated reply. The caller schedules
// Complete(Seq) once Delay has elapsed.
type Turn struct {
	Seq   uint64
	User  Message
	Delay time.Duration
}

type pendingReply struct {
	seq  uint64
	kind string
	text string // empty means pick from the responder on completion
}

// Session is the in-memory conversation state for one program run.
type Session struct {
	id          string
	messages    []Message
	nextID      int
	busy        bool
	pending     *pendingReply
	seq         uint64
	maxLength   int
	actionDelay time.Duration
	responder   Responder
	clock       Clock
	logger      *slog.Logger
}

// NewSession creates an idle session with an empty log.
func NewSession(opts Options) *Session {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.ActionDelay <= 0 {
		opts.ActionDelay = DefaultActionDelay
	}
	if opts.Responder == nil {
		opts.Responder = NewCannedResponder(DefaultMinDelay, DefaultMaxDelay, 0)
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	id := uuid.NewString()
	return &Session{
		id:          id,
		nextID:      1,
		maxLength:   opts.MaxLength,
		actionDelay: opts.ActionDelay,
		responder:   opts.Responder,
		clock:       opts.Clock,
		logger:      opts.Logger.With("session_id", id),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// MaxLength returns the submission limit in characters.
func (s *Session) MaxLength() int { return s.maxLength }

// Busy reports whether a simulated reply is pending.
func (s *Session) Busy() bool { return s.busy }

// Len returns the number of messages in the log.
func (s *Session) Len() int { return len(s.messages) }

// Messages returns a copy of the message log in arrival order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the most recent message with the given role.
func (s *Session) Last(role Role) (Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == role {
			return s.messages[i], true
		}
	}
	return Message{}, false
}

// Submit validates text, appends it as a user message and marks the session
// busy. The returned Turn tells the caller when to call Complete.
func (s *Session) Submit(text string) (Turn, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.reject("submit", &ValidationError{Reason: ErrEmptyMessage, Limit: s.maxLength})
	}
	if n := utf8.RuneCountInString(trimmed); n > s.maxLength {
		return s.reject("submit", &ValidationError{Reason: ErrMessageTooLong, Length: n, Limit: s.maxLength})
	}
	return s.begin("submit", trimmed, "", s.responder.ReplyDelay())
}

// Attach echoes the selected file names and schedules the attachment notice.
func (s *Session) Attach(names []string) (Turn, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		return s.reject("attach", &ValidationError{Reason: ErrNoAttachments})
	}
	user := "📎 Attached files: " + strings.Join(cleaned, ", ")
	if err := s.checkLength(user); err != nil {
		return s.reject("attach", err)
	}
	reply := "File attachment is a demo feature. In a real implementation, files would be processed and analyzed."
	return s.begin("attach", user, reply, s.actionDelay)
}

// Search echoes the query and schedules the search notice.
func (s *Session) Search(query string) (Turn, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.reject("search", &ValidationError{Reason: ErrEmptyQuery})
	}
	user := fmt.Sprintf("🔍 Searching for: %q", q)
	if err := s.checkLength(user); err != nil {
		return s.reject("search", err)
	}
	reply := fmt.Sprintf("Search functionality is a demo feature. In a real implementation, this would search through chat history or external sources for %q.", q)
	return s.begin("search", user, reply, s.actionDelay)
}

// Voice records a voice request. Terminals have no speech recognition, so the
// reply always explains that voice input is unsupported.
func (s *Session) Voice() (Turn, error) {
	reply := "Voice recognition is not supported in this terminal. This is a demo of how the voice feature would work."
	return s.begin("voice", "🎤 Voice input requested", reply, s.actionDelay)
}

// checkLength bounds the echoed user line of an action turn like a typed
// message.
func (s *Session) checkLength(text string) error {
	if n := utf8.RuneCountInString(text); n > s.maxLength {
		return &ValidationError{Reason: ErrMessageTooLong, Length: n, Limit: s.maxLength}
	}
	return nil
}

func (s *Session) reject(kind string, err error) (Turn, error) {
	s.logger.Debug("chat_submit_rejected", "kind", kind, "error", err)
	return Turn{}, err
}

func (s *Session) begin(kind, userText, reply string, delay time.Duration) (Turn, error) {
	if s.busy {
		return s.reject(kind, ErrBusy)
	}

	msg := s.append(RoleUser, userText)
	s.seq++
	s.busy = true
	s.pending = &pendingReply{seq: s.seq, kind: kind, text: reply}

	s.logger.Info("chat_submit",
		"kind", kind,
		"message_id", msg.ID,
		"length", utf8.RuneCountInString(userText),
		"delay_ms", delay.Milliseconds(),
	)
	s.logger.Log(context.Background(), logging.LevelTrace, "chat_body", "message_id", msg.ID, "text", userText)

	return Turn{Seq: s.seq, User: msg, Delay: delay}, nil
}

// Complete appends the simulated reply for turn seq and returns the session
// to idle.
func (s *Session) Complete(seq uint64) (Message, error) {
	if !s.busy || s.pending == nil {
		return Message{}, ErrNotBusy
	}
	if s.pending.seq != seq {
		return Message{}, ErrStaleTurn
	}

	text := s.pending.text
	if text == "" {
		text = s.responder.Reply()
	}
	kind := s.pending.kind
	s.pending = nil
	s.busy = false

	msg := s.append(RoleAssistant, text)
	s.logger.Info("chat_reply", "kind", kind, "message_id", msg.ID, "seq", seq)
	s.logger.Log(context.Background(), logging.LevelTrace, "chat_body", "message_id", msg.ID, "text", text)
	return msg, nil
}

// Await blocks until the turn's delay has elapsed on clock and completes it.
// If ctx ends first the pending turn is dropped so the session stays usable.
func (s *Session) Await(ctx context.Context, turn Turn) (Message, error) {
	select {
	case <-s.clock.After(turn.Delay):
		return s.Complete(turn.Seq)
	case <-ctx.Done():
		s.Recover()
		return Message{}, ctx.Err()
	}
}

// Recover drops any pending reply and clears the busy flag.
func (s *Session) Recover() {
	if s.pending != nil {
		s.logger.Warn("chat_recover", "seq", s.pending.seq, "kind", s.pending.kind)
	}
	s.pending = nil
	s.busy = false
}

func (s *Session) append(role Role, text string) Message {
	msg := Message{
		ID:        s.nextID,
		Role:      role,
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}
