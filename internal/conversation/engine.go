package conversation

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	perrors "github.com/zhubert/manus/internal/errors"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/logger"
)

// Defaults for the simulated reply.
const (
	DefaultMinDelay = 1500 * time.Millisecond
	DefaultMaxDelay = 2500 * time.Millisecond
	DefaultMaxInput = 500 // grapheme clusters
)

var (
	// ErrEmptyMessage is returned by Send for blank input. Callers ignore it.
	ErrEmptyMessage = errors.New("empty message")
	// ErrReplyPending is returned by Send while a reply is in flight.
	ErrReplyPending = errors.New("reply pending")
)

// PendingReply is a scheduled assistant reply. Wait blocks until it is due.
type PendingReply struct {
	MessageID string
	Input     string
	Delay     time.Duration

	done chan struct{}
	once sync.Once
}

// Wait blocks for the reply delay. It returns early with an error when ctx
// ends or the reply is cancelled.
func (p *PendingReply) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-p.done:
		return perrors.ReplyCancelled(p.MessageID)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *PendingReply) cancel() {
	p.once.Do(func() { close(p.done) })
}

// Cancelled reports whether the reply was cancelled.
func (p *PendingReply) Cancelled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelay sets the reply delay range [min, max).
func WithDelay(min, max time.Duration) Option {
	return func(e *Engine) {
		e.minDelay, e.maxDelay = min, max
	}
}

// WithMaxInput caps the input buffer in grapheme clusters.
func WithMaxInput(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxInput = n
		}
	}
}

// WithRand sets the random source for delays and generic replies.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithClock overrides the message timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine owns one conversation. It is safe for concurrent use; at most one
// reply is in flight at a time.
type Engine struct {
	t         i18n.Translator
	responder *Responder
	minDelay  time.Duration
	maxDelay  time.Duration
	maxInput  int
	rand      *rand.Rand
	now       func() time.Time

	mu         sync.Mutex
	messages   []Message
	input      string
	pending    *PendingReply
	greetingID string
}

// NewEngine returns an engine seeded with the assistant's greeting.
func NewEngine(t i18n.Translator, opts ...Option) *Engine {
	e := &Engine{
		t:        t,
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		maxInput: DefaultMaxInput,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.responder = NewResponder(t, e.rand)

	e.greetingID = uuid.NewString()
	e.messages = []Message{{
		ID:        e.greetingID,
		Text:      t.T("initialGreeting"),
		IsUser:    false,
		Timestamp: e.now(),
		Status:    StatusDelivered,
	}}
	return e
}

// Messages returns a copy of the conversation.
func (e *Engine) Messages() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// SetInput replaces the input buffer, truncated to the grapheme limit.
// Prefill text from other screens arrives here.
func (e *Engine) SetInput(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = truncateGraphemes(s, e.maxInput)
}

// Input returns the input buffer.
func (e *Engine) Input() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input
}

// MaxInput returns the input limit in grapheme clusters.
func (e *Engine) MaxInput() int {
	return e.maxInput
}

// Busy reports whether a reply is pending. The UI shows the typing
// indicator and disables sending while true.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending != nil
}

// Send submits the input buffer. Blank input is rejected with
// ErrEmptyMessage and leaves everything unchanged; a second send while a
// reply is pending is rejected with ErrReplyPending.
func (e *Engine) Send() (*PendingReply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	text := strings.TrimSpace(e.input)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if e.pending != nil {
		return nil, ErrReplyPending
	}

	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    true,
		Timestamp: e.now(),
		Status:    StatusSending,
	}
	e.messages = append(e.messages, msg)
	e.input = ""

	e.pending = &PendingReply{
		MessageID: msg.ID,
		Input:     text,
		Delay:     e.delay(),
		done:      make(chan struct{}),
	}
	logger.WithComponent("conversation").Debug("reply scheduled", "message", msg.ID, "delay", e.pending.Delay)
	return e.pending, nil
}

func (e *Engine) delay() time.Duration {
	span := e.maxDelay - e.minDelay
	if span <= 0 {
		return e.minDelay
	}
	return e.minDelay + time.Duration(e.rand.Int64N(int64(span)))
}

// Deliver completes p: the user message becomes delivered and the reply is
// appended. Replies that are stale or were cancelled are ignored and ok is
// false.
func (e *Engine) Deliver(p *PendingReply) (reply Message, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p == nil || e.pending != p || p.Cancelled() {
		return Message{}, false
	}
	e.pending = nil
	e.setStatus(p.MessageID, StatusDelivered)

	reply = Message{
		ID:        uuid.NewString(),
		Text:      e.responder.GenerateResponse(p.Input),
		IsUser:    false,
		Timestamp: e.now(),
		Status:    StatusDelivered,
	}
	e.messages = append(e.messages, reply)
	return reply, true
}

// Cancel aborts the pending reply, if any, and marks its user message as
// errored. Used when the chat is torn down.
func (e *Engine) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending == nil {
		return false
	}
	e.pending.cancel()
	e.setStatus(e.pending.MessageID, StatusError)
	e.pending = nil
	return true
}

// Retranslate re-renders the greeting after a locale change, as long as the
// user has not started talking.
func (e *Engine) Retranslate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.messages) == 1 && e.messages[0].ID == e.greetingID {
		e.messages[0].Text = e.t.T("initialGreeting")
	}
}

// LastReply returns the most recent assistant message.
func (e *Engine) LastReply() (Message, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.messages) - 1; i >= 0; i-- {
		if !e.messages[i].IsUser {
			return e.messages[i], true
		}
	}
	return Message{}, false
}

func (e *Engine) setStatus(id string, st Status) {
	for i := range e.messages {
		if e.messages[i].ID == id {
			e.messages[i].Status = st
			return
		}
	}
}

func truncateGraphemes(s string, max int) string {
	if max <= 0 || uniseg.GraphemeClusterCount(s) <= max {
		return s
	}
	g := uniseg.NewGraphemes(s)
	end := 0
	for n := 0; n < max && g.Next(); n++ {
		_, end = g.Positions()
	}
	return s[:end]
}
