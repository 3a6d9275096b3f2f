package conversation

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	perrors "github.com/zhubert/manus/internal/errors"
	"github.com/zhubert/manus/internal/i18n"
)

func english() i18n.Static {
	return i18n.Static{Catalog: i18n.MustLoadCatalog(), Locale: i18n.EN}
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{
		WithDelay(time.Millisecond, 2*time.Millisecond),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	}, opts...)
	return NewEngine(english(), opts...)
}

func TestNewEngine_SeedsGreeting(t *testing.T) {
	tr := english()
	e := NewEngine(tr)
	msgs := e.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len(Messages()) = %d, want 1", len(msgs))
	}
	if msgs[0].IsUser || msgs[0].Text != tr.T("initialGreeting") || msgs[0].Status != StatusDelivered {
		t.Errorf("greeting = %+v", msgs[0])
	}
	if e.Busy() {
		t.Error("new engine should not be busy")
	}
}

func TestEngine_SendRejectsBlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		e := newTestEngine()
		e.SetInput(input)
		p, err := e.Send()
		if !errors.Is(err, ErrEmptyMessage) || p != nil {
			t.Errorf("Send(%q) = %v, %v; want ErrEmptyMessage", input, p, err)
		}
		if len(e.Messages()) != 1 {
			t.Errorf("Send(%q) changed the message list", input)
		}
	}
}

func TestEngine_SendHelloDeliversGreetingReply(t *testing.T) {
	tr := english()
	e := newTestEngine()
	e.SetInput("  Hello  ")

	p, err := e.Send()
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if e.Input() != "" {
		t.Errorf("Input() = %q, want cleared", e.Input())
	}
	if !e.Busy() {
		t.Error("Busy() = false while reply pending")
	}

	msgs := e.Messages()
	user := msgs[len(msgs)-1]
	if !user.IsUser || user.Text != "Hello" || user.Status != StatusSending {
		t.Errorf("user message = %+v, want trimmed text with sending status", user)
	}

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	reply, ok := e.Deliver(p)
	if !ok {
		t.Fatal("Deliver() ignored the reply")
	}
	if reply.Text != tr.T("responseHello") {
		t.Errorf("reply = %q, want responseHello", reply.Text)
	}

	msgs = e.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(Messages()) = %d, want 3", len(msgs))
	}
	if msgs[1].Status != StatusDelivered {
		t.Errorf("user status = %q, want delivered", msgs[1].Status)
	}
	if e.Busy() {
		t.Error("Busy() = true after delivery")
	}

	if _, ok := e.Deliver(p); ok {
		t.Error("delivering the same reply twice should be ignored")
	}
	if len(e.Messages()) != 3 {
		t.Error("duplicate Deliver() appended a message")
	}
}

func TestEngine_OneReplyInFlight(t *testing.T) {
	e := newTestEngine()
	e.SetInput("first")
	if _, err := e.Send(); err != nil {
		t.Fatal(err)
	}
	e.SetInput("second")
	if _, err := e.Send(); !errors.Is(err, ErrReplyPending) {
		t.Errorf("second Send() error = %v, want ErrReplyPending", err)
	}
	if e.Input() != "second" {
		t.Error("rejected send should keep the input")
	}
}

func TestEngine_DelayRange(t *testing.T) {
	e := NewEngine(english(), WithRand(rand.New(rand.NewPCG(7, 7))))
	for i := 0; i < 50; i++ {
		e.SetInput("ping")
		p, err := e.Send()
		if err != nil {
			t.Fatal(err)
		}
		if p.Delay < DefaultMinDelay || p.Delay >= DefaultMaxDelay {
			t.Fatalf("Delay = %v, want in [1.5s, 2.5s)", p.Delay)
		}
		e.Cancel()
	}
}

func TestEngine_Cancel(t *testing.T) {
	e := NewEngine(english(), WithDelay(time.Hour, 2*time.Hour))
	e.SetInput("hello")
	p, err := e.Send()
	if err != nil {
		t.Fatal(err)
	}

	errc := make(chan error, 1)
	go func() { errc <- p.Wait(context.Background()) }()

	if !e.Cancel() {
		t.Fatal("Cancel() = false with a pending reply")
	}
	select {
	case err := <-errc:
		if !perrors.Is(err, perrors.KindCancelled) {
			t.Errorf("Wait() error = %v, want KindCancelled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait() did not return after Cancel()")
	}

	msgs := e.Messages()
	if msgs[len(msgs)-1].Status != StatusError {
		t.Errorf("user status = %q, want error", msgs[len(msgs)-1].Status)
	}
	if _, ok := e.Deliver(p); ok {
		t.Error("cancelled reply was delivered")
	}
	if e.Busy() || e.Cancel() {
		t.Error("engine still busy after Cancel()")
	}
}

func TestPendingReply_WaitContext(t *testing.T) {
	e := NewEngine(english(), WithDelay(time.Hour, 2*time.Hour))
	e.SetInput("hi")
	p, _ := e.Send()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestEngine_InputLimit(t *testing.T) {
	e := newTestEngine(WithMaxInput(5))
	e.SetInput("héllo wörld")
	if got := e.Input(); got != "héllo" {
		t.Errorf("Input() = %q, want first 5 graphemes", got)
	}

	e.SetInput("👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽")
	if got := e.Input(); got != strings.Repeat("👍🏽", 5) {
		t.Errorf("Input() = %q, want 5 emoji clusters", got)
	}
}

func TestEngine_Retranslate(t *testing.T) {
	catalog := i18n.MustLoadCatalog()
	tr := &switchable{Static: i18n.Static{Catalog: catalog, Locale: i18n.EN}}
	e := NewEngine(tr, WithDelay(0, 0))

	tr.Locale = i18n.AR
	e.Retranslate()
	if got := e.Messages()[0].Text; got != catalog.Lookup(i18n.AR, "initialGreeting", nil) {
		t.Errorf("greeting not retranslated: %q", got)
	}

	e.SetInput("hello")
	p, _ := e.Send()
	e.Deliver(p)

	tr.Locale = i18n.EN
	e.Retranslate()
	if got := e.Messages()[0].Text; got != catalog.Lookup(i18n.AR, "initialGreeting", nil) {
		t.Error("greeting changed after the conversation started")
	}
}

func TestEngine_LastReply(t *testing.T) {
	e := newTestEngine()
	first, ok := e.LastReply()
	if !ok || first.IsUser {
		t.Fatal("LastReply() should return the greeting")
	}

	e.SetInput("thanks a lot")
	p, _ := e.Send()
	reply, _ := e.Deliver(p)

	got, _ := e.LastReply()
	if got.ID != reply.ID {
		t.Errorf("LastReply() = %q, want latest reply", got.Text)
	}
}

type switchable struct {
	i18n.Static
}
