package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"edgefinder/internal/metrics"
)

const (
	// HistoryWindow is how many recent messages go to the remote service.
	HistoryWindow = 10

	DefaultTimeout = 20 * time.Second
)

// ErrServiceUnavailable wraps every remote failure. It never reaches the
// user; the responder answers locally instead.
var ErrServiceUnavailable = errors.New("advisory service unavailable")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Source says which stage produced a reply.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Reply struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Completer is a remote chat completion backend.
type Completer interface {
	Complete(ctx context.Context, system string, history []Message) (string, error)
}

// FallbackNotifier is told when a remote call fails.
type FallbackNotifier interface {
	AlertFallback(err error) bool
}

// Responder answers chat messages, remotely when a Completer is set and
// from the canned table otherwise.
type Responder struct {
	completer Completer
	timeout   time.Duration
	log       *zap.Logger
	metrics   *metrics.Metrics
	notifier  FallbackNotifier
}

// Option configures a Responder.
type Option func(*Responder)

// WithCompleter enables the remote stage.
func WithCompleter(c Completer) Option {
	return func(r *Responder) { r.completer = c }
}

func WithTimeout(d time.Duration) Option {
	return func(r *Responder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Responder) { r.metrics = m }
}

func WithNotifier(n FallbackNotifier) Option {
	return func(r *Responder) { r.notifier = n }
}

func NewResponder(opts ...Option) *Responder {
	r := &Responder{timeout: DefaultTimeout, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remote reports whether a remote backend is configured.
func (r *Responder) Remote() bool {
	return r.completer != nil
}

// Respond answers text given the transcript so far (not including text).
func (r *Responder) Respond(ctx context.Context, text string, history []Message) Reply {
	if reply, ok := r.tryRemote(ctx, text, history); ok {
		r.metrics.RecordReply(string(SourceRemote))
		return Reply{Text: reply, Source: SourceRemote}
	}
	r.metrics.RecordReply(string(SourceLocal))
	return Reply{Text: r.localFallback(text), Source: SourceLocal}
}

// Answer is Respond without the remote stage, used when a session is over
// its chat rate.
func (r *Responder) Answer(text string) Reply {
	r.metrics.RecordReply(string(SourceLocal))
	return Reply{Text: r.localFallback(text), Source: SourceLocal}
}

func (r *Responder) tryRemote(ctx context.Context, text string, history []Message) (string, bool) {
	if r.completer == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	window := Window(append(append([]Message(nil), history...), Message{Role: RoleUser, Content: text}))

	start := time.Now()
	reply, err := r.completer.Complete(ctx, SystemPrompt, window)
	r.metrics.ObserveAdvisor(time.Since(start))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		r.log.Warn("remote advisor failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		if r.notifier != nil {
			r.notifier.AlertFallback(err)
		}
		return "", false
	}
	return reply, true
}

func (r *Responder) localFallback(text string) string {
	return LocalReply(text)
}

// LocalReply resolves text against the canned table, falling back to the
// quick take template.
func LocalReply(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, c := range cannedReplies {
		if strings.Contains(lower, c.key) {
			return c.reply
		}
	}
	return fmt.Sprintf(quickTake, text)
}

// Window returns at most the last HistoryWindow messages.
func Window(msgs []Message) []Message {
	if len(msgs) > HistoryWindow {
		return msgs[len(msgs)-HistoryWindow:]
	}
	return msgs
}
