// File: internal/usecase/chat_uc.go
package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/i18n"
	"ai-health-assistant/internal/infra/logging"
	"ai-health-assistant/internal/infra/metrics"
)

// Compile-time check
var _ ChatUseCase = (*chatUC)(nil)

// ChatUseCase owns the ordered message log and routes each outgoing message
// to the canned table (anonymous) or the remote chat endpoint
// (authenticated).
type ChatUseCase interface {
	SendMessage(ctx context.Context, text string) (reply string, err error)
	AppendNotice(text string)
	Messages() []model.Message
	Pending() bool
	Reset()
}

type chatUC struct {
	session SessionUseCase
	gate    FeatureGate
	backend adapter.Backend
	cat     *i18n.Catalog
	log     *zerolog.Logger

	mu       sync.Mutex
	messages []model.Message
	pending  bool
	epoch    uint64
}

func NewChatUseCase(session SessionUseCase, gate FeatureGate, backend adapter.Backend, cat *i18n.Catalog, logger *zerolog.Logger) *chatUC {
	return &chatUC{session: session, gate: gate, backend: backend, cat: cat, log: logger}
}

// SendMessage appends the user message immediately, then resolves exactly
// one assistant reply. The pending flag is cleared on every path, including
// failures. A reply that arrives after Reset (logout while in flight) is
// dropped rather than appended to the next session's log.
func (c *chatUC) SendMessage(ctx context.Context, text string) (string, error) {
	defer logging.TraceDuration(c.log, "ChatUC.SendMessage")()

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyMessage
	}

	sess := c.session.Current()

	c.mu.Lock()
	epoch := c.epoch
	c.messages = append(c.messages, model.NewMessage(model.AuthorUser, text))
	c.pending = true
	c.mu.Unlock()
	metrics.IncChatMessage(string(model.AuthorUser))

	defer c.settle(epoch)

	var reply string
	if !c.gate.CanUseFeature(sess.IsAuthenticated()) {
		reply = c.cat.Canned(text)
	} else {
		r, err := c.backend.Chat(ctx, sess.Token, text)
		if err != nil {
			c.log.Warn().Err(err).Msg("chat request failed; degrading to apology")
			reply = c.cat.T("chat.apology")
		} else {
			reply = r
		}
	}

	c.appendAssistant(epoch, reply)
	return reply, nil
}

// AppendNotice adds an assistant-authored informational message (goal
// summaries, invitations, confirmations).
func (c *chatUC) AppendNotice(text string) {
	c.mu.Lock()
	c.messages = append(c.messages, model.NewMessage(model.AuthorAssistant, text))
	c.mu.Unlock()
	metrics.IncChatMessage(string(model.AuthorAssistant))
}

// Messages returns a copy of the log in insertion order.
func (c *chatUC) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *chatUC) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Reset clears the log entirely and invalidates in-flight sends. Nothing
// survives a logout.
func (c *chatUC) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.pending = false
	c.epoch++
}

func (c *chatUC) appendAssistant(epoch uint64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.messages = append(c.messages, model.NewMessage(model.AuthorAssistant, text))
	metrics.IncChatMessage(string(model.AuthorAssistant))
}

func (c *chatUC) settle(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch == c.epoch {
		c.pending = false
	}
}
