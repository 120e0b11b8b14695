package services

import (
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// Clipboard receives the chosen message text.
type Clipboard interface {
	WriteAll(text string) error
}

type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

type GenerateRequest struct {
	ContactID  string
	OccasionID string
	Style      models.MessageStyle
}

type Generation struct {
	Messages []string
	Source   Source
}

type SendRequest struct {
	Text string
}

// SendResult describes a logged message. The text still has to be sent by
// hand from a messaging app to PhoneNumber. ClipboardErr and ReloadErr
// report follow-up steps that failed after the message was stored.
type SendResult struct {
	Message      *models.Message
	PhoneNumber  string
	ClipboardErr error
	ReloadErr    error
}

// Selection is the composer's current input.
type Selection struct {
	ContactID  string
	OccasionID string
	Style      models.MessageStyle
	Options    []string
}

// Composer generates message options and logs the one the user sends.
type Composer struct {
	state     *State
	client    client.Client
	primary   Strategy
	fallback  Strategy
	clipboard Clipboard
	logger    logging.Logger
	now       func() time.Time

	busy atomic.Bool

	mu  sync.Mutex
	sel Selection
}

func NewComposer(state *State, c client.Client, primary Strategy, clipboard Clipboard, logger logging.Logger) *Composer {
	return &Composer{
		state:     state,
		client:    c,
		primary:   primary,
		fallback:  FallbackStrategy{},
		clipboard: clipboard,
		logger:    logger,
		now:       time.Now,
		sel:       Selection{Style: models.StyleWarm},
	}
}

func (c *Composer) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	sel := c.sel
	sel.Options = slices.Clone(c.sel.Options)
	return sel
}

// SelectContact picks the recipient. Choosing a different contact drops the
// occasion and any offered options.
func (c *Composer) SelectContact(id string) error {
	if id != "" {
		if _, ok := c.state.Contact(id); !ok {
			return &ValidationError{Field: "contact", Reason: "unknown contact"}
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel.ContactID != id {
		c.sel.OccasionID = ""
		c.sel.Options = nil
	}
	c.sel.ContactID = id
	return nil
}

// SelectOccasion picks one of the selected contact's occasions; "" means
// none.
func (c *Composer) SelectOccasion(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id != "" {
		o, ok := c.state.Occasion(id)
		if !ok || o.ContactID != c.sel.ContactID {
			return &ValidationError{Field: "occasion", Reason: "not an occasion of the selected contact"}
		}
	}
	c.sel.OccasionID = id
	return nil
}

func (c *Composer) SelectStyle(style models.MessageStyle) error {
	if !style.Valid() {
		return &ValidationError{Field: "style", Reason: "must be formal, casual or warm"}
	}
	c.mu.Lock()
	c.sel.Style = style
	c.mu.Unlock()
	return nil
}

// Reset forgets the selection, as after sign-out.
func (c *Composer) Reset() {
	c.mu.Lock()
	c.sel = Selection{Style: models.StyleWarm}
	c.mu.Unlock()
}

// Generate offers OptionCount messages for the request. Provider failures
// are logged and replaced by the fallback templates, so the only errors are
// input errors and ErrGenerationInProgress.
func (c *Composer) Generate(ctx context.Context, req GenerateRequest) (*Generation, error) {
	if req.ContactID == "" {
		return nil, ErrNoContactSelected
	}
	contact, ok := c.state.Contact(req.ContactID)
	if !ok {
		return nil, &ValidationError{Field: "contact", Reason: "unknown contact"}
	}
	style := req.Style
	if style == "" {
		style = models.StyleWarm
	}
	if !style.Valid() {
		return nil, &ValidationError{Field: "style", Reason: "must be formal, casual or warm"}
	}

	var occasion *models.Occasion
	if req.OccasionID != "" {
		if o, ok := c.state.Occasion(req.OccasionID); ok {
			occasion = &o
		}
	}

	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrGenerationInProgress
	}
	defer c.busy.Store(false)

	gen := &Generation{Source: SourceProvider}
	msgs, err := c.primary.Options(ctx, contact, occasion, style)
	if err != nil {
		c.logger.Warn(ctx, "message generation failed, using fallback", "contact_id", contact.ID, "error", err)
		msgs, _ = c.fallback.Options(ctx, contact, occasion, style)
		gen.Source = SourceFallback
	}
	gen.Messages = msgs

	c.mu.Lock()
	if c.sel.ContactID == req.ContactID {
		c.sel.Options = slices.Clone(msgs)
	}
	c.mu.Unlock()

	return gen, nil
}

// Send logs text as sent to the selected contact, copies it to the
// clipboard and reloads. If the store rejects the message nothing else
// happens and the offered options are kept.
func (c *Composer) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	sel := c.Selection()
	if sel.ContactID == "" {
		return nil, ErrNoContactSelected
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, &ValidationError{Field: "message", Reason: "is empty"}
	}
	contact, ok := c.state.Contact(sel.ContactID)
	if !ok {
		return nil, &ValidationError{Field: "contact", Reason: "unknown contact"}
	}

	sentAt := c.now().UTC()
	created, err := c.client.CreateMessage(ctx, models.Message{
		ContactID:   sel.ContactID,
		OccasionID:  sel.OccasionID,
		MessageText: req.Text,
		Style:       sel.Style,
		SentAt:      &sentAt,
		Status:      models.StatusSent,
	})
	if err != nil {
		return nil, err
	}

	res := &SendResult{Message: created, PhoneNumber: contact.PhoneNumber}

	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(req.Text); err != nil {
			c.logger.Warn(ctx, "clipboard write failed", "error", err)
			res.ClipboardErr = err
		}
	}

	res.ReloadErr = c.state.Reload(ctx)

	c.mu.Lock()
	c.sel.Options = nil
	c.mu.Unlock()

	return res, nil
}
