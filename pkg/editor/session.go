// Package editor owns the single live invoice document and funnels
// every user action through the same rule: mutate, recalculate, schedule
// a debounced save. Handlers never touch the document directly.
package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/logger"
	"github.com/invoizy/invoizy/pkg/logo"
	"github.com/invoizy/invoizy/pkg/money"
	"github.com/invoizy/invoizy/pkg/store"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrNoSuchItem   = errors.New("no such item")
	ErrNotConfirmed = errors.New("reset not confirmed")
)

// Session holds the authoritative document for one editing session.
// Mutations are serialized under one mutex; the snapshot file is a
// single shared resource with last-writer-wins semantics, acceptable
// because this session is its only writer.
type Session struct {
	mu    sync.Mutex
	doc   *invoice.Document
	store *store.FileStore
	saver *store.DebouncedSaver
	log   *logger.Logger
	now   func() time.Time
}

// Option tweaks session construction.
type Option func(*Session)

// WithClock fixes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession reconstructs the document from the stored snapshot when one
// is present and parseable, and starts from the default document
// otherwise.
func NewSession(st *store.FileStore, debounce time.Duration, log *logger.Logger, opts ...Option) *Session {
	s := &Session{store: st, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = store.Decode(st.Load(), s.now())
	s.saver = store.NewDebouncedSaver(debounce, s.persist, log)
	return s
}

func (s *Session) persist() error {
	s.mu.Lock()
	snap := store.Encode(s.doc)
	s.mu.Unlock()
	return s.store.Save(snap)
}

// mutate applies one user action and enforces the
// recalculate-then-schedule-save contract in a single place.
func (s *Session) mutate(fn func(d *invoice.Document) error) error {
	s.mu.Lock()
	err := fn(s.doc)
	if err == nil {
		s.doc.Recalculate()
	}
	s.mu.Unlock()
	if err == nil {
		s.saver.Schedule()
	}
	return err
}

// fieldSetters is the explicit dispatch table for free-text edits, keyed
// by the persisted field names.
var fieldSetters = map[string]func(*invoice.Document, string){
	"invoiceTitle":      func(d *invoice.Document, v string) { d.Title = v },
	"invoiceNumber":     func(d *invoice.Document, v string) { d.Number = v },
	"fromDetails":       func(d *invoice.Document, v string) { d.FromDetails = v },
	"toDetails":         func(d *invoice.Document, v string) { d.ToDetails = v },
	"invoiceDate":       func(d *invoice.Document, v string) { d.IssueDate = v },
	"invoiceDue":        func(d *invoice.Document, v string) { d.DueDate = v },
	"notes":             func(d *invoice.Document, v string) { d.Notes = v },
	"bankName":          func(d *invoice.Document, v string) { d.BankName = v },
	"bankAccountName":   func(d *invoice.Document, v string) { d.BankAccountName = v },
	"bankAccountNumber": func(d *invoice.Document, v string) { d.BankAccountNumber = v },
	"bankRouting":       func(d *invoice.Document, v string) { d.BankRouting = v },
	"footerThank":       func(d *invoice.Document, v string) { d.FooterThank = v },
	"taxRate":           func(d *invoice.Document, v string) { d.TaxRate = v },
	"discountRate":      func(d *invoice.Document, v string) { d.DiscountRate = v },
}

// SetField applies one free-text edit by persisted field name.
func (s *Session) SetField(name, value string) error {
	set, ok := fieldSetters[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return s.mutate(func(d *invoice.Document) error {
		set(d, value)
		return nil
	})
}

// AddItem appends a new line item and returns its handle.
func (s *Session) AddItem(initial invoice.LineItem) invoice.Handle {
	var h invoice.Handle
	_ = s.mutate(func(d *invoice.Document) error {
		h = d.Ledger.AddItem(initial)
		return nil
	})
	return h
}

// UpdateItem edits one line item in place.
func (s *Session) UpdateItem(h invoice.Handle, item invoice.LineItem) error {
	return s.mutate(func(d *invoice.Document) error {
		if !d.Ledger.UpdateItem(h, item) {
			return ErrNoSuchItem
		}
		return nil
	})
}

// RemoveItem deletes one line item. Removing the last row is allowed;
// the one-item floor is restored only at load and reset boundaries.
func (s *Session) RemoveItem(h invoice.Handle) error {
	return s.mutate(func(d *invoice.Document) error {
		if !d.Ledger.RemoveItem(h) {
			return ErrNoSuchItem
		}
		return nil
	})
}

// ShowDiscount toggles the discount row. The stored rate is untouched,
// so re-enabling restores the rate-based amount without re-entry.
func (s *Session) ShowDiscount(show bool) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.ShowDiscount = show
		return nil
	})
}

// ShowTax toggles the tax row.
func (s *Session) ShowTax(show bool) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.ShowTax = show
		return nil
	})
}

// SetCurrency switches the display currency. Stored numeric amounts are
// untouched; only formatting changes.
func (s *Session) SetCurrency(c money.Currency) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Currency = c
		return nil
	})
}

// SetTemplate switches the presentation variant.
func (s *Session) SetTemplate(t invoice.Template) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Template = t
		return nil
	})
}

// SetStatus updates the lifecycle state.
func (s *Session) SetStatus(st invoice.Status) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Status = st
		return nil
	})
}

// UploadLogo converts the uploaded bytes once the out-of-band read has
// completed and applies the logo atomically: image data, then size, so
// no reader observes a half-applied logo. Non-image input is ignored
// silently, leaving any existing logo in place.
func (s *Session) UploadLogo(raw []byte) error {
	uri, err := logo.DataURI(raw)
	if err != nil {
		if errors.Is(err, logo.ErrUnsupportedType) {
			s.log.Debugf("ignoring non-image logo upload (%d bytes)", len(raw))
			return nil
		}
		return err
	}
	return s.mutate(func(d *invoice.Document) error {
		d.Logo.Data = uri
		if d.Logo.Size <= 0 {
			d.Logo.SetSize(invoice.DefaultLogoSize)
		}
		return nil
	})
}

// MoveLogo stores a new drag offset, unclamped.
func (s *Session) MoveLogo(x, y float64) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Logo.SetPosition(x, y)
		return nil
	})
}

// ResizeLogo stores a new slider size.
func (s *Session) ResizeLogo(size float64) {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Logo.SetSize(size)
		return nil
	})
}

// ClearLogo removes the image and resets its placement.
func (s *Session) ClearLogo() {
	_ = s.mutate(func(d *invoice.Document) error {
		d.Logo.Clear()
		return nil
	})
}

// NewInvoice discards everything. It is gated by an explicit
// confirmation from the caller. The stored snapshot is removed and any
// pending save cancelled before the in-memory document is replaced, so
// the store stays empty until the next edit.
func (s *Session) NewInvoice(confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	s.saver.Cancel()
	if err := s.store.Clear(); err != nil {
		s.log.Warnf("clearing snapshot: %v", err)
	}
	s.mu.Lock()
	s.doc.Reset(s.now())
	s.mu.Unlock()
	return nil
}

// Document returns a deep copy of the current document for readers that
// work outside the session lock, such as the PDF renderer.
func (s *Session) Document() *invoice.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Flush writes any pending save immediately, for shutdown.
func (s *Session) Flush() {
	s.saver.Flush()
}

// Close stops the saver without writing.
func (s *Session) Close() {
	s.saver.Close()
}
