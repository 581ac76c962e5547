package invoice

import "github.com/google/uuid"

// Handle is a stable reference to one line item for later edits and
// removal. Handles are not persisted; identity across reloads is the
// item's position in the list.
type Handle string

// Entry pairs a line item with its handle, in display order.
type Entry struct {
	Handle Handle
	Item   LineItem
}

// Ledger is the ordered collection of line items. Order is display order
// and is preserved across persistence round-trips. The ledger itself
// allows becoming empty; the document restores the one-item floor at
// load and reset boundaries.
type Ledger struct {
	entries []Entry
}

// NewLedger builds a ledger seeded with the given items.
func NewLedger(items ...LineItem) *Ledger {
	l := &Ledger{}
	for _, it := range items {
		l.AddItem(it)
	}
	return l
}

// AddItem appends a new item and returns its handle. The zero LineItem
// gives the usual empty row.
func (l *Ledger) AddItem(initial LineItem) Handle {
	h := Handle(uuid.NewString())
	l.entries = append(l.entries, Entry{Handle: h, Item: initial})
	return h
}

// Item returns the item for h, if it still exists.
func (l *Ledger) Item(h Handle) (LineItem, bool) {
	for _, e := range l.entries {
		if e.Handle == h {
			return e.Item, true
		}
	}
	return LineItem{}, false
}

// UpdateItem replaces the item identified by h in place.
func (l *Ledger) UpdateItem(h Handle, item LineItem) bool {
	for i := range l.entries {
		if l.entries[i].Handle == h {
			l.entries[i].Item = item
			return true
		}
	}
	return false
}

// RemoveItem deletes the item identified by h. Removing the last item is
// allowed: an empty ledger is a valid transient state.
func (l *Ledger) RemoveItem(h Handle) bool {
	for i := range l.entries {
		if l.entries[i].Handle == h {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns the rows in display order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Items returns just the line items in display order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Item
	}
	return out
}

// Len reports the current number of items.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Subtotal sums the extended amounts over all items in order.
func (l *Ledger) Subtotal() float64 {
	var sum float64
	for _, e := range l.entries {
		sum += e.Item.Amount()
	}
	return sum
}

// clone returns an independent copy of the ledger, handles included.
func (l *Ledger) clone() *Ledger {
	return &Ledger{entries: l.Entries()}
}
