package internal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger owns the collection of subscription records. All operations take a
// single coarse lock: the periodic tick runs on its own goroutine and must be
// serialized with user-triggered mutations, since every operation reads and
// then writes the same slice.
type Ledger struct {
	mu   sync.Mutex
	subs []Subscription
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add validates and appends a new user-entered subscription, returning the
// stored record with its assigned id. A failed add leaves the ledger
// unchanged.
func (l *Ledger) Add(name string, amount float64, currency Currency, startDate time.Time, recurring bool) (Subscription, error) {
	if strings.TrimSpace(name) == "" {
		return Subscription{}, fmt.Errorf("adding subscription: %w", ErrInvalidName)
	}
	if amount <= 0 {
		return Subscription{}, fmt.Errorf("adding subscription %q: %w", name, ErrInvalidAmount)
	}
	if _, ok := currencyTable[currency]; !ok {
		return Subscription{}, fmt.Errorf("adding subscription %q: %w", name, ErrUnknownCurrency)
	}

	sub := Subscription{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Currency:    currency,
		StartDate:   truncateToDay(startDate),
		IsRecurring: recurring,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, sub)
	return sub, nil
}

// AddRecord appends an already-built record, used when loading a ledger from
// a parsed subscription file. The same validation as Add applies.
func (l *Ledger) AddRecord(sub Subscription) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("adding subscription: %w", ErrInvalidName)
	}
	if sub.Amount <= 0 {
		return fmt.Errorf("adding subscription %q: %w", sub.Name, ErrInvalidAmount)
	}
	if _, ok := currencyTable[sub.Currency]; !ok {
		return fmt.Errorf("adding subscription %q: %w", sub.Name, ErrUnknownCurrency)
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, sub)
	return nil
}

// Remove deletes the record with the given id.
func (l *Ledger) Remove(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.subs {
		if l.subs[i].ID == id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("removing subscription %s: %w", id, ErrNotFound)
}

// RemoveAt deletes the record at the given display index.
func (l *Ledger) RemoveAt(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.subs) {
		return fmt.Errorf("removing subscription at %d: %w", index, ErrNotFound)
	}
	l.subs = append(l.subs[:index], l.subs[index+1:]...)
	return nil
}

// Cancel sets the cancellation date on the record with the given id. The
// date may lie in the past or the future; billing stops for dates on or
// after it.
func (l *Ledger) Cancel(id uuid.UUID, cancelDate time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.subs {
		if l.subs[i].ID == id {
			d := truncateToDay(cancelDate)
			l.subs[i].CancelDate = &d
			return nil
		}
	}
	return fmt.Errorf("cancelling subscription %s: %w", id, ErrNotFound)
}

// Tick evaluates every recurring subscription against currentDate. When a
// subscription's next charge date falls on that calendar day, the ledger
// records the charge: the parent's LastChargeDate advances and a one-time
// record is appended with the same amount and currency, named after the
// parent with the auto-charge marker.
//
// Cancellation dates are deliberately not consulted here, and there is no
// per-day dedup key beyond LastChargeDate advancing.
//
// Returns the charges materialized by this invocation.
func (l *Ledger) Tick(currentDate time.Time) []Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	var charges []Subscription
	for i := range l.subs {
		if !l.subs[i].IsRecurring {
			continue
		}

		next := NextChargeDate(l.subs[i])
		if next == nil || !SameDay(*next, currentDate) {
			continue
		}

		l.subs[i].LastChargeDate = next
		charges = append(charges, Subscription{
			ID:          uuid.New(),
			Name:        l.subs[i].Name + AutoChargeSuffix,
			Amount:      l.subs[i].Amount,
			Currency:    l.subs[i].Currency,
			StartDate:   *next,
			IsRecurring: false,
		})
	}

	l.subs = append(l.subs, charges...)
	return charges
}

// Subscriptions returns a read-only snapshot of the ledger in insertion
// order.
func (l *Ledger) Subscriptions() []Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Subscription, len(l.subs))
	copy(out, l.subs)
	return out
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// OnDate returns the subscriptions that charge on the given date: recurring
// records via their billing day, one-time records via an exact day match on
// StartDate.
func (l *Ledger) OnDate(date time.Time) []Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Subscription
	for _, sub := range l.subs {
		if sub.IsRecurring {
			if IsChargeDay(sub, date) {
				out = append(out, sub)
			}
		} else if SameDay(sub.StartDate, date) {
			out = append(out, sub)
		}
	}
	return out
}
