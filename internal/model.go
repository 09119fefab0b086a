package internal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation and lookup errors surfaced by ledger entry points.
var (
	ErrInvalidName     = errors.New("subscription name must not be empty")
	ErrInvalidAmount   = errors.New("subscription amount must be positive")
	ErrNotFound        = errors.New("subscription not found")
	ErrUnknownCurrency = errors.New("unknown currency code")
)

// AutoChargeSuffix marks ledger records materialized by a tick rather than
// entered by the user.
const AutoChargeSuffix = " (auto-charge)"

// Subscription is a single billing obligation. A recurring subscription
// charges monthly on the day-of-month of StartDate; a non-recurring one is a
// single charge event on StartDate.
type Subscription struct {
	ID             uuid.UUID
	Name           string
	Amount         float64
	Currency       Currency
	StartDate      time.Time
	LastChargeDate *time.Time // nil until the first materialized charge
	IsRecurring    bool
	CancelDate     *time.Time // nil means never cancelled
}

// IsAutoCharge reports whether this record was materialized by a tick.
func (s Subscription) IsAutoCharge() bool {
	return strings.HasSuffix(s.Name, AutoChargeSuffix)
}
