package catalog

import "errors"

var ErrInvalidBillingDuration = errors.New("recurring billing duration must be positive")

type BillingKind string

const (
	BillingOneTime   BillingKind = "oneTime"
	BillingRecurring BillingKind = "recurring"
)

// Billing describes how an add-on is charged: once, or recurring over a
// fixed number of months.
type Billing struct {
	kind           BillingKind
	durationMonths int
}

func OneTimeBilling() Billing {
	return Billing{kind: BillingOneTime}
}

func RecurringBilling(durationMonths int) (Billing, error) {
	if durationMonths <= 0 {
		return Billing{}, ErrInvalidBillingDuration
	}
	return Billing{kind: BillingRecurring, durationMonths: durationMonths}, nil
}

func (b Billing) Kind() BillingKind {
	return b.kind
}

func (b Billing) IsRecurring() bool {
	return b.kind == BillingRecurring
}

func (b Billing) DurationMonths() int {
	return b.durationMonths
}
