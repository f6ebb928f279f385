package promotion

import "errors"

var (
	ErrEmptyID              = errors.New("promotion id cannot be empty")
	ErrEmptyServiceID       = errors.New("promotion service id cannot be empty")
	ErrInvalidKind          = errors.New("invalid promotion kind")
	ErrInvalidDiscountValue = errors.New("percent discount value must be in (0, 100]")
	ErrInvalidQuantity      = errors.New("invalid promotion quantity")
)

type Kind string

const (
	KindFree            Kind = "FREE"
	KindPercentDiscount Kind = "PERCENT_DISCOUNT"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFree, KindPercentDiscount:
		return true
	default:
		return false
	}
}

// Promotion is a scarce, quantity-limited discount or free grant tied to a
// single service id. The backend owns the counters; everything held here is
// advisory and corrected on every refresh.
type Promotion struct {
	id            string
	serviceID     string
	kind          Kind
	discountValue float64
	quantityLimit int
	quantityUsed  int
	active        bool
}

func NewPromotion(
	id, serviceID string,
	kind Kind,
	discountValue float64,
	quantityLimit, quantityUsed int,
	active bool,
) (*Promotion, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if serviceID == "" {
		return nil, ErrEmptyServiceID
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind == KindPercentDiscount && (discountValue <= 0 || discountValue > 100) {
		return nil, ErrInvalidDiscountValue
	}
	if kind == KindFree && discountValue != 0 {
		return nil, ErrInvalidDiscountValue
	}
	if quantityLimit < 1 || quantityUsed < 0 || quantityUsed > quantityLimit {
		return nil, ErrInvalidQuantity
	}
	return &Promotion{
		id:            id,
		serviceID:     serviceID,
		kind:          kind,
		discountValue: discountValue,
		quantityLimit: quantityLimit,
		quantityUsed:  quantityUsed,
		active:        active,
	}, nil
}

// AppliesTo reports whether the promotion can discount the given service.
// Both the active flag and the remaining quantity are checked; the flag
// alone cannot be trusted between refreshes.
func (p *Promotion) AppliesTo(serviceID string) bool {
	return p.active && p.quantityUsed < p.quantityLimit && p.serviceID == serviceID
}

func (p *Promotion) Exhausted() bool {
	return p.quantityUsed >= p.quantityLimit
}

func (p *Promotion) Remaining() int {
	if p.Exhausted() {
		return 0
	}
	return p.quantityLimit - p.quantityUsed
}

func (p *Promotion) ID() string             { return p.id }
func (p *Promotion) ServiceID() string      { return p.serviceID }
func (p *Promotion) Kind() Kind             { return p.kind }
func (p *Promotion) DiscountValue() float64 { return p.discountValue }
func (p *Promotion) QuantityLimit() int     { return p.quantityLimit }
func (p *Promotion) QuantityUsed() int      { return p.quantityUsed }
func (p *Promotion) Active() bool           { return p.active }

// Snapshot holds the promotion set as of one refresh, keyed by service id.
// It is passed explicitly through the checkout pipeline instead of living in
// an ambient singleton.
type Snapshot map[string]*Promotion

func (s Snapshot) For(serviceID string) *Promotion {
	if s == nil {
		return nil
	}
	return s[serviceID]
}

// Applicable returns the promotion for serviceID only when it can actually
// be applied, else nil.
func (s Snapshot) Applicable(serviceID string) *Promotion {
	p := s.For(serviceID)
	if p == nil || !p.AppliesTo(serviceID) {
		return nil
	}
	return p
}
