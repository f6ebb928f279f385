package catalog

import (
	"errors"
)

var (
	ErrEmptyID        = errors.New("catalog item id cannot be empty")
	ErrEmptyTitle     = errors.New("catalog item title cannot be empty")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrUnknownService = errors.New("unknown service id")
	ErrUnknownAddOn   = errors.New("unknown add-on id")
)

// Service is a purchasable base offering. A package is priced as a single
// unit; the bundled service ids it carries are informational only.
type Service struct {
	id                 string
	title              string
	description        string
	basePriceCents     int64
	originalPriceCents *int64
	features           []string
	isPackage          bool
	bundledServiceIDs  []string
}

func NewService(
	id, title, description string,
	basePriceCents int64,
	originalPriceCents *int64,
	features []string,
) (*Service, error) {
	return newService(id, title, description, basePriceCents, originalPriceCents, features, false, nil)
}

func NewPackage(
	id, title, description string,
	basePriceCents int64,
	originalPriceCents *int64,
	features []string,
	bundledServiceIDs []string,
) (*Service, error) {
	return newService(id, title, description, basePriceCents, originalPriceCents, features, true, bundledServiceIDs)
}

func newService(
	id, title, description string,
	basePriceCents int64,
	originalPriceCents *int64,
	features []string,
	isPackage bool,
	bundledServiceIDs []string,
) (*Service, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if originalPriceCents != nil && *originalPriceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:                 id,
		title:              title,
		description:        description,
		basePriceCents:     basePriceCents,
		originalPriceCents: originalPriceCents,
		features:           features,
		isPackage:          isPackage,
		bundledServiceIDs:  bundledServiceIDs,
	}, nil
}

func (s *Service) ID() string                 { return s.id }
func (s *Service) Title() string              { return s.title }
func (s *Service) Description() string        { return s.description }
func (s *Service) BasePriceCents() int64      { return s.basePriceCents }
func (s *Service) OriginalPriceCents() *int64 { return s.originalPriceCents }
func (s *Service) Features() []string         { return s.features }
func (s *Service) IsPackage() bool            { return s.isPackage }
func (s *Service) BundledServiceIDs() []string {
	return s.bundledServiceIDs
}

// AddOn is an independently priced extra attachable to any purchase.
type AddOn struct {
	id         string
	name       string
	priceCents int64
	billing    Billing
}

func NewAddOn(id, name string, priceCents int64, billing Billing) (*AddOn, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if name == "" {
		return nil, ErrEmptyTitle
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &AddOn{
		id:         id,
		name:       name,
		priceCents: priceCents,
		billing:    billing,
	}, nil
}

func (a *AddOn) ID() string        { return a.id }
func (a *AddOn) Name() string      { return a.name }
func (a *AddOn) PriceCents() int64 { return a.priceCents }
func (a *AddOn) Billing() Billing  { return a.billing }

// Catalog is an immutable snapshot of everything purchasable. Identity of
// each item is its id; lookups on unknown ids fail loudly so a stale
// selection can never be silently priced.
type Catalog struct {
	services     map[string]*Service
	addOns       map[string]*AddOn
	serviceOrder []string
	addOnOrder   []string
}

func NewCatalog(services []*Service, addOns []*AddOn) *Catalog {
	c := &Catalog{
		services: make(map[string]*Service, len(services)),
		addOns:   make(map[string]*AddOn, len(addOns)),
	}
	for _, s := range services {
		if _, dup := c.services[s.ID()]; dup {
			continue
		}
		c.services[s.ID()] = s
		c.serviceOrder = append(c.serviceOrder, s.ID())
	}
	for _, a := range addOns {
		if _, dup := c.addOns[a.ID()]; dup {
			continue
		}
		c.addOns[a.ID()] = a
		c.addOnOrder = append(c.addOnOrder, a.ID())
	}
	return c
}

func (c *Catalog) Service(id string) (*Service, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, ErrUnknownService
	}
	return s, nil
}

func (c *Catalog) AddOn(id string) (*AddOn, error) {
	a, ok := c.addOns[id]
	if !ok {
		return nil, ErrUnknownAddOn
	}
	return a, nil
}

func (c *Catalog) Services() []*Service {
	out := make([]*Service, 0, len(c.serviceOrder))
	for _, id := range c.serviceOrder {
		out = append(out, c.services[id])
	}
	return out
}

func (c *Catalog) AddOns() []*AddOn {
	out := make([]*AddOn, 0, len(c.addOnOrder))
	for _, id := range c.addOnOrder {
		out = append(out, c.addOns[id])
	}
	return out
}
