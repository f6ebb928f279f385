package selection

import (
	"errors"
	"time"
)

var (
	ErrEmptyServiceID = errors.New("pending selection requires a service id")
	ErrEmptyAddOnID   = errors.New("pending selection contains an empty add-on id")
)

// PendingSelection is the user's in-progress checkout choice, persisted so
// it survives the authentication redirect. Exactly one slot exists per
// checkout session; a new attempt overwrites any prior one.
type PendingSelection struct {
	serviceID   string
	addOnIDs    []string
	promotionID string
	createdAt   time.Time
}

func NewPendingSelection(serviceID string, addOnIDs []string, promotionID string, createdAt time.Time) (*PendingSelection, error) {
	if serviceID == "" {
		return nil, ErrEmptyServiceID
	}
	for _, id := range addOnIDs {
		if id == "" {
			return nil, ErrEmptyAddOnID
		}
	}
	return &PendingSelection{
		serviceID:   serviceID,
		addOnIDs:    addOnIDs,
		promotionID: promotionID,
		createdAt:   createdAt,
	}, nil
}

func (p *PendingSelection) ServiceID() string    { return p.serviceID }
func (p *PendingSelection) AddOnIDs() []string   { return p.addOnIDs }
func (p *PendingSelection) PromotionID() string  { return p.promotionID }
func (p *PendingSelection) CreatedAt() time.Time { return p.createdAt }
