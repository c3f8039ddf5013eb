package centavo

import (
	"net/url"
	"strconv"
	"time"
)

// isoDate is the gateway's date-boundary format. Both bounds are inclusive.
const isoDate = "2006-01-02"

// SearchParams filters list operations. A zero SearchParams lists
// everything, bounded only by the gateway's own pagination defaults.
type SearchParams struct {
	OrderID     string
	Status      ChargeStatus
	CreationGte time.Time
	CreationLte time.Time
	Offset      int
	Limit       int
}

// query translates the populated fields into the transport's query
// representation. Unset fields are left out entirely.
func (p *SearchParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.OrderID != "" {
		q.Set("order_id", p.OrderID)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if !p.CreationGte.IsZero() {
		q.Set("creation_gte", p.CreationGte.Format(isoDate))
	}
	if !p.CreationLte.IsZero() {
		q.Set("creation_lte", p.CreationLte.Format(isoDate))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}
