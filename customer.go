package centavo

import "time"

// Customer is a gateway-side customer record. ExternalID is tri-state: a
// caller reusing a listed customer on a new charge may clear it, and the
// clear must reach the wire as an explicit null rather than an omission.
type Customer struct {
	ID           string           `json:"id,omitempty"`
	ExternalID   Optional[string] `json:"external_id,omitzero"`
	Name         string           `json:"name,omitempty"`
	LastName     string           `json:"last_name,omitempty"`
	Email        string           `json:"email,omitempty"`
	PhoneNumber  string           `json:"phone_number,omitempty"`
	CreationDate time.Time        `json:"creation_date,omitzero"`
}

func (c *Customer) checkDecoded() error {
	if c.ID == "" {
		return &DecodingError{Entity: "Customer", Field: "id"}
	}
	return nil
}
