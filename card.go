package centavo

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// PointsType identifies the loyalty program a card participates in.
type PointsType string

const (
	PointsBancomer   PointsType = "BANCOMER"
	PointsSantander  PointsType = "SANTANDER"
	PointsScotiabank PointsType = "SCOTIABANK"
)

// Card is a tokenizable payment card. CardNumber and CVV2 are write-only
// inputs: the gateway never echoes them back, and responses carry only the
// masked number. The luhn tag runs a check-digit pass locally so a typo
// fails before a network round trip.
type Card struct {
	ID              string     `json:"id,omitempty"`
	CardNumber      string     `json:"card_number,omitempty" validate:"required,numeric,min=12,max=19,luhn"`
	HolderName      string     `json:"holder_name,omitempty" validate:"required"`
	CVV2            string     `json:"cvv2,omitempty" validate:"required,numeric,min=3,max=4"`
	ExpirationMonth string     `json:"expiration_month,omitempty" validate:"required,numeric,len=2"`
	ExpirationYear  string     `json:"expiration_year,omitempty" validate:"required,numeric,len=2"`
	Brand           string     `json:"brand,omitempty"`
	Type            string     `json:"type,omitempty"`
	BankName        string     `json:"bank_name,omitempty"`
	AllowsPoints    bool       `json:"points_card,omitempty"`
	PointsType      PointsType `json:"points_type,omitempty"`
	CreationDate    time.Time  `json:"creation_date,omitzero"`
}

// UnmarshalJSON drops cvv2 on decode. The secret is a write-only input;
// even a misbehaving gateway or proxy that echoes it must never land it in
// a caller-held entity.
func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	p.CVV2 = ""
	*c = Card(p)
	return nil
}

func (c *Card) checkDecoded() error {
	if c.ID == "" {
		return &DecodingError{Entity: "Card", Field: "id"}
	}
	return nil
}

// PointsBalance is a card's remaining loyalty allowance. Points counts are
// arbitrary precision and the MXN equivalent is an exact decimal, matching
// the gateway's own guarantees.
type PointsBalance struct {
	RemainingPoints *big.Int        `json:"remaining_points"`
	RemainingMxn    decimal.Decimal `json:"remaining_mxn"`
	PointsType      PointsType      `json:"points_type"`
}

func (p *PointsBalance) checkDecoded() error {
	if p.RemainingPoints == nil {
		return &DecodingError{Entity: "PointsBalance", Field: "remaining_points"}
	}
	if p.PointsType == "" {
		return &DecodingError{Entity: "PointsBalance", Field: "points_type"}
	}
	return nil
}
