package centavo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-playground/validator"
)

var validate = newCardValidator()

func newCardValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return luhnValid(fl.Field().String())
	})
	return v
}

// luhnValid runs the standard check-digit pass over a numeric PAN.
func luhnValid(pan string) bool {
	sum, dbl := 0, false
	for i := len(pan) - 1; i >= 0; i-- {
		c := pan[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return len(pan) > 0 && sum%10 == 0
}

// CardService tokenizes cards and reads card-scoped resources. Raw card
// data passes through to the gateway exactly once, on Create; it is never
// stored or logged by this SDK.
type CardService struct {
	backend *backend
}

// Create tokenizes a card. Number, cvv2 and expiry are format-checked
// locally so obviously malformed input fails without a network round
// trip. The returned Card carries the gateway-assigned token id and a
// masked number; cvv2 is never echoed back.
func (s *CardService) Create(ctx context.Context, card *Card) (*Card, error) {
	if card == nil {
		return nil, &ValidationError{Message: "card is required"}
	}
	if err := validate.Struct(card); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, &ValidationError{
				Field:   fe.Field(),
				Message: "failed on " + fe.Tag() + " check",
			}
		}
		return nil, &ValidationError{Message: err.Error()}
	}

	created, err := do[Card](ctx, s.backend, http.MethodPost, "cards", nil, card)
	if err != nil {
		return nil, err
	}
	if err := created.checkDecoded(); err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a tokenized card by id.
func (s *CardService) Get(ctx context.Context, cardID string) (*Card, error) {
	if cardID == "" {
		return nil, &ValidationError{Field: "card_id", Message: "card id is required"}
	}

	card, err := do[Card](ctx, s.backend, http.MethodGet, "cards/"+url.PathEscape(cardID), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := card.checkDecoded(); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes a tokenized card from the gateway.
func (s *CardService) Delete(ctx context.Context, cardID string) error {
	if cardID == "" {
		return &ValidationError{Field: "card_id", Message: "card id is required"}
	}

	_, err := do[struct{}](ctx, s.backend, http.MethodDelete, "cards/"+url.PathEscape(cardID), nil, nil)
	return err
}

// Points returns the loyalty balance of a customer's card.
func (s *CardService) Points(ctx context.Context, customerID, cardID string) (*PointsBalance, error) {
	if customerID == "" {
		return nil, &ValidationError{Field: "customer_id", Message: "customer id is required"}
	}
	if cardID == "" {
		return nil, &ValidationError{Field: "card_id", Message: "card id is required"}
	}

	balance, err := do[PointsBalance](ctx, s.backend, http.MethodGet, "customers/"+url.PathEscape(customerID)+"/cards/"+url.PathEscape(cardID)+"/points", nil, nil)
	if err != nil {
		return nil, err
	}
	if err := balance.checkDecoded(); err != nil {
		return nil, err
	}
	return balance, nil
}
