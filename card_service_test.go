package centavo_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"testing"

	centavo "github.com/centavopay/centavo-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() *centavo.Card {
	return &centavo.Card{
		CardNumber:      "5555555555554444",
		HolderName:      "Juanito Pérez Nuñez",
		CVV2:            "132",
		ExpirationMonth: "12",
		ExpirationYear:  "29",
	}
}

func TestCardCreate(t *testing.T) {
	t.Run("tokenizes card and never echoes cvv2", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/"+testMerchantID+"/cards", r.URL.Path)

			var req map[string]any
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "5555555555554444", req["card_number"])
			assert.Equal(t, "132", req["cvv2"])

			// The gateway returns the token with a masked number and no cvv2.
			fmt.Fprint(w, `{
				"id": "ktokenizedcardid0001",
				"card_number": "555555XXXXXX4444",
				"holder_name": "Juanito Pérez Nuñez",
				"expiration_month": "12",
				"expiration_year": "29",
				"brand": "mastercard",
				"creation_date": "2016-09-12T10:00:00-05:00"
			}`)
		})

		card, err := client.Cards.Create(context.Background(), validCard())

		require.NoError(t, err)
		assert.Equal(t, "ktokenizedcardid0001", card.ID)
		assert.Equal(t, "555555XXXXXX4444", card.CardNumber)
		assert.Equal(t, "mastercard", card.Brand)
		assert.Empty(t, card.CVV2)
	})

	t.Run("rejects malformed cards without network call", func(t *testing.T) {
		gw, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("gateway must not be called")
		})

		cases := []struct {
			name   string
			mutate func(*centavo.Card)
		}{
			{"luhn check failure", func(c *centavo.Card) { c.CardNumber = "5555555555554445" }},
			{"non-numeric number", func(c *centavo.Card) { c.CardNumber = "5555x55555554444" }},
			{"number too short", func(c *centavo.Card) { c.CardNumber = "55554444" }},
			{"missing holder name", func(c *centavo.Card) { c.HolderName = "" }},
			{"cvv2 too long", func(c *centavo.Card) { c.CVV2 = "12345" }},
			{"cvv2 not numeric", func(c *centavo.Card) { c.CVV2 = "12a" }},
			{"month not two digits", func(c *centavo.Card) { c.ExpirationMonth = "1" }},
			{"year not numeric", func(c *centavo.Card) { c.ExpirationYear = "2x" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				card := validCard()
				tc.mutate(card)

				_, err := client.Cards.Create(context.Background(), card)

				_, ok := centavo.IsValidationError(err)
				assert.True(t, ok, "expected validation error, got %v", err)
			})
		}
		assert.Equal(t, 0, gw.Hits())
	})

	t.Run("cvv2 echoed by the gateway is dropped on decode", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			// A misbehaving gateway (or proxy) that reflects the secret back.
			fmt.Fprint(w, `{
				"id": "ktokenizedcardid0001",
				"card_number": "555555XXXXXX4444",
				"cvv2": "132"
			}`)
		})

		card, err := client.Cards.Create(context.Background(), validCard())

		require.NoError(t, err)
		assert.Empty(t, card.CVV2)
	})

	t.Run("serializing a decoded card keeps cvv2 out", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": "ktok", "card_number": "555555XXXXXX4444", "holder_name": "J"}`)
		})

		card, err := client.Cards.Create(context.Background(), validCard())
		require.NoError(t, err)

		reencoded, err := json.Marshal(card)
		require.NoError(t, err)
		assert.NotContains(t, string(reencoded), "cvv2")
	})
}

func TestCardGetDelete(t *testing.T) {
	t.Run("get returns the tokenized card", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/"+testMerchantID+"/cards/ktok", r.URL.Path)
			fmt.Fprint(w, `{"id": "ktok", "card_number": "555555XXXXXX4444", "brand": "mastercard"}`)
		})

		card, err := client.Cards.Get(context.Background(), "ktok")

		require.NoError(t, err)
		assert.Equal(t, "ktok", card.ID)
	})

	t.Run("delete issues DELETE on the card path", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/v1/"+testMerchantID+"/cards/ktok", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.Cards.Delete(context.Background(), "ktok")

		require.NoError(t, err)
	})
}

func TestCardPoints(t *testing.T) {
	t.Run("returns the loyalty balance", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/"+testMerchantID+"/customers/asda4znfoxhvpgcsui3q/cards/keqctdqbro2b7jtcnz7d/points", r.URL.Path)

			fmt.Fprint(w, `{
				"remaining_points": 450,
				"remaining_mxn": 33.75,
				"points_type": "BANCOMER"
			}`)
		})

		balance, err := client.Cards.Points(context.Background(), "asda4znfoxhvpgcsui3q", "keqctdqbro2b7jtcnz7d")

		require.NoError(t, err)
		assert.Zero(t, balance.RemainingPoints.Cmp(big.NewInt(450)))
		assert.True(t, balance.RemainingMxn.Equal(decimal.RequireFromString("33.75")))
		assert.Equal(t, centavo.PointsBancomer, balance.PointsType)
	})

	t.Run("missing points_type is a decoding error", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"remaining_points": 450, "remaining_mxn": 33.75}`)
		})

		_, err := client.Cards.Points(context.Background(), "cust", "card")

		derr, ok := centavo.IsDecodingError(err)
		require.True(t, ok)
		assert.Equal(t, "points_type", derr.Field)
	})

	t.Run("path-escapes both ids", func(t *testing.T) {
		_, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/"+testMerchantID+"/customers/cu%2Fst/cards/ka%2Frd/points", r.URL.EscapedPath())
			fmt.Fprint(w, `{"remaining_points": 0, "remaining_mxn": 0, "points_type": "SANTANDER"}`)
		})

		_, err := client.Cards.Points(context.Background(), "cu/st", "ka/rd")

		require.NoError(t, err)
	})

	t.Run("rejects empty ids without network call", func(t *testing.T) {
		gw, client := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("gateway must not be called")
		})

		_, err := client.Cards.Points(context.Background(), "", "card")
		_, ok := centavo.IsValidationError(err)
		assert.True(t, ok)

		_, err = client.Cards.Points(context.Background(), "cust", "")
		_, ok = centavo.IsValidationError(err)
		assert.True(t, ok)

		assert.Equal(t, 0, gw.Hits())
	})
}
