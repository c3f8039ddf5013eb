package centavo_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	centavo "github.com/centavopay/centavo-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey     = "sk_test_e6a7f8b9c0d1"
	testMerchantID = "mqpxdvhzfvlqkjj2mwjl"
)

// fakeGateway fronts an httptest server and counts the round trips it saw,
// so tests can assert that local validation failures never hit the wire.
type fakeGateway struct {
	server *httptest.Server

	mu   sync.Mutex
	hits int
}

func newFakeGateway(t *testing.T, handler http.HandlerFunc) (*fakeGateway, *centavo.Client) {
	t.Helper()

	gw := &fakeGateway{}
	gw.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gw.mu.Lock()
		gw.hits++
		gw.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(gw.server.Close)

	client, err := centavo.NewClient(testAPIKey, testMerchantID, centavo.WithBaseURL(gw.server.URL))
	require.NoError(t, err)

	return gw, client
}

func (g *fakeGateway) Hits() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hits
}

func TestNewClient(t *testing.T) {
	t.Run("creates client successfully", func(t *testing.T) {
		client, err := centavo.NewClient(testAPIKey, testMerchantID)

		require.NoError(t, err)
		assert.NotNil(t, client.Charges)
		assert.NotNil(t, client.Cards)
		assert.NotNil(t, client.Customers)
	})

	t.Run("rejects empty api key", func(t *testing.T) {
		_, err := centavo.NewClient("", testMerchantID)

		verr, ok := centavo.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "api_key", verr.Field)
	})

	t.Run("rejects empty merchant id", func(t *testing.T) {
		_, err := centavo.NewClient(testAPIKey, "")

		verr, ok := centavo.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "merchant_id", verr.Field)
	})
}
