package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furqanahmad03/bookstore-api/cart"
	"github.com/furqanahmad03/bookstore-api/checkout"
)

// The step handlers only touch the cart cookie, so they can be exercised
// without a database.
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/checkout/shipping", GetShipping(nil))
	r.POST("/user/checkout/shipping", SaveShipping(nil))
	r.GET("/user/checkout/payment", GetPayment(nil))
	r.POST("/user/checkout/payment", SavePayment(nil))
	r.GET("/user/checkout/placeorder", GetPlaceOrder(nil))
	return r
}

func cartCookie(t *testing.T, crt cart.Cart) *http.Cookie {
	t.Helper()
	value, err := cart.Encode(crt)
	require.NoError(t, err)
	return &http.Cookie{Name: cart.CookieName, Value: value}
}

func TestGetPaymentWithoutAddressRedirectsToShipping(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/checkout/payment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, checkout.ShippingPath, w.Header().Get("Location"))
}

func TestGetPaymentWithAddressListsMethods(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/checkout/payment", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		ShippingAddress: cart.Address{Address: "1 Book St"},
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		PaymentMethods []string `json:"payment_methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, checkout.PaymentMethods, body.PaymentMethods)
}

func TestGetPlaceOrderWithoutPaymentRedirectsToPayment(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/checkout/placeorder", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		Items:           []cart.LineItem{{Slug: "a", Price: 49, Quantity: 1}},
		ShippingAddress: cart.Address{Address: "1 Book St"},
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, checkout.PaymentPath, w.Header().Get("Location"))
}

func TestGetPlaceOrderEmptyCartShowsNotice(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/checkout/placeorder", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		Items:           []cart.LineItem{},
		ShippingAddress: cart.Address{Address: "1 Book St"},
		PaymentMethod:   "PayPal",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "message")
	assert.NotContains(t, body, "totals")
}

func TestGetPlaceOrderSummaryHasTotals(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/checkout/placeorder", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		Items: []cart.LineItem{
			{Slug: "to-kill-a-mockingbird", Price: 49, Quantity: 2},
			{Slug: "the-alchemist", Price: 30, Quantity: 1},
		},
		ShippingAddress: cart.Address{Address: "1 Book St"},
		PaymentMethod:   "PayPal",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Totals struct {
			ItemsPrice    float64 `json:"items_price"`
			TaxPrice      float64 `json:"tax_price"`
			ShippingPrice float64 `json:"shipping_price"`
			TotalPrice    float64 `json:"total_price"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 128.00, body.Totals.ItemsPrice)
	assert.Equal(t, 15.0, body.Totals.ShippingPrice)
	assert.Equal(t, 19.20, body.Totals.TaxPrice)
	assert.Equal(t, 162.20, body.Totals.TotalPrice)
}

func TestSaveShippingPointsAtPayment(t *testing.T) {
	r := newRouter()

	payload, _ := json.Marshal(ShippingInput{
		FullName:   "Jane Reader",
		Address:    "1 Book St",
		City:       "Karachi",
		PostalCode: "74000",
		Country:    "PK",
	})
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/shipping", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Next string `json:"next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, checkout.PaymentPath, body.Next)

	// The address landed in the rewritten cookie.
	var updated cart.Cart
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cart.CookieName {
			raw, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			updated, err = cart.Decode(raw)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, "1 Book St", updated.ShippingAddress.Address)
}

func TestSaveShippingMissingFieldRejected(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/user/checkout/shipping", bytes.NewReader([]byte(`{"fullName":"Jane Reader"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// A rejected form never rewrites the cart cookie.
	assert.Empty(t, w.Result().Cookies())
}

func TestSavePaymentRejectsUnknownMethod(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/user/checkout/payment", bytes.NewReader([]byte(`{"paymentMethod":"Bitcoin"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cartCookie(t, cart.Cart{
		ShippingAddress: cart.Address{Address: "1 Book St"},
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavePaymentStoresMethod(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/user/checkout/payment", bytes.NewReader([]byte(`{"paymentMethod":"CashOnDelivery"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cartCookie(t, cart.Cart{
		ShippingAddress: cart.Address{Address: "1 Book St"},
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Next string `json:"next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, checkout.PlaceOrderPath, body.Next)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == cart.CookieName {
			raw, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			updated, err := cart.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, "CashOnDelivery", updated.PaymentMethod)
		}
	}
}

func TestBackToShippingKeepsEnteredData(t *testing.T) {
	r := newRouter()

	// Navigating back to the shipping step returns what was entered before.
	req := httptest.NewRequest(http.MethodGet, "/user/checkout/shipping", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		ShippingAddress: cart.Address{FullName: "Jane Reader", Address: "1 Book St", City: "Karachi", PostalCode: "74000", Country: "PK"},
		PaymentMethod:   "Stripe",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ShippingAddress cart.Address `json:"shipping_address"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Jane Reader", body.ShippingAddress.FullName)
	assert.Equal(t, "1 Book St", body.ShippingAddress.Address)
}
