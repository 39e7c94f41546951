package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furqanahmad03/bookstore-api/cart"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stock-checked add needs a database; the rest only touch the cookie.
	r.GET("/cart", GetCart(nil))
	r.DELETE("/cart/:slug", DeleteCartItem(nil))
	r.DELETE("/cart", ClearCart(nil))
	return r
}

func cartCookie(t *testing.T, crt cart.Cart) *http.Cookie {
	t.Helper()
	value, err := cart.Encode(crt)
	require.NoError(t, err)
	return &http.Cookie{Name: cart.CookieName, Value: value}
}

func updatedCookieCart(t *testing.T, w *httptest.ResponseRecorder) cart.Cart {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cart.CookieName {
			raw, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			crt, err := cart.Decode(raw)
			require.NoError(t, err)
			return crt
		}
	}
	t.Fatal("cart cookie not rewritten")
	return cart.Cart{}
}

func TestGetCartFirstVisitIsEmpty(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalQuantity int     `json:"total_quantity"`
		Subtotal      float64 `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Zero(t, body.TotalQuantity)
	assert.Zero(t, body.Subtotal)
}

func TestGetCartSumsQuantityAndSubtotal(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cartCookie(t, cart.Cart{Items: []cart.LineItem{
		{Slug: "a", Price: 49, Quantity: 2},
		{Slug: "b", Price: 30, Quantity: 1},
	}}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalQuantity int     `json:"total_quantity"`
		Subtotal      float64 `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalQuantity)
	assert.Equal(t, 128.0, body.Subtotal)
}

func TestDeleteCartItemRemovesLine(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodDelete, "/cart/the-alchemist", nil)
	req.AddCookie(cartCookie(t, cart.Cart{Items: []cart.LineItem{
		{Slug: "the-alchemist", Quantity: 1},
		{Slug: "atomic-habits", Quantity: 2},
	}}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	updated := updatedCookieCart(t, w)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "atomic-habits", updated.Items[0].Slug)
}

func TestClearCartKeepsCheckoutSelections(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.AddCookie(cartCookie(t, cart.Cart{
		Items:           []cart.LineItem{{Slug: "a", Quantity: 2}},
		ShippingAddress: cart.Address{FullName: "Jane Reader", Address: "1 Book St"},
		PaymentMethod:   "PayPal",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	updated := updatedCookieCart(t, w)
	assert.Empty(t, updated.Items)
	assert.Equal(t, "1 Book St", updated.ShippingAddress.Address)
	assert.Equal(t, "PayPal", updated.PaymentMethod)
}
