package cart

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the single cookie carrying the whole cart snapshot.
const CookieName = "cart"

// cookieMaxAge keeps the cart for 30 days, matching how long a browser
// session realistically survives between visits.
const cookieMaxAge = 30 * 24 * 60 * 60

// Encode serializes a cart for cookie transport. JSON is base64-wrapped
// because cookie values cannot contain commas or quotes.
func Encode(c Cart) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("cart: encode: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode is the inverse of Encode.
func Decode(value string) (Cart, error) {
	data, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return Cart{}, fmt.Errorf("cart: decode: %w", err)
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, fmt.Errorf("cart: decode: %w", err)
	}
	return c, nil
}

// FromRequest reads the cart cookie. A missing or corrupt cookie yields an
// empty cart, the same first-visit behaviour the storefront always had.
func FromRequest(c *gin.Context) Cart {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return Cart{Items: []LineItem{}}
	}
	parsed, err := Decode(value)
	if err != nil {
		return Cart{Items: []LineItem{}}
	}
	if parsed.Items == nil {
		parsed.Items = []LineItem{}
	}
	return parsed
}

// Write persists the cart back to the response cookie. Every reducer
// transition is followed by exactly one Write.
func Write(c *gin.Context, crt Cart) error {
	value, err := Encode(crt)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, cookieMaxAge, "/", "", false, false)
	return nil
}
