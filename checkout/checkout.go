// Package checkout enforces the shipping -> payment -> place-order step
// ordering. Each step's guard names the path to fall back to when an earlier
// step's data is missing; entered data itself lives in the cart cookie, so
// moving backward never discards it.
package checkout

import "github.com/furqanahmad03/bookstore-api/cart"

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepPlaceOrder
)

// Paths of the checkout steps as exposed under /user/checkout.
const (
	ShippingPath   = "/user/checkout/shipping"
	PaymentPath    = "/user/checkout/payment"
	PlaceOrderPath = "/user/checkout/placeorder"
)

// PaymentMethods are the methods a customer can choose from.
var PaymentMethods = []string{"PayPal", "Stripe", "CashOnDelivery"}

// ValidPaymentMethod reports whether method is one of PaymentMethods.
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Guard returns the path of the earliest step whose prerequisite is unmet, or
// ok=true when the requested step may be entered. The payment step needs a
// street address on file; the place-order step needs a payment method.
func Guard(step Step, c cart.Cart) (redirect string, ok bool) {
	if step >= StepPayment && c.ShippingAddress.Address == "" {
		return ShippingPath, false
	}
	if step >= StepPlaceOrder && c.PaymentMethod == "" {
		return PaymentPath, false
	}
	return "", true
}
