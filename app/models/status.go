package models

import "fmt"

// OrderStatus is the lifecycle state of an order. Values are the exact
// strings the storefront and console display, which keeps the API payloads
// and the DB column human-readable.
type OrderStatus string

const (
	StatusAwaitingPayment   OrderStatus = "Awaiting for Payment"
	StatusPaymentSuccessful OrderStatus = "Payment Successful"
	StatusShipped           OrderStatus = "Shipped"
	StatusOutForDelivery    OrderStatus = "Out for Delivery"
	StatusDelivered         OrderStatus = "Delivered"
	StatusCancelled         OrderStatus = "Cancelled"
)

// OrderStatuses lists every order status in lifecycle order. The console
// uses this for its status dropdown.
var OrderStatuses = []OrderStatus{
	StatusAwaitingPayment,
	StatusPaymentSuccessful,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// ParseOrderStatus validates a raw status string from a request.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	for _, s := range OrderStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from s to target.
// Terminal states are absorbing. Admins may otherwise move an order to any
// status, including backwards (to correct mistakes) and straight to
// Cancelled from any non-terminal state.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	return target != s
}

// CustomFormStatus is the review state of a custom idol request. A new
// request starts unset; once an admin accepts it the request follows the
// shipping stages. Payment is settled offline for custom work, so
// Awaiting for Payment is not part of this lifecycle.
type CustomFormStatus string

const (
	CustomFormUnset    CustomFormStatus = ""
	CustomFormAccepted CustomFormStatus = "Accepted"
	CustomFormRejected CustomFormStatus = "Rejected"
)

// customFormShipping are the statuses available after acceptance.
var customFormShipping = []CustomFormStatus{
	CustomFormStatus(StatusPaymentSuccessful),
	CustomFormStatus(StatusShipped),
	CustomFormStatus(StatusOutForDelivery),
	CustomFormStatus(StatusDelivered),
	CustomFormStatus(StatusCancelled),
}

// CustomFormStatuses lists every assignable custom-form status.
var CustomFormStatuses = append(
	[]CustomFormStatus{CustomFormAccepted, CustomFormRejected},
	customFormShipping...,
)

// ParseCustomFormStatus validates a raw status string from a request.
// The empty string is not assignable; requests only start unset.
func ParseCustomFormStatus(raw string) (CustomFormStatus, error) {
	for _, s := range CustomFormStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown custom form status %q", raw)
}

// Terminal reports whether the status admits no further transitions.
func (s CustomFormStatus) Terminal() bool {
	return s == CustomFormRejected ||
		s == CustomFormStatus(StatusDelivered) ||
		s == CustomFormStatus(StatusCancelled)
}

// CanTransition reports whether a custom form may move from s to target.
// An unset form can only be accepted or rejected. An accepted form moves
// through the shipping stages.
func (s CustomFormStatus) CanTransition(target CustomFormStatus) bool {
	if s.Terminal() || target == s {
		return false
	}

	if s == CustomFormUnset {
		return target == CustomFormAccepted || target == CustomFormRejected
	}

	// Accepted or already in a shipping stage.
	for _, allowed := range customFormShipping {
		if target == allowed {
			return true
		}
	}
	return false
}
