package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay. Collecting the money is
// outside this service; it only records confirmation.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	CashOnDelivery
	Card
	Wallet
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "cash_on_delivery",
		Card:           "card",
		Wallet:         "wallet",
	}
}

// ParsePaymentMethod defaults an empty value to cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return CashOnDelivery, nil
	}
	for m, name := range getPaymentMethodStrings() {
		if name == s {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Payment records the payment state of an order.
type Payment struct {
	method PaymentMethod
	isPaid bool
	paidAt *time.Time
}

// NewPayment creates an unpaid payment for method.
func NewPayment(method PaymentMethod) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	return Payment{method: method}, nil
}

// RestorePayment rebuilds a persisted payment; isPaid and paidAt must agree.
func RestorePayment(method PaymentMethod, isPaid bool, paidAt *time.Time) (Payment, error) {
	var consistencyErr error
	if isPaid != (paidAt != nil) {
		consistencyErr = errs.NewValueIsInvalidErrorWithCause("payment", errors.New("isPaid and paidAt disagree"))
	}
	if err := errors.Join(method.Validate(), consistencyErr); err != nil {
		return Payment{}, err
	}
	return Payment{method: method, isPaid: isPaid, paidAt: paidAt}, nil
}

func (p Payment) Method() PaymentMethod {
	return p.method
}

// IsPaid reports whether the payment was confirmed.
func (p Payment) IsPaid() bool {
	return p.isPaid
}

// PaidAt is nil while unpaid.
func (p Payment) PaidAt() *time.Time {
	return p.paidAt
}
