package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "casarural/internal/errors"
)

// Payment is the closed set of settlement variants: CardPayment and
// CashPayment. The unexported method keeps the set closed.
type Payment interface {
	// Info exposes the fields every variant shares.
	Info() *PaymentInfo
	// Process returns the user-facing confirmation text for the variant. It
	// is a pure formatting hook and never mutates payment or reservation
	// state.
	Process() string

	isPayment()
}

// PaymentInfo holds the fields shared by every payment variant. PaidAt is
// set at construction and only changes when a caller resets it explicitly,
// which the snapshot store does when rehydrating.
type PaymentInfo struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	PaidAt time.Time
	Method string
}

func newPaymentInfo(amount decimal.Decimal, method string) PaymentInfo {
	return PaymentInfo{
		ID:     uuid.New(),
		Amount: amount,
		PaidAt: time.Now(),
		Method: method,
	}
}

func (p *PaymentInfo) SetAmount(amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return apperrors.NewInvalidAmountError("payment amount cannot be negative: " + amount.String())
	}
	p.Amount = amount
	return nil
}

// CardPayment settles a reservation with a card. The full number is stored
// as given; Last4 is derived once at construction.
type CardPayment struct {
	PaymentInfo
	Holder     string
	CardNumber string
	Last4      string
	CVV        string
	Expiry     string
}

func NewCardPayment(amount decimal.Decimal, method, holder, cardNumber, cvv, expiry string) *CardPayment {
	return &CardPayment{
		PaymentInfo: newPaymentInfo(amount, method),
		Holder:      holder,
		CardNumber:  cardNumber,
		Last4:       LastFourDigits(cardNumber),
		CVV:         cvv,
		Expiry:      expiry,
	}
}

// LastFourDigits returns the trailing four characters of a card number, or
// the sentinel "XXXX" when the number is shorter than four characters.
func LastFourDigits(number string) string {
	if len(number) < 4 {
		return "XXXX"
	}
	return number[len(number)-4:]
}

func (p *CardPayment) Info() *PaymentInfo { return &p.PaymentInfo }

func (p *CardPayment) Process() string {
	return fmt.Sprintf("Payment processed with card ending in %s", p.Last4)
}

func (p *CardPayment) isPayment() {}

// CashPayment settles a reservation in cash. Change is derived from the
// tendered amount and recomputed whenever the tendered amount is updated.
type CashPayment struct {
	PaymentInfo
	Tendered decimal.Decimal
	Change   decimal.Decimal
}

func NewCashPayment(amount decimal.Decimal, method string, tendered decimal.Decimal) *CashPayment {
	p := &CashPayment{
		PaymentInfo: newPaymentInfo(amount, method),
		Tendered:    tendered,
	}
	p.Change = p.Tendered.Sub(p.Amount)
	return p
}

func (p *CashPayment) SetTendered(tendered decimal.Decimal) {
	p.Tendered = tendered
	p.Change = p.Tendered.Sub(p.Amount)
}

func (p *CashPayment) Info() *PaymentInfo { return &p.PaymentInfo }

func (p *CashPayment) Process() string {
	return fmt.Sprintf(
		"Payment processed in cash\nAmount received: %s\nAmount due: %s\nChange: %s",
		p.Tendered.StringFixed(2), p.Amount.StringFixed(2), p.Change.StringFixed(2),
	)
}

func (p *CashPayment) isPayment() {}
