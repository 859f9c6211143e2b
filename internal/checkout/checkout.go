// Package checkout implements the two-step order wizard: a customer-info
// form, a payment confirmation, and a terminal confirmation screen. The
// wizard is session-scoped server state; every transition is an explicit
// user action.
package checkout

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/cart"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type Step string

const (
	StepInfo     Step = "INFO"
	StepPayment  Step = "PAYMENT"
	StepComplete Step = "COMPLETE"
)

type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "cod"
	PaymentQR  PaymentMethod = "qr"

	DefaultPaymentMethod = PaymentCOD
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal checkout step transition")
	ErrBadPaymentMethod  = errors.New("unknown payment method")
	ErrRegionNotResolved = errors.New("province/district could not be resolved")
)

// OrderCreator is the slice of the backend client the wizard needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
}

// Wizard is one session's checkout state. Payment is only reachable after
// the info form validates; Complete only after the backend accepted the
// order. A failed submission leaves both the step and the cart untouched.
type Wizard struct {
	mu      sync.Mutex
	step    Step
	info    domain.CustomerInfo
	payment PaymentMethod
	orderID int64 // 0 until an order was accepted
}

func NewWizard() *Wizard {
	return &Wizard{step: StepInfo, payment: DefaultPaymentMethod}
}

// State is a read snapshot for rendering.
type State struct {
	Step          Step                `json:"step"`
	Info          domain.CustomerInfo `json:"info"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	OrderID       int64               `json:"order_id,omitempty"`
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Step: w.step, Info: w.info, PaymentMethod: w.payment, OrderID: w.orderID}
}

// SubmitInfo validates the info form. On success the info is stored and the
// wizard moves to Payment; on failure the per-field errors are returned and
// no transition happens.
func (w *Wizard) SubmitInfo(info domain.CustomerInfo) FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()

	if errs := ValidateCustomerInfo(info); len(errs) > 0 {
		return errs
	}

	w.info = info
	w.step = StepPayment
	return nil
}

// Back returns from Payment to Info, keeping the entered data.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return ErrIllegalTransition
	}
	w.step = StepInfo
	return nil
}

// SetPaymentMethod picks cod or qr while on the Payment step.
func (w *Wizard) SetPaymentMethod(m PaymentMethod) error {
	if m != PaymentCOD && m != PaymentQR {
		return ErrBadPaymentMethod
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payment = m
	return nil
}

// Confirm submits the order: the cart lines are reduced to (product id,
// quantity) pairs and the customer info becomes the shipping snapshot with
// resolved region display names. On backend success the order id is stored,
// the cart is cleared and the wizard reaches Complete. On any failure the
// wizard stays on Payment and the cart keeps its items.
func (w *Wizard) Confirm(ctx context.Context, sessionID string, carts cart.Store, orders OrderCreator) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return 0, ErrIllegalTransition
	}

	current, err := carts.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if len(current.Items) == 0 {
		return 0, ErrEmptyCart
	}

	provinceName, districtName, ok := ResolveRegion(w.info.Province, w.info.District)
	if !ok {
		return 0, ErrRegionNotResolved
	}

	req := domain.CreateOrderRequest{
		CustomerName: w.info.FullName,
		ShippingInfo: domain.ShippingInfo{
			ReceiverName: w.info.FullName,
			Phone:        w.info.Phone,
			Province:     provinceName,
			District:     districtName,
			Address:      w.info.Address,
			Note:         w.info.Note,
		},
	}
	for _, item := range current.Items {
		req.Items = append(req.Items, domain.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := orders.CreateOrder(ctx, req)
	if err != nil {
		return 0, err
	}

	if err := carts.Clear(ctx, sessionID); err != nil {
		// The order was accepted; a stale cart is a cosmetic problem only.
		log.Printf("clear cart after order %d failed: %v", order.ID, err)
	}

	w.orderID = order.ID
	w.step = StepComplete
	return order.ID, nil
}

// StartOver resets the wizard from the confirmation screen: empty info,
// default payment method, no order id, back to Info.
func (w *Wizard) StartOver() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.info = domain.CustomerInfo{}
	w.payment = DefaultPaymentMethod
	w.orderID = 0
	w.step = StepInfo
}

// Manager hands out one wizard per session.
type Manager struct {
	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewManager() *Manager {
	return &Manager{wizards: make(map[string]*Wizard)}
}

func (m *Manager) Get(sessionID string) *Wizard {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wizards[sessionID]; ok {
		return w
	}
	w := NewWizard()
	m.wizards[sessionID] = w
	return w
}
