package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/cart"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type mockOrders struct {
	m       sync.Mutex
	lastReq domain.CreateOrderRequest
	order   *domain.Order
	err     error
}

func (m *mockOrders) CreateOrder(_ context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func seededCart(t *testing.T) cart.Store {
	t.Helper()
	store := cart.NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddItem(ctx, "s1", domain.Product{ID: 1, Name: "Road bike", Price: 15_000_000}, 1)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", domain.Product{ID: 2, Name: "Helmet", Price: 2_000_000}, 3)
	require.NoError(t, err)
	return store
}

func TestWizard_StartsOnInfoWithDefaults(t *testing.T) {
	w := NewWizard()
	state := w.State()
	assert.Equal(t, StepInfo, state.Step)
	assert.Equal(t, DefaultPaymentMethod, state.PaymentMethod)
	assert.Zero(t, state.OrderID)
}

func TestSubmitInfo_InvalidBlocksTransition(t *testing.T) {
	w := NewWizard()

	info := validInfo()
	info.Phone = "123"

	errs := w.SubmitInfo(info)
	assert.Contains(t, errs, "phone")
	assert.Equal(t, StepInfo, w.State().Step)
}

func TestSubmitInfo_ValidMovesToPayment(t *testing.T) {
	w := NewWizard()

	errs := w.SubmitInfo(validInfo())
	assert.Empty(t, errs)

	state := w.State()
	assert.Equal(t, StepPayment, state.Step)
	assert.Equal(t, "Nguyen Van A", state.Info.FullName)
}

func TestBack_OnlyFromPayment(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.Back(), ErrIllegalTransition)

	require.Empty(t, w.SubmitInfo(validInfo()))
	require.NoError(t, w.Back())
	assert.Equal(t, StepInfo, w.State().Step)

	// entered data survives the back action
	assert.Equal(t, "0912345678", w.State().Info.Phone)
}

func TestSetPaymentMethod(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.SetPaymentMethod(PaymentQR))
	assert.Equal(t, PaymentQR, w.State().PaymentMethod)

	assert.ErrorIs(t, w.SetPaymentMethod("card"), ErrBadPaymentMethod)
}

func TestConfirm_RequiresPaymentStep(t *testing.T) {
	w := NewWizard()
	_, err := w.Confirm(context.Background(), "s1", seededCart(t), &mockOrders{})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestConfirm_EmptyCart(t *testing.T) {
	w := NewWizard()
	require.Empty(t, w.SubmitInfo(validInfo()))

	_, err := w.Confirm(context.Background(), "s1", cart.NewMemoryStore(), &mockOrders{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StepPayment, w.State().Step)
}

func TestConfirm_Success(t *testing.T) {
	store := seededCart(t)
	orders := &mockOrders{order: &domain.Order{ID: 777, Status: domain.OrderStatusPending}}

	w := NewWizard()
	require.Empty(t, w.SubmitInfo(validInfo()))

	orderID, err := w.Confirm(context.Background(), "s1", store, orders)
	require.NoError(t, err)
	assert.Equal(t, int64(777), orderID)

	state := w.State()
	assert.Equal(t, StepComplete, state.Step)
	assert.Equal(t, int64(777), state.OrderID)

	// cart is cleared after a successful submission
	c, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// the request carried reduced lines and a resolved shipping snapshot
	req := orders.lastReq
	assert.Equal(t, "Nguyen Van A", req.CustomerName)
	require.Len(t, req.Items, 2)
	assert.Equal(t, domain.OrderItemRequest{ProductID: 1, Quantity: 1}, req.Items[0])
	assert.Equal(t, domain.OrderItemRequest{ProductID: 2, Quantity: 3}, req.Items[1])
	assert.Equal(t, "Hà Nội", req.ShippingInfo.Province)
	assert.Equal(t, "Ba Đình", req.ShippingInfo.District)
	assert.Equal(t, "0912345678", req.ShippingInfo.Phone)
}

func TestConfirm_BackendFailureLeavesStateIntact(t *testing.T) {
	store := seededCart(t)
	orders := &mockOrders{err: errors.New("backend rejected the order")}

	w := NewWizard()
	require.Empty(t, w.SubmitInfo(validInfo()))

	_, err := w.Confirm(context.Background(), "s1", store, orders)
	require.Error(t, err)

	// still on Payment, no order id
	state := w.State()
	assert.Equal(t, StepPayment, state.Step)
	assert.Zero(t, state.OrderID)

	// the cart keeps its prior items
	c, err2 := store.Get(context.Background(), "s1")
	require.NoError(t, err2)
	assert.Len(t, c.Items, 2)
}

func TestStartOver_ResetsEverything(t *testing.T) {
	store := seededCart(t)
	orders := &mockOrders{order: &domain.Order{ID: 5}}

	w := NewWizard()
	require.Empty(t, w.SubmitInfo(validInfo()))
	require.NoError(t, w.SetPaymentMethod(PaymentQR))

	_, err := w.Confirm(context.Background(), "s1", store, orders)
	require.NoError(t, err)

	w.StartOver()

	state := w.State()
	assert.Equal(t, StepInfo, state.Step)
	assert.Equal(t, domain.CustomerInfo{}, state.Info)
	assert.Equal(t, DefaultPaymentMethod, state.PaymentMethod)
	assert.Zero(t, state.OrderID)
}

func TestManager_OneWizardPerSession(t *testing.T) {
	m := NewManager()
	a := m.Get("s1")
	b := m.Get("s2")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Get("s1"))
}
