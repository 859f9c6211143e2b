package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/cart"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/checkout"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type mockOrderCreator struct {
	created []domain.CreateOrderRequest
}

func (m *mockOrderCreator) CreateOrder(_ context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.created = append(m.created, req)
	return &domain.Order{ID: 777, Status: domain.OrderStatusPending}, nil
}

func validInfoBody() []byte {
	body, _ := json.Marshal(domain.CustomerInfo{
		Phone:    "0912345678",
		Email:    "an@example.com",
		FullName: "Nguyen Van An",
		Province: "hanoi",
		District: "badinh",
		Address:  "12 Phố Huế",
	})
	return body
}

func newCheckoutFixture(t *testing.T) (*CheckoutHandler, cart.Store, *mockOrderCreator) {
	t.Helper()
	carts := cart.NewMemoryStore()
	orders := &mockOrderCreator{}
	handler := NewCheckoutHandler(checkout.NewManager(), carts, orders, 5*time.Second)
	return handler, carts, orders
}

func TestCheckoutSubmitInfo_ValidationErrors(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	body, _ := json.Marshal(domain.CustomerInfo{Phone: "123"})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/info", bytes.NewReader(body)), "s1")

	handler.SubmitInfo(recorder, request)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "full_name")
}

func TestCheckoutSubmitInfo_MovesToPayment(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/info", bytes.NewReader(validInfoBody())), "s1")

	handler.SubmitInfo(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var state checkout.State
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&state))
	assert.Equal(t, checkout.StepPayment, state.Step)
	assert.Equal(t, checkout.PaymentCOD, state.PaymentMethod)
}

func TestCheckoutConfirm_CreatesOrderAndClearsCart(t *testing.T) {
	handler, carts, orders := newCheckoutFixture(t)

	_, err := carts.AddItem(context.Background(), "s1", domain.Product{ID: 1, Price: 15_000_000}, 2)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/info", bytes.NewReader(validInfoBody())), "s1")
	handler.SubmitInfo(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	request = withSession(httptest.NewRequest("POST", "/confirm", nil), "s1")
	handler.Confirm(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp ConfirmResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, int64(777), resp.OrderID)
	assert.Equal(t, checkout.StepComplete, resp.State.Step)

	require.Len(t, orders.created, 1)
	assert.Equal(t, "Hà Nội", orders.created[0].ShippingInfo.Province)
	assert.Equal(t, "Ba Đình", orders.created[0].ShippingInfo.District)

	after, err := carts.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, after.Items)
}

func TestCheckoutConfirm_EmptyCartConflicts(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/info", bytes.NewReader(validInfoBody())), "s1")
	handler.SubmitInfo(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	request = withSession(httptest.NewRequest("POST", "/confirm", nil), "s1")
	handler.Confirm(recorder, request)

	require.Equal(t, http.StatusConflict, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "empty_cart", resp.Code)
}

func TestCheckoutConfirm_FromInfoStepConflicts(t *testing.T) {
	handler, carts, _ := newCheckoutFixture(t)

	_, err := carts.AddItem(context.Background(), "s1", domain.Product{ID: 1, Price: 15_000_000}, 1)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/confirm", nil), "s1")
	handler.Confirm(recorder, request)

	require.Equal(t, http.StatusConflict, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "illegal_transition", resp.Code)
}

func TestCheckoutSetPaymentMethod_RejectsUnknown(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	body, _ := json.Marshal(SetPaymentMethodDTO{Method: "paypal"})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("PUT", "/payment-method", bytes.NewReader(body)), "s1")

	handler.SetPaymentMethod(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "invalid_payment_method", resp.Code)
}

func TestCheckoutStartOver_ResetsState(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/info", bytes.NewReader(validInfoBody())), "s1")
	handler.SubmitInfo(recorder, request)

	recorder = httptest.NewRecorder()
	request = withSession(httptest.NewRequest("POST", "/start-over", nil), "s1")
	handler.StartOver(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var state checkout.State
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&state))
	assert.Equal(t, checkout.StepInfo, state.Step)
	assert.Empty(t, state.Info.FullName)
}

func TestCheckoutProvinces_ListsOptions(t *testing.T) {
	handler, _, _ := newCheckoutFixture(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/provinces", nil)

	handler.Provinces(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var provinces []checkout.Province
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&provinces))
	assert.NotEmpty(t, provinces)
}
