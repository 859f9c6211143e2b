package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/admin"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// DashboardSource feeds the back-office landing page totals.
type DashboardSource interface {
	Dashboard(ctx context.Context) (*backend.DashboardTotals, error)
}

// AdminHandler groups the back-office tables: products, orders, users and
// reviews, plus the dashboard widget.
type AdminHandler struct {
	products  *admin.Products
	orders    *admin.Orders
	users     *admin.Users
	reviews   *admin.Reviews
	dashboard DashboardSource
	timeout   time.Duration
}

func NewAdminHandler(products *admin.Products, orders *admin.Orders, users *admin.Users, reviews *admin.Reviews, dashboard DashboardSource, timeout time.Duration) *AdminHandler {
	return &AdminHandler{
		products:  products,
		orders:    orders,
		users:     users,
		reviews:   reviews,
		dashboard: dashboard,
		timeout:   timeout,
	}
}

type UpdateProductRequestDTO struct {
	Product    domain.Product            `json:"product"`
	Attributes []domain.ProductAttribute `json:"attributes"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type AnswerReviewDTO struct {
	Answer string `json:"answer"`
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// confirmed reports whether the request carries the confirm=true flag the
// destructive endpoints require.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func handleAdminError(w http.ResponseWriter, err error) {
	if errors.Is(err, admin.ErrConfirmRequired) {
		respondError(w, http.StatusPreconditionRequired, "confirm_required", err.Error())
		return
	}
	handleServiceError(w, err)
}

// applyPage moves a table cursor from the page query parameter.
func applyPage(r *http.Request, set func(int)) {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			set(n)
		}
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	totals, err := h.dashboard.Dashboard(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	applyPage(r, h.products.SetPage)
	page, err := h.products.Load(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.products.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	product, err := h.products.Detail(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	page, err := h.products.Update(ctx, id, req.Product, req.Attributes)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	page, err := h.products.Delete(ctx, id, confirmed(r))
	if err != nil {
		handleAdminError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	applyPage(r, h.orders.SetPage)
	page, err := h.orders.Load(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := domain.OrderStatus(r.URL.Query().Get("status"))
	orders, err := h.orders.Search(ctx, r.URL.Query().Get("q"), status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	order, err := h.orders.Detail(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, OrderDTO{Order: *order, StatusLabel: order.Status.Label()})
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	page, err := h.orders.UpdateStatus(ctx, id, domain.OrderStatus(req.Status))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	page, err := h.orders.Delete(ctx, id, confirmed(r))
	if err != nil {
		handleAdminError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var (
		users []domain.User
		err   error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		users, err = h.users.Search(ctx, q)
	} else {
		users, err = h.users.Load(ctx)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) UserDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	username := chi.URLParam(r, "username")
	user, stats, err := h.users.Detail(ctx, username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"stats": stats,
	})
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	users, err := h.users.Update(ctx, id, u)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) ListShopReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	applyPage(r, h.reviews.SetPage)

	q := r.URL.Query()
	rating, _ := strconv.Atoi(q.Get("rating"))
	if keyword := q.Get("q"); keyword != "" || rating > 0 {
		page, err := h.reviews.SearchShop(ctx, rating, keyword)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
		return
	}

	page, err := h.reviews.LoadShop(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) ShopReviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stats, err := h.reviews.Stats(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UpdateShopReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	var req backend.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	page, err := h.reviews.UpdateShop(ctx, id, req.Rating, req.Comment)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) DeleteShopReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	page, err := h.reviews.DeleteShop(ctx, id, confirmed(r))
	if err != nil {
		handleAdminError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	applyPage(r, h.reviews.SetPage)
	page, err := h.reviews.LoadProduct(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) AnswerProductReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	var req AnswerReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Answer == "" {
		respondError(w, http.StatusBadRequest, "missing_answer", "answer is required")
		return
	}

	page, err := h.reviews.Answer(ctx, id, req.Answer)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) DeleteProductReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	page, err := h.reviews.DeleteProduct(ctx, id, confirmed(r))
	if err != nil {
		handleAdminError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}
