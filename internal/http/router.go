package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers bundles the storefront's route handlers for mounting.
type Handlers struct {
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Catalog  *CatalogHandler
	Reviews  *ReviewHandler
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Wishlist *WishlistHandler
	Admin    *AdminHandler
}

// Mount registers every storefront and back-office route on r. Global
// middleware is the caller's concern.
func Mount(r chi.Router, h Handlers) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Catalog.ListProducts)
			r.Get("/reset", h.Catalog.ResetFilters)
			r.Get("/search", h.Catalog.SearchProducts)
			r.Get("/category/{category}", h.Catalog.BrowseCategory)
			r.Get("/{id}", h.Catalog.ProductDetail)
			r.Get("/{id}/reviews", h.Reviews.ListProductReviews)
			r.Post("/{id}/reviews", h.Reviews.CreateProductReview)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Delete("/", h.Cart.ClearCart)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{item_id}", h.Cart.UpdateQuantity)
			r.Delete("/items/{item_id}", h.Cart.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/state", h.Checkout.State)
			r.Get("/provinces", h.Checkout.Provinces)
			r.Post("/info", h.Checkout.SubmitInfo)
			r.Post("/back", h.Checkout.Back)
			r.Put("/payment-method", h.Checkout.SetPaymentMethod)
			r.Post("/confirm", h.Checkout.Confirm)
			r.Post("/start-over", h.Checkout.StartOver)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", h.Wishlist.List)
			r.Get("/count", h.Wishlist.Count)
			r.Post("/", h.Wishlist.Add)
			r.Delete("/{product_id}", h.Wishlist.Remove)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.Reviews.ListShopReviews)
			r.Get("/stats", h.Reviews.ShopReviewStats)
			r.Post("/", h.Reviews.CreateShopReview)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
			r.Put("/me", h.Auth.UpdateMe)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(MockAuthMiddleware)
			r.Get("/orders", h.Profile.OrderHistory)
			r.Get("/stats", h.Profile.OrderStats)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", h.Admin.Dashboard)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Admin.ListProducts)
				r.Get("/search", h.Admin.SearchProducts)
				r.Get("/{id}", h.Admin.ProductDetail)
				r.Put("/{id}", h.Admin.UpdateProduct)
				r.Delete("/{id}", h.Admin.DeleteProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Admin.ListOrders)
				r.Get("/search", h.Admin.SearchOrders)
				r.Get("/{id}", h.Admin.OrderDetail)
				r.Put("/{id}/status", h.Admin.UpdateOrderStatus)
				r.Delete("/{id}", h.Admin.DeleteOrder)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Admin.ListUsers)
				r.Get("/{username}", h.Admin.UserDetail)
				r.Put("/{id}", h.Admin.UpdateUser)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/shop", h.Admin.ListShopReviews)
				r.Get("/shop/stats", h.Admin.ShopReviewStats)
				r.Put("/shop/{id}", h.Admin.UpdateShopReview)
				r.Delete("/shop/{id}", h.Admin.DeleteShopReview)
				r.Get("/product", h.Admin.ListProductReviews)
				r.Post("/product/{id}/answer", h.Admin.AnswerProductReview)
				r.Delete("/product/{id}", h.Admin.DeleteProductReview)
			})
		})
	})
}
