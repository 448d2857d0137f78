package routes

import (
	"net/http"

	"mercato/admin"
	"mercato/auth"
	"mercato/cart"
	"mercato/checkout"
	"mercato/middleware"
	"mercato/orders"
	"mercato/products"
	"mercato/ratelim"
	"mercato/subscribers"
	"mercato/uploads"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/users/register", rl.Limit(auth.Register))
	router.POST("/api/users/login", rl.Limit(auth.Login))
	router.POST("/api/users/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/users/profile", middleware.Authenticate(auth.GetProfile))
	router.PUT("/api/users/update", middleware.Authenticate(auth.UpdateProfile))
	router.DELETE("/api/users/delete", middleware.Authenticate(auth.DeleteAccount))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/best-seller", products.GetBestSeller)
	router.GET("/api/products/new-arrivals", products.GetNewArrivals)
	router.GET("/api/products/similar/:id", products.GetSimilarProducts)
	router.GET("/api/products/single/:id", products.GetProduct)

	router.POST("/api/products", middleware.AdminOnly(products.CreateProduct))
	router.PUT("/api/products/:id", middleware.AdminOnly(products.UpdateProduct))
	router.DELETE("/api/products/:id", middleware.AdminOnly(products.DeleteProduct))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", cart.GetCart)
	router.POST("/api/cart", rl.Limit(middleware.OptionalAuth(cart.AddToCart)))
	router.PUT("/api/cart", middleware.OptionalAuth(cart.UpdateCartItem))
	router.DELETE("/api/cart", middleware.OptionalAuth(cart.RemoveFromCart))
	router.POST("/api/cart/merge", middleware.Authenticate(cart.MergeCarts))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout", rl.Limit(middleware.Authenticate(checkout.CreateCheckout)))
	router.PUT("/api/checkout/:id/pay", middleware.Authenticate(checkout.PayCheckout))
	router.POST("/api/checkout/:id/finalize", middleware.Authenticate(checkout.FinalizeCheckout))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders/my-orders", middleware.Authenticate(orders.GetMyOrders))
	router.GET("/api/orders/order/:id", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/order/:id/invoice", middleware.Authenticate(orders.PrintInvoice))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/users", middleware.AdminOnly(admin.GetUsers))
	router.POST("/api/admin/users", middleware.AdminOnly(admin.CreateUser))
	router.PUT("/api/admin/users/:id", middleware.AdminOnly(admin.UpdateUser))
	router.DELETE("/api/admin/users/:id", middleware.AdminOnly(admin.DeleteUser))

	router.GET("/api/admin/products", middleware.AdminOnly(products.GetAllProducts))

	router.GET("/api/admin/orders", middleware.AdminOnly(orders.GetAllOrders))
	router.PUT("/api/admin/orders/:id", middleware.AdminOnly(orders.UpdateOrderStatus))
	router.DELETE("/api/admin/orders/:id", middleware.AdminOnly(orders.DeleteOrder))
}

func AddUtilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/subscribe", rl.Limit(subscribers.Subscribe))
	router.POST("/api/upload", middleware.AdminOnly(uploads.UploadImage))
}
