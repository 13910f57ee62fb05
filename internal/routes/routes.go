package routes

import (
	"os"
	"strings"
	"time"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/checkout"
	"delices_back_end/internal/handlers"
	"delices_back_end/internal/handlers/admin"
	"delices_back_end/internal/middleware"
	"delices_back_end/internal/notify"
	"delices_back_end/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes assemble les stores, le mailer et les handlers, puis
// branche toute la surface HTTP. Retourne le Submitter pour permettre à
// main d'attendre les notifications en vol à l'arrêt du serveur.
func RegisterRoutes(r *gin.Engine) *checkout.Submitter {
	r.Use(cors.New(corsConfig()))

	orders := &store.OrderStore{}
	products := &store.ProductStore{}
	reservations := &store.ReservationStore{}
	users := &store.UserStore{}

	carts := cart.NewRegistry()
	mailer := notify.NewMailerFromEnv()
	submitter := &checkout.Submitter{Orders: orders, Kitchen: mailer}

	cartH := &handlers.CartHandler{Carts: carts, Products: products}
	menuH := &handlers.MenuHandler{Products: products}
	checkoutH := &handlers.CheckoutHandler{Carts: carts, Submitter: submitter, Orders: orders}
	reservationH := &handlers.ReservationHandler{Reservations: reservations, Mailer: mailer}
	authH := &handlers.AuthHandler{Users: users}
	ordersH := &handlers.OrdersHandler{Orders: orders}

	adminProducts := &admin.ProductsHandler{Products: products}
	adminOrders := &admin.OrdersHandler{Orders: orders}
	adminReservations := &admin.ReservationsHandler{Reservations: reservations, Mailer: mailer}
	dashboard := &admin.DashboardHandler{Orders: orders, Reservations: reservations}

	api := r.Group("/api")
	{
		// Menu public
		api.GET("/menu", menuH.GetMenu)
		api.GET("/menu/search", menuH.SearchMenu)

		// Panier de session
		api.GET("/cart", cartH.GetCart)
		api.POST("/cart/items", cartH.AddItem)
		api.PUT("/cart/items/:productId", cartH.UpdateItem)
		api.DELETE("/cart/items/:productId", cartH.RemoveItem)
		api.DELETE("/cart", cartH.ClearCart)

		// Commande : le compte est facultatif, la limite anti-abus non.
		api.POST("/checkout", middleware.OptionalAuth(), middleware.CheckoutRateLimit(), checkoutH.Submit)
		api.GET("/checkout/confirmation", checkoutH.MissingConfirmation)
		api.GET("/checkout/confirmation/:number", checkoutH.Confirmation)

		// Réservations de table
		api.POST("/reservations", middleware.ReservationRateLimit(), reservationH.Create)

		// Comptes
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", middleware.LoginRateLimit(), authH.Login)
		api.GET("/auth/me", middleware.AuthRequired(), authH.Me)
		api.GET("/auth/:provider", authH.BeginAuth)
		api.GET("/auth/:provider/callback", authH.CallbackAuth)

		// Historique du compte connecté
		api.GET("/orders/mine", middleware.AuthRequired(), ordersH.MyOrders)
	}

	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adm.GET("/products", adminProducts.List)
		adm.POST("/products", adminProducts.Create)
		adm.PUT("/products/:id", adminProducts.Update)
		adm.DELETE("/products/:id", adminProducts.Delete)
		adm.POST("/products/image", adminProducts.UploadImage)

		adm.GET("/orders", adminOrders.List)
		adm.GET("/orders/live", adminOrders.LiveOrders)
		adm.PATCH("/orders/:id/status", adminOrders.UpdateStatus)

		adm.GET("/reservations", adminReservations.List)
		adm.PATCH("/reservations/:id/status", adminReservations.UpdateStatus)

		adm.GET("/dashboard", dashboard.Stats)
	}

	return submitter
}

// corsConfig autorise le front configuré via FRONTEND_URL (liste séparée
// par des virgules), ou localhost en développement.
func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if env := os.Getenv("FRONTEND_URL"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
