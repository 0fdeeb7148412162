package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/api"
	m "github.com/RoyceAzure/lab/bookstore/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 書籍目錄，讀取公開，異動只有管理員
		r.Route("/books", func(r chi.Router) {
			r.Get("/", server.BookHandler.GetBooks)
			r.Get("/{id}", server.BookHandler.GetBook)
			r.With(m.AdminMiddleware).Post("/", server.BookHandler.CreateBook)
			r.With(m.AdminMiddleware).Put("/{id}", server.BookHandler.UpdateBook)
			r.With(m.AdminMiddleware).Delete("/{id}", server.BookHandler.DeleteBook)
		})

		//購物車相關路由
		r.Route("/cart", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.CartHandler.GetCart)
			r.Post("/add", server.CartHandler.AddToCart)
			r.Put("/update", server.CartHandler.UpdateCartItem)
			r.Delete("/remove/{bookId}", server.CartHandler.RemoveFromCart)
			r.Delete("/clear", server.CartHandler.ClearCart)
		})

		//結帳相關路由
		r.Route("/checkout", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.CheckoutHandler.GetSummary)
			r.Post("/validate", server.CheckoutHandler.ValidateCheckout)
			r.Post("/process", server.CheckoutHandler.ProcessCheckout)
			r.Post("/payment/{orderId}", server.CheckoutHandler.ProcessPayment)
		})

		//訂單相關路由
		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.With(m.AdminMiddleware).Get("/", server.OrderHandler.GetAllOrders)
			r.Get("/myorders", server.OrderHandler.GetMyOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.With(m.AdminMiddleware).Put("/{id}/deliver", server.OrderHandler.DeliverOrder)
		})

		//使用者管理
		r.Route("/users", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.With(m.AdminMiddleware).Get("/", server.UserHandler.GetAllUsers)
			r.Get("/{id}", server.UserHandler.GetUser)
			r.Put("/{id}", server.UserHandler.UpdateUser)
			r.With(m.AdminMiddleware).Delete("/{id}", server.UserHandler.DeleteUser)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
