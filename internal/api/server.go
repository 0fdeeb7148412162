package api

import "github.com/RoyceAzure/lab/bookstore/internal/api/handler"

type Server struct {
	BookHandler     *handler.BookHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
}

func NewServer(
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
) *Server {
	return &Server{
		BookHandler:     bookHandler,
		CartHandler:     cartHandler,
		CheckoutHandler: checkoutHandler,
		OrderHandler:    orderHandler,
		UserHandler:     userHandler,
	}
}
