package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/api"
	"github.com/RoyceAzure/lab/bookstore/internal/api/handler"
	"github.com/RoyceAzure/lab/bookstore/internal/api/router"
	"github.com/RoyceAzure/lab/bookstore/internal/appcontext"
	"github.com/RoyceAzure/lab/bookstore/internal/config"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	bookHandler := handler.NewBookHandler(app.BookService)
	cartHandler := handler.NewCartHandler(app.CartService)
	checkoutHandler := handler.NewCheckoutHandler(app.CheckoutService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	userHandler := handler.NewUserHandler(app.UserService)

	server := api.NewServer(bookHandler, cartHandler, checkoutHandler, orderHandler, userHandler)

	// 設置路由
	r := router.SetupRouter(server, app.Logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
