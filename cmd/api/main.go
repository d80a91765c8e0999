package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lumintechservices-ai/reggies/internal/cart"
	"github.com/lumintechservices-ai/reggies/internal/catalog"
	"github.com/lumintechservices-ai/reggies/internal/checkout"
	"github.com/lumintechservices-ai/reggies/internal/config"
	"github.com/lumintechservices-ai/reggies/internal/httpx"
	kafkax "github.com/lumintechservices-ai/reggies/internal/kafka"
	"github.com/lumintechservices-ai/reggies/internal/orders"
	"github.com/lumintechservices-ai/reggies/internal/paystack"
	"github.com/lumintechservices-ai/reggies/internal/postgres"
	"github.com/lumintechservices-ai/reggies/internal/redisx"
	"github.com/lumintechservices-ai/reggies/internal/wishlist"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	if err := postgres.Migrate(cfg.PostgresDSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// State managers
	cartMgr := cart.NewManager(&cart.RedisStore{Client: rdb})
	wishMgr := wishlist.NewManager(&wishlist.RedisStore{Client: rdb})

	// Catalog & orders
	fetch := &catalog.Fetcher{Store: &catalog.Repo{DB: db}}
	ranking := &catalog.Ranking{Redis: rdb}
	orderRepo := &orders.Repo{DB: db}

	// Checkout
	orch := &checkout.Orchestrator{
		Cart:        cartMgr,
		Payments:    paystack.New(cfg.PaystackBaseURL, cfg.PaystackSecretKey),
		Orders:      orderRepo,
		Attempts:    &checkout.RedisAttempts{Client: rdb},
		Producer:    prod,
		Service:     cfg.ServiceName,
		CallbackURL: cfg.CallbackBaseURL + "/checkout/callback",
	}

	// Router
	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Fetch: fetch, Ranking: ranking}).Register(router)
	(&httpx.CartHandler{Cart: cartMgr, Catalog: fetch}).Register(router)
	(&httpx.WishlistHandler{Wishlist: wishMgr, Catalog: fetch}).Register(router)
	(&httpx.CheckoutHandler{Orchestrator: orch}).Register(router)
	(&httpx.OrdersHandler{History: orderRepo}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()
	cancel()
	prod.WaitClosed()
}
