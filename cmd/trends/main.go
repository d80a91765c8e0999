package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lumintechservices-ai/reggies/internal/catalog"
	"github.com/lumintechservices-ai/reggies/internal/config"
	kafkax "github.com/lumintechservices-ai/reggies/internal/kafka"
	"github.com/lumintechservices-ai/reggies/internal/orders"
	"github.com/lumintechservices-ai/reggies/internal/redisx"
	"github.com/lumintechservices-ai/reggies/internal/trends"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &trends.Service{
		Ranking: &catalog.Ranking{Redis: rdb},
		Dedup:   &trends.RedisDedup{Client: rdb},
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, "trends", orders.TopicOrderPlaced, 4)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		cancel()
	}()

	log.Printf("trends worker consuming %s", orders.TopicOrderPlaced)
	if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
		log.Fatalf("consumer: %v", err)
	}
}
