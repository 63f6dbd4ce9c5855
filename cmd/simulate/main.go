package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/infrastructure/payment"
	"storefront/internal/repo"
	"storefront/internal/service"
	"storefront/internal/worker"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	sessions := repo.NewSessionRepo()
	proc := payment.NewProcessor(sessions, payment.DefaultProfiles(), logger)
	gateway := payment.NewGateway(cfg.Gateway, proc, cfg.PaymentAPIBase)
	products := catalog.Default()

	shipping := service.ShippingForm{
		FirstName: "Avery",
		LastName:  "Stone",
		Email:     "avery@example.com",
		Address:   "100 Main St",
		City:      "Los Angeles",
		State:     "CA",
		Zip:       "90210",
	}
	card := service.PaymentForm{
		CardNumber: "4242424242424242",
		ExpiryDate: "12/29",
		CVV:        "123",
		CardName:   "Avery Stone",
	}

	fmt.Println("--- STARTING SIMULATION (20 CHECKOUTS) ---")
	succeeded, declined := 0, 0
	for i := 0; i < 20; i++ {
		store := cart.NewStore()
		if p, ok := products.ByID("3"); ok {
			store.Add(p, 1)
		}
		if p, ok := products.ByID("4"); ok {
			store.Add(p, 2)
		}

		flow := service.NewCheckout(store, gateway, logger)
		if err := flow.SetShipping(shipping); err != nil {
			log.Printf("shipping rejected: %v", err)
			continue
		}
		if err := flow.SetPayment(card); err != nil {
			log.Printf("payment rejected: %v", err)
			continue
		}

		fmt.Printf("[%d] Submitting checkout ... ", i+1)
		orderID, err := flow.Submit(ctx)
		switch {
		case err == nil:
			succeeded++
			fmt.Printf("SUCCESS (order %s)\n", orderID)
		case errors.Is(err, service.ErrPaymentFailed):
			declined++
			fmt.Printf("DECLINED (retryable, stage=%s, cart=%d items)\n", flow.Stage(), store.ItemCount())
		default:
			fmt.Printf("FAILED: %v\n", err)
		}
	}
	fmt.Printf("--- DONE: %d succeeded, %d declined ---\n", succeeded, declined)

	// let the sweeper run once against whatever the simulation left behind
	sweeper := worker.NewExpiryWorker(sessions, time.Second, logger)
	sweepCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	sweeper.Run(sweepCtx)
}
