package jobs

import (
	"context"
	"log"
	"time"
)

const pingTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// StorePing returns a cron callback that checks the document store is still
// reachable and logs the outcome.
func StorePing(store Pinger) func() {
	return func() {
		if err := CheckStore(store); err != nil {
			log.Printf("🔥 Store ping failed: %v", err)
			return
		}
		log.Println("✅ Store ping succeeded.")
	}
}

func CheckStore(store Pinger) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return store.Ping(ctx)
}
