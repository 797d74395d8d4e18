// Package redis carries the realtime change channel: the stock-update
// path publishes product change events, and the availability watcher
// plus the store-collection cache subscribe to them.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/choco-radar/site/config"
)

var Client = redis.NewClient(&redis.Options{
	Addr:         config.RedisAddress,
	Password:     config.RedisPassword,
	DialTimeout:  2 * time.Second,
	ReadTimeout:  1 * time.Second,
	WriteTimeout: 1 * time.Second,
})

// ProductChange is the payload published when a store's product
// snapshot changes. It carries enough to decide whether a subscribed
// store just became available.
type ProductChange struct {
	StoreID    int    `json:"store_id"`
	Status     string `json:"status"`
	StockCount int    `json:"stock_count"`
}

// PublishProductChange publishes a change event. Delivery is best
// effort; a publish failure is logged, not surfaced, because the
// pipeline refetches on the next request anyway.
func PublishProductChange(change ProductChange) {
	payload, err := json.Marshal(change)
	if err != nil {
		log.Printf("[redis] failed to marshal product change: %v", err)
		return
	}

	ctx := context.Background()
	if err := Client.Publish(ctx, config.ProductChangeChannel, payload).Err(); err != nil {
		log.Printf("[redis] failed to publish product change: %v", err)
	}
}

// SubscribeProductChanges subscribes to the change channel and invokes
// the handler for every decoded event until the context is canceled.
func SubscribeProductChanges(ctx context.Context, handler func(ProductChange)) error {
	sub := Client.Subscribe(ctx, config.ProductChangeChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", config.ProductChangeChannel, err)
	}

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var change ProductChange
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					log.Printf("[redis] failed to decode product change: %v", err)
					continue
				}
				handler(change)
			}
		}
	}()

	return nil
}

const keyUserValid = "user:valid:%d"

// SetUserValid marks an owner session as valid in Redis cache
func SetUserValid(userID int) {
	ctx := context.Background()
	key := fmt.Sprintf(keyUserValid, userID)
	Client.Set(ctx, key, userID, time.Hour)
}

// UserInvalid checks if an owner session needs a database recheck
func UserInvalid(userID int) bool {
	ctx := context.Background()
	key := fmt.Sprintf(keyUserValid, userID)
	value, err := Client.Get(ctx, key).Int()
	return err != nil || value != userID
}

// ClearUserValid drops the session validity marker (logout, archive)
func ClearUserValid(userID int) {
	ctx := context.Background()
	Client.Del(ctx, fmt.Sprintf(keyUserValid, userID))
}
