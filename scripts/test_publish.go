//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartmap-web/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	target := flag.String("target", string(domain.SyncTags), "index to rebuild: businesses, tags or regions")
	group := flag.String("group", "index-sync-workers", "consumer group of the index sync worker")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewIndexSyncEvent(domain.IndexSyncTarget(*target), "scripts/test_publish")
	if !event.Valid() {
		log.Fatalf("Unknown sync target %q", *target)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamIndexSync,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamIndexSync)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Event ID: %s\n", event.ID)
	fmt.Printf("   Target: %s\n", event.Target)

	// Ждём, пока воркер подтвердит сообщение
	fmt.Printf("\nWaiting for %s to ack the message...\n", *group)

	timeout := time.After(2 * time.Minute)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for ack")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamIndexSync).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
					Stream: domain.StreamIndexSync,
					Group:  *group,
					Start:  id,
					End:    id,
					Count:  1,
				}).Result()
				if err != nil {
					continue
				}
				if len(pending) == 0 && g.LastDeliveredID >= id {
					fmt.Println("Message acknowledged")
					return
				}
			}
		}
	}
}
