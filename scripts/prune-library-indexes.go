package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to verify a library record still parses.
type entityRecord struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning library records and indexes...")

	var corruptedKeys []string
	var checkedCount int

	iter := client.Scan(ctx, 0, "library:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		// Index sets are handled below; only record keys carry JSON.
		if client.Type(ctx, key).Val() != "string" {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec entityRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Index entries whose record is gone. Covers owner sets and the public set.
	dangling := map[string][]string{}
	iter = client.Scan(ctx, 0, "library:owner:*", 0).Iterator()
	indexKeys := []string{"library:public"}
	for iter.Next(ctx) {
		indexKeys = append(indexKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	for _, indexKey := range indexKeys {
		ids, err := client.SMembers(ctx, indexKey).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}
		for _, id := range ids {
			exists, err := client.Exists(ctx, "library:"+id).Result()
			if err != nil {
				fmt.Printf("Error checking library:%s: %v\n", id, err)
				continue
			}
			if exists == 0 {
				fmt.Printf("✗ Dangling index entry %s in %s\n", id, indexKey)
				dangling[indexKey] = append(dangling[indexKey], id)
			}
		}
	}

	fmt.Printf("\nChecked %d records: %d corrupted, %d indexes with dangling entries\n",
		checkedCount, len(corruptedKeys), len(dangling))

	if len(corruptedKeys) == 0 && len(dangling) == 0 {
		fmt.Println("Nothing to clean up!")
		return
	}

	fmt.Print("\nDo you want to REMOVE these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for indexKey, ids := range dangling {
		for _, id := range ids {
			if err := client.SRem(ctx, indexKey, id).Err(); err != nil {
				fmt.Printf("Failed to prune %s from %s: %v\n", id, indexKey, err)
			} else {
				fmt.Printf("Pruned %s from %s\n", id, indexKey)
			}
		}
	}
	fmt.Println("\nCleanup complete!")
}
