package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ie-chargen/internal/actor"
	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/ruleset"
)

const (
	blockPattern = "character:stats:*"
	blockPrefix  = "character:stats:"
	indexKey     = "character:ids"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	rules, err := ruleset.LoadEmbedded()
	if err != nil {
		log.Fatal("Failed to load rules:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unreadable stat blocks...")

	iter := client.Scan(ctx, 0, blockPattern, 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var block ie.StatBlock
		if err := json.Unmarshal([]byte(data), &block); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		if id := strings.TrimPrefix(key, blockPrefix); block.ID != id {
			fmt.Printf("✗ %s holds the block of %q\n", key, block.ID)
			badKeys = append(badKeys, key)
			continue
		}

		if _, err := actor.New(&actor.Config{Stats: &block, Rules: rules}); err != nil {
			fmt.Printf("✗ %s: %v\n", key, err)
			badKeys = append(badKeys, key)
			continue
		}

		indexed, err := client.SIsMember(ctx, indexKey, block.ID).Result()
		if err == nil && !indexed {
			fmt.Printf("! %s is missing from %s, re-adding\n", key, indexKey)
			client.SAdd(ctx, indexKey, block.ID)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("No bad stat blocks found!")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, indexKey, strings.TrimPrefix(key, blockPrefix))
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
