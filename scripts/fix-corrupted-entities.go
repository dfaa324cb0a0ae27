package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
)

type corruptEntity struct {
	key       string
	rulesetID string
	entityID  string
	reason    string
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
	fmt.Println("Scanning for corrupted entity data...")

	iter := client.Scan(ctx, 0, "ruleset:*:entity:*", 0).Iterator()

	var corrupted []corruptEntity
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		rulesetID, entityID, ok := splitEntityKey(key)
		if !ok {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkEntity([]byte(data)); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corrupted = append(corrupted, corruptEntity{
				key:       key,
				rulesetID: rulesetID,
				entityID:  entityID,
				reason:    reason,
			})
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d entities, found %d corrupted entries\n", checkedCount, len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries and their index members? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, c := range corrupted {
		pipe := client.TxPipeline()
		pipe.Del(ctx, c.key)
		pipe.SRem(ctx, rulesetentity.EntitiesIndexKey(c.rulesetID), c.entityID)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", c.key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", c.key)
	}
	fmt.Println("\nCleanup complete! Type indexes drop stale members on the next list.")
}

// splitEntityKey parses ruleset:{rid}:entity:{id}
func splitEntityKey(key string) (string, string, bool) {
	rest, ok := strings.CutPrefix(key, "ruleset:")
	if !ok {
		return "", "", false
	}
	rulesetID, entityID, ok := strings.Cut(rest, ":entity:")
	if !ok || rulesetID == "" || entityID == "" {
		return "", "", false
	}
	return rulesetID, entityID, rulesetentity.EntityKey(rulesetID, entityID) == key
}

// checkEntity returns why a stored entity is unusable, or "" when it is fine
func checkEntity(data []byte) string {
	var entity ruleset.Entity
	if err := json.Unmarshal(data, &entity); err != nil {
		return fmt.Sprintf("invalid JSON (%v)", err)
	}
	switch {
	case entity.ID == "":
		return "missing id"
	case entity.EntityType == "":
		return "missing entity_type"
	case strings.TrimSpace(entity.Name) == "":
		return "missing name"
	case entity.Data == nil:
		return "entity_data is not an object"
	}
	return ""
}
