package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ybhotels/config"
	"ybhotels/services/reception"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReceptionWorker runs the async resolver worker in background.
func InitReceptionWorker(resolver *reception.Resolver) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(reception.TypeProcessMessage, handleProcessTask(resolver))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReceptionWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReceptionWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReceptionWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleProcessTask(resolver *reception.Resolver) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reception.ProcessPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReceptionHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		if err := resolver.Process(ctx, p.MessageID); err != nil {
			log.Printf("[ReceptionHandler] ❌ Failed to process message %s: %v", p.MessageID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReceptionWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
