package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"itsourstudio/config"
	"itsourstudio/models"
	"itsourstudio/services/mailer"
	"itsourstudio/services/notification"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async email worker in background.
func InitMailWorker(m mailer.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailDB,
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
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(m))

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(m mailer.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[MailHandler] Sending %s email to %s", p.Type, p.Booking.Email)

		if err := m.SendBookingEmail(p); err != nil {
			log.Printf("[MailHandler] Failed to send email: %v", err)
			return err
		}
		return nil
	}
}

// NewMailQueueClient builds the asynq client used by the notification service.
func NewMailQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailDB,
	})
}
