package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AweFilko/PIB-SQL-injection/config"
	"github.com/AweFilko/PIB-SQL-injection/internal/relay"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
)

// audit_worker drains the blocked-request queue and writes each event
// to the structured log, giving the relay a durable audit trail.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-audit", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.AuditQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.AuditQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.AuditQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev relay.BlockedEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			logger.WithFields(map[string]any{
				"time":       ev.Time,
				"request_id": ev.RequestID,
				"client_ip":  ev.ClientIP,
				"method":     ev.Method,
				"path":       ev.Path,
				"source":     ev.Source,
				"param":      ev.Param,
				"value":      ev.Value,
			}).Warn("blocked request")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("audit worker consuming %s", cfg.AuditQueue)
	select {
	case <-stop:
		logger.Info("shutting down audit worker...")
	case <-done:
		logger.Info("channel closed")
	}
}
