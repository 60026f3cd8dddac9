package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/Gunvolt24/shop_backend/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет порту OrderEventPublisher.
var _ ports.OrderEventPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — настройки публикации событий.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher — обёртка над kafka.Writer для событий "заказ создан".
// Повторов нет: одна попытка записи с таймаутом, ошибка уходит вызывающему,
// который её логирует и не откатывает заказ.
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// NewPublisher — конструктор. Ключ сообщения — id заказа, чтобы события
// одного заказа попадали в одну партицию.
func NewPublisher(cfg PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}

	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	return &Publisher{
		writer:       w,
		topic:        cfg.Topic,
		log:          log,
		writeTimeout: wt,
	}
}

// PublishOrderCreated — сериализует событие и пишет его в топик.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctxTimeout, msg); err != nil {
		metrics.OrderEventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write message: %w", err)
	}

	metrics.OrderEventsPublished.WithLabelValues(p.topic).Inc()
	p.log.Infof(ctx, "order event published topic=%s order_id=%d", p.topic, event.OrderID)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// NopPublisher — заглушка, когда брокеры не сконфигурированы.
type NopPublisher struct{}

var _ ports.OrderEventPublisher = NopPublisher{}

func (NopPublisher) PublishOrderCreated(context.Context, domain.OrderCreatedEvent) error { return nil }
func (NopPublisher) Close() error                                                        { return nil }
