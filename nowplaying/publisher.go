package nowplaying

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/IBM/sarama"
)

// KafkaPublisher emits one message per track change so other services
// (song charts, social posting) can follow the air log.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisherFromEnv creates a publisher from KAFKA_BROKERS
// (comma-separated) and KAFKA_TOPIC. Returns nil when brokers are not
// configured; track changes are then only kept in process.
func NewKafkaPublisherFromEnv() (*KafkaPublisher, error) {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, nil
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "nowplaying.tracks"
	}

	config := sarama.NewConfig()
	config.Version = sarama.V3_6_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(track Track) error {
	payload, err := json.Marshal(track)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(track.Artist),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
