package kafka_client

import "github.com/spacesedan/postcraft/config"

type KafkaConfig struct {
	Broker string
	Topic  string
}

func GetKafkaConfig(s config.KafkaSettings) KafkaConfig {
	topic := s.Topic
	if topic == "" {
		topic = KAFKA_TOPIC_CONTENT_EVENTS
	}
	return KafkaConfig{
		Broker: s.Broker,
		Topic:  topic,
	}
}
