package kafka_client

import "time"

const (
	KAFKA_TOPIC_CONTENT_EVENTS = "content-events" // vault lifecycle events
)

const (
	MAX_RETRIES      = 3
	RETRY_DELAY      = 250 * time.Millisecond
	FLUSH_TIMEOUT_MS = 5000
)
