package entity

import (
	"bytes"
	"time"
)

// IdempotencyRecord is the stored reply to a request that carried an
// idempotency key. Replays of the same key get this reply back.
type IdempotencyRecord struct {
	key      string
	status   int
	body     []byte
	storedAt time.Time
}

func NewIdempotencyRecord(key string, status int, body []byte) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:      key,
		status:   status,
		body:     bytes.Clone(body),
		storedAt: time.Now(),
	}
}

func (r *IdempotencyRecord) Key() string {
	return r.key
}

func (r *IdempotencyRecord) Status() int {
	return r.status
}

func (r *IdempotencyRecord) Body() []byte {
	return bytes.Clone(r.body)
}

func (r *IdempotencyRecord) StoredAt() time.Time {
	return r.storedAt
}
