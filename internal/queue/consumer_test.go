package queue

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestMergeDeliveriesTagsSourceQueue(t *testing.T) {
	a := make(chan amqp.Delivery, 1)
	b := make(chan amqp.Delivery, 1)
	a <- amqp.Delivery{Body: []byte(`{"session_id":"s1"}`)}
	b <- amqp.Delivery{Body: []byte(`{"reservation_id":"R001"}`)}
	close(a)
	close(b)

	merged := mergeDeliveries(map[string]<-chan amqp.Delivery{
		QueueOrderPlaced:          a,
		QueueReservationCancelled: b,
	})

	got := map[string]string{}
	for d := range merged {
		got[d.RoutingKey] = string(d.Body)
	}
	assert.Equal(t, map[string]string{
		QueueOrderPlaced:          `{"session_id":"s1"}`,
		QueueReservationCancelled: `{"reservation_id":"R001"}`,
	}, got)
}

func TestMergeDeliveriesClosesWhenAllSourcesClose(t *testing.T) {
	// a broker loss closes every consume channel; the merged channel
	// must close too, otherwise the consume loop blocks forever and the
	// reconnect loop never runs
	a := make(chan amqp.Delivery)
	b := make(chan amqp.Delivery)
	merged := mergeDeliveries(map[string]<-chan amqp.Delivery{
		QueueOrderPlaced:     a,
		QueueAccountRecovery: b,
	})

	close(a)
	select {
	case _, ok := <-merged:
		t.Fatalf("unexpected receive (ok=%v) while a source was still open", ok)
	case <-time.After(50 * time.Millisecond):
	}

	close(b)
	select {
	case _, ok := <-merged:
		assert.False(t, ok, "expected a close, not a delivery")
	case <-time.After(time.Second):
		t.Fatal("merged channel never closed")
	}
}

func TestFormatLine(t *testing.T) {
	line, err := formatLine(QueueOrderPlaced,
		[]byte(`{"session_id":"s1","user_id":7,"item_count":3,"total_cents":39000,"placed_at":"2026-09-01T10:00:00Z"}`))
	assert.NoError(t, err)
	assert.Equal(t, "[2026-09-01T10:00:00Z] Pedido realizado | session=s1 | user_id=7 | items=3 | total=39000\n", line)

	_, err = formatLine("unknown.queue", []byte(`{}`))
	assert.Error(t, err)

	_, err = formatLine(QueueOrderPlaced, []byte(`not json`))
	assert.Error(t, err)
}
