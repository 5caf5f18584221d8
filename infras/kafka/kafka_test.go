package kafka_test

import (
	"dockhub/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "abc", Value: payload{ID: "abc", Status: "checked_in"}}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), msg.Key)
	assert.JSONEq(t, `{"id":"abc","status":"checked_in"}`, string(msg.Value))

	decoded, err := kafka.Decode[payload](msg)
	require.NoError(t, err)
	assert.Equal(t, payload{ID: "abc", Status: "checked_in"}, decoded)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}
