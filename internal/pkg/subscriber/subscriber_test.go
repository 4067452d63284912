package subscriber

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

type message struct {
	topic   string
	payload []byte
}

func (m message) Duplicate() bool   { return false }
func (m message) Qos() byte         { return 0 }
func (m message) Retained() bool    { return false }
func (m message) Topic() string     { return m.topic }
func (m message) MessageID() uint16 { return 1 }
func (m message) Payload() []byte   { return m.payload }
func (m message) Ack()              {}

func TestMessageHandlerPassesTopicAndBody(t *testing.T) {
	is := is.New(t)

	var topic string
	var body []byte

	s, err := New(Config{Topics: []string{"sensors"}}, func(ctx context.Context, tp string, b []byte) {
		topic = tp
		body = b
	})
	is.NoErr(err)

	s.messageHandler(context.Background())(nil, message{topic: "sensors", payload: []byte(`{"device":"PRINUS/1811-3"}`)})

	is.Equal(topic, "sensors")
	is.Equal(string(body), `{"device":"PRINUS/1811-3"}`)
}

func TestClientOptionsDeliverInOrder(t *testing.T) {
	is := is.New(t)

	s, err := New(Config{Host: "broker", Port: "1883", Topics: []string{"sensors"}, ClientID: "iot-hydrology-test"}, func(context.Context, string, []byte) {})
	is.NoErr(err)

	opts := s.clientOptions(context.Background())

	is.True(opts.Order)
	is.Equal(opts.ClientID, "iot-hydrology-test")
	is.Equal(len(opts.Servers), 1)
	is.Equal(opts.Servers[0].String(), "tcp://broker:1883")
}

func TestNewRequiresTopics(t *testing.T) {
	is := is.New(t)

	_, err := New(Config{}, func(context.Context, string, []byte) {})
	is.True(err != nil)
}

func TestBroker(t *testing.T) {
	is := is.New(t)
	is.Equal(Config{Host: "broker", Port: "1883"}.broker(), "tcp://broker:1883")
}
