package subscriber

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Config struct {
	Host     string
	Port     string
	Topics   []string
	ClientID string
	Username string
	Password string
}

func LoadConfiguration(ctx context.Context) Config {
	topics := []string{}
	for t := range strings.SplitSeq(env.GetVariableOrDefault(ctx, "MQTT_TOPIC", "sensors"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}

	return Config{
		Host:     env.GetVariableOrDefault(ctx, "MQTT_HOST", "localhost"),
		Port:     env.GetVariableOrDefault(ctx, "MQTT_PORT", "1883"),
		Topics:   topics,
		ClientID: env.GetVariableOrDefault(ctx, "MQTT_CLIENT_ID", fmt.Sprintf("iot-hydrology-%d", time.Now().UnixNano())),
		Username: env.GetVariableOrDefault(ctx, "MQTT_USER", ""),
		Password: env.GetVariableOrDefault(ctx, "MQTT_PASSWORD", ""),
	}
}

func (c Config) broker() string {
	return fmt.Sprintf("tcp://%s:%s", c.Host, c.Port)
}

type Handler func(ctx context.Context, topic string, body []byte)

type Subscriber struct {
	cfg     Config
	handler Handler
}

func New(cfg Config, handler Handler) (*Subscriber, error) {
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("at least one topic must be configured")
	}

	return &Subscriber{cfg: cfg, handler: handler}, nil
}

// Run connects to the broker and hands every message to the handler until
// ctx is cancelled. Subscriptions are renewed on each reconnect.
func (s *Subscriber) Run(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	opts := s.clientOptions(ctx)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to broker %s: %w", s.cfg.broker(), token.Error())
	}

	log.Info("connected to mqtt broker", "broker", s.cfg.broker(), "client_id", s.cfg.ClientID)

	<-ctx.Done()

	client.Disconnect(250)

	return nil
}

// clientOptions keeps paho's ordered delivery so that messages reach the
// handler one at a time.
func (s *Subscriber) clientOptions(ctx context.Context) *mqtt.ClientOptions {
	log := logging.GetFromContext(ctx)

	opts := mqtt.NewClientOptions().
		AddBroker(s.cfg.broker()).
		SetClientID(s.cfg.ClientID).
		SetOrderMatters(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	if s.cfg.Username != "" {
		opts = opts.SetUsername(s.cfg.Username).SetPassword(s.cfg.Password)
	}

	opts.SetOnConnectHandler(func(c mqtt.Client) {
		for _, topic := range s.cfg.Topics {
			token := c.Subscribe(topic, 0, s.messageHandler(ctx))
			if token.Wait() && token.Error() != nil {
				log.Error("failed to subscribe", "topic", topic, "err", token.Error().Error())
				continue
			}
			log.Info("subscribed to topic", "topic", topic)
		}
	})

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn("connection to broker lost", "err", err.Error())
	})

	return opts
}

func (s *Subscriber) messageHandler(ctx context.Context) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		s.handler(ctx, msg.Topic(), msg.Payload())
	}
}
