package sensors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPayload = errors.New("invalid payload")

// Payload is the validated form of one message from a logger. Optional
// measurements stay nil when the device did not report them.
type Payload struct {
	Device        string   `json:"device"`
	Sampling      *int64   `json:"sampling"`
	UpSince       *int64   `json:"up_since,omitempty"`
	TimeSetAt     *int64   `json:"time_set_at,omitempty"`
	Tick          *float64 `json:"tick,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	Battery       *float64 `json:"battery,omitempty"`
	Altitude      *float64 `json:"altitude,omitempty"`
	Pressure      *float64 `json:"pressure,omitempty"`
	SignalQuality *float64 `json:"signal_quality,omitempty"`

	serial  string
	content []byte
}

func ParsePayload(b []byte) (Payload, error) {
	p := Payload{}

	err := json.Unmarshal(b, &p)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err.Error())
	}

	p.serial, err = ParseSerial(p.Device)
	if err != nil {
		return Payload{}, err
	}

	if p.Sampling == nil {
		return Payload{}, fmt.Errorf("%w: payload from %s contains no sampling time", ErrInvalidPayload, p.serial)
	}

	p.content = b

	return p, nil
}

// ParseSerial extracts the logger serial from a device path such as "prinus/1902".
func ParseSerial(device string) (string, error) {
	parts := strings.Split(device, "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: malformed device identifier %q", ErrInvalidPayload, device)
	}

	serial := strings.TrimSpace(parts[1])
	if serial == "" {
		return "", fmt.Errorf("%w: device identifier %q has no serial", ErrInvalidPayload, device)
	}

	return serial, nil
}

func (p Payload) Serial() string {
	return p.serial
}

func (p Payload) Content() []byte {
	return p.content
}

func (p Payload) SamplingTime() time.Time {
	return unixUTC(p.Sampling)
}

func (p Payload) UpSinceTime() time.Time {
	return unixUTC(p.UpSince)
}

func (p Payload) TimeSetAtTime() time.Time {
	return unixUTC(p.TimeSetAt)
}

func unixUTC(s *int64) time.Time {
	if s == nil {
		return time.Time{}
	}
	return time.Unix(*s, 0).UTC()
}
