package types

import (
	"encoding/json"
	"time"
)

type ReadingRecorded struct {
	LoggerSN   string    `json:"sn"`
	TenantID   int64     `json:"tenantId"`
	LocationID *int64    `json:"locationId,omitempty"`
	Sampling   time.Time `json:"sampling"`
	Rain       *float64  `json:"rain,omitempty"`
	WaterLevel *float64  `json:"waterLevel,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *ReadingRecorded) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
func (r *ReadingRecorded) ContentType() string {
	return "application/vnd.diwise.hydrology.reading+json"
}
func (r *ReadingRecorded) TopicName() string {
	return "reading.recorded"
}

// PayloadTopic carries raw logger payloads relayed over the message bus. The
// body of each message is one payload object.
const PayloadTopic string = "hydrology.payload"
