package api

import (
	"encoding/json"
	"time"

	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
)

type ApiResponse struct {
	Data any `json:"data"`
}

func NewApiResponse(data any) ApiResponse {
	return ApiResponse{
		Data: data,
	}
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

type ingestResponse struct {
	Outcome  string     `json:"outcome"`
	Serial   string     `json:"sn,omitempty"`
	Sampling *time.Time `json:"sampling,omitempty"`
	Message  string     `json:"message,omitempty"`
}

func newIngestResponse(result app.IngestResult) ApiResponse {
	resp := ingestResponse{
		Outcome: result.Outcome.String(),
		Serial:  result.Serial,
		Message: result.Message,
	}

	if !result.Sampling.IsZero() {
		resp.Sampling = &result.Sampling
	}

	return NewApiResponse(resp)
}
