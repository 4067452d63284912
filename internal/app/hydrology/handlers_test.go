package hydrology

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestPayloadHandler(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer())

	NewPayloadHandler(a)(ctx, msgMock(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 3)), slog.Default())

	is.Equal(len(s.readings), 1)
	is.Equal(*s.readings[0].Rain, 0.6)
}

func TestHandlePayloadSurvivesBadMessages(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	app := &HydrologyAppMock{
		IngestFunc: func(ctx context.Context, b []byte) (IngestResult, error) {
			return IngestResult{Outcome: Malformed}, fmt.Errorf("%w: not json", ErrMalformedPayload)
		},
	}

	HandlePayload(ctx, app, "sensors", []byte("{"), slog.Default())
	HandlePayload(ctx, app, "sensors", []byte("{"), slog.Default())

	is.Equal(len(app.IngestCalls()), 2)
}

func msgMock(body string) *messaging.IncomingTopicMessageMock {
	return &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(body)
		},
		TopicNameFunc: func() string {
			return "hydrology.payload"
		},
		ContentTypeFunc: func() string {
			return "application/json"
		},
	}
}
