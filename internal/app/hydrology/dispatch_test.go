package hydrology

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestRunReportContinuesAfterDispatchFailure(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	s.tenants = append(s.tenants, sensors.Tenant{ID: 2, Name: "Second Basin", InfoDestination: "-2001"})

	sender := &SenderMock{
		SendFunc: func(ctx context.Context, destination, text string) error {
			if destination == "-1001" {
				return errors.New("chat not found")
			}
			return nil
		},
	}

	a := New(s.reader(), s.writer(), WithSender(sender), WithClock(clockwork.NewFakeClockAt(reportTime)))

	summary, err := a.RunReport(ctx, ReportRain)
	is.NoErr(err)

	is.True(summary.RunID != "")
	is.Equal(summary.Kind, ReportRain)
	is.Equal(summary.Tenants, 2)
	is.Equal(summary.Failed, 1)
	is.Equal(summary.Sent, 1)

	is.Equal(len(sender.SendCalls()), 2)
	is.Equal(sender.SendCalls()[1].Destination, "-2001")
}

func TestRunReportSkipsTenantsWithoutDestination(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	s.tenants[0].AlertDestination = ""
	s.tenants = append(s.tenants, sensors.Tenant{ID: 2, Name: "Second Basin", AlertDestination: "-2002"})

	sender := &SenderMock{
		SendFunc: func(ctx context.Context, destination, text string) error {
			return nil
		},
	}

	a := New(s.reader(), s.writer(), WithSender(sender), WithClock(clockwork.NewFakeClockAt(reportTime)))

	summary, err := a.RunReport(ctx, ReportAlert)
	is.NoErr(err)

	// no rain for the first tenant and no locations for the second
	is.Equal(summary.Skipped, 2)
	is.Equal(len(sender.SendCalls()), 0)
}

func TestDispatchWrapsSenderErrors(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	sender := &SenderMock{
		SendFunc: func(ctx context.Context, destination, text string) error {
			return errors.New("timeout")
		},
	}

	a := New(&HydrologyReaderMock{}, &HydrologyWriterMock{}, WithSender(sender))

	err := a.Dispatch(ctx, "-1001", "body")
	is.True(errors.Is(err, ErrDispatch))

	a = New(&HydrologyReaderMock{}, &HydrologyWriterMock{})
	err = a.Dispatch(ctx, "-1001", "body")
	is.True(errors.Is(err, ErrNotConfigured))
}
