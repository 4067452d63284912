package hydrology

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestFetchAndIngest(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	fetcher := &FetcherMock{
		FetchPayloadsFunc: func(ctx context.Context, serial string, day time.Time) ([][]byte, error) {
			return [][]byte{
				[]byte(fmt.Sprintf(rainPayload, serial, sampling.Unix(), 1)),
				[]byte(fmt.Sprintf(rainPayload, serial, sampling.Add(5*time.Minute).Unix(), 0)),
			}, nil
		},
	}

	a := New(s.reader(), s.writer(), WithFetcher(fetcher))

	summary, err := a.FetchAndIngest(ctx, "1811-3", sampling)
	is.NoErr(err)
	is.Equal(summary.Recorded, 2)
	is.Equal(fetcher.FetchPayloadsCalls()[0].Serial, "1811-3")
}

func TestFetchAndIngestAllContinuesAfterFailingDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	fetcher := &FetcherMock{
		FetchPayloadsFunc: func(ctx context.Context, serial string, day time.Time) ([][]byte, error) {
			if serial == "1811-3" {
				return nil, errors.New("connection reset")
			}
			return [][]byte{
				[]byte(fmt.Sprintf(rainPayload, serial, sampling.Unix(), 1)),
			}, nil
		},
	}

	a := New(s.reader(), s.writer(), WithFetcher(fetcher))

	summary, err := a.FetchAndIngestAll(ctx, sampling)
	is.NoErr(err)

	is.Equal(len(fetcher.FetchPayloadsCalls()), 3)
	is.Equal(summary.Failed, 1)
	is.Equal(summary.Recorded, 1)   // 2001
	is.Equal(summary.Unassigned, 1) // 3001
}

func TestFetchWithoutClient(t *testing.T) {
	is := is.New(t)

	s := testStore()
	a := New(s.reader(), s.writer())

	_, err := a.FetchAndIngest(context.Background(), "1811-3", sampling)
	is.True(errors.Is(err, ErrNotConfigured))
}
