package functions

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestSinceLastData(t *testing.T) {
	is := is.New(t)

	is.Equal(SinceLastData(12*time.Minute), "12 minutes ago")
	is.Equal(SinceLastData(3599*time.Second), "59 minutes ago")
	is.Equal(SinceLastData(time.Hour), "1 hours ago")
	is.Equal(SinceLastData(23*time.Hour), "23 hours ago")
	is.Equal(SinceLastData(24*time.Hour), "1 days ago")
	is.Equal(SinceLastData(6*24*time.Hour), "6 days ago")
	is.Equal(SinceLastData(7*24*time.Hour), "more than a week ago")
	is.Equal(SinceLastData(29*24*time.Hour), "more than a week ago")
	is.Equal(SinceLastData(30*24*time.Hour), "more than a month ago")
	is.Equal(SinceLastData(-time.Minute), "0 minutes ago")
}
