package sensors

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParsePayload(t *testing.T) {
	is := is.New(t)

	p, err := ParsePayload([]byte(payloadJSON))
	is.NoErr(err)

	is.Equal(p.Serial(), "1902")
	is.Equal(p.SamplingTime(), time.Date(2020, 10, 12, 3, 0, 0, 0, time.UTC))
	is.Equal(*p.Tick, 5.0)
	is.True(p.Distance == nil)
	is.True(p.Humidity == nil)
	is.Equal(string(p.Content()), payloadJSON)
}

func TestParsePayloadWithMalformedDevice(t *testing.T) {
	is := is.New(t)

	for _, device := range []string{"", "1902", "prinus/", "prinus/ "} {
		_, err := ParsePayload([]byte(`{"device":"` + device + `","sampling":1602471600}`))
		is.True(errors.Is(err, ErrInvalidPayload))
	}
}

func TestParsePayloadWithoutSampling(t *testing.T) {
	is := is.New(t)

	_, err := ParsePayload([]byte(`{"device":"prinus/1902","tick":1}`))
	is.True(errors.Is(err, ErrInvalidPayload))
}

func TestParsePayloadNotJSON(t *testing.T) {
	is := is.New(t)

	_, err := ParsePayload([]byte(`device=prinus/1902`))
	is.True(errors.Is(err, ErrInvalidPayload))
}

func TestParseLocationType(t *testing.T) {
	is := is.New(t)

	lt, ok := ParseLocationType("water-level")
	is.True(ok)
	is.Equal(lt, LocationWaterLevel)

	lt, ok = ParseLocationType("4")
	is.True(ok)
	is.Equal(lt, LocationClimate)

	_, ok = ParseLocationType("river")
	is.True(!ok)
}

func TestTenantLocationDefaultsToJakarta(t *testing.T) {
	is := is.New(t)

	loc, err := Tenant{}.Location()
	is.NoErr(err)
	is.Equal(loc.String(), "Asia/Jakarta")

	_, err = Tenant{Timezone: "Mars/Olympus"}.Location()
	is.True(err != nil)
}

const payloadJSON string = `{"device":"prinus/1902","sampling":1602471600,"up_since":1602000000,"time_set_at":1602000100,"tick":5,"temperature":27.5,"battery":12.1,"signal_quality":18}`
