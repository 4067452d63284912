package functions

import (
	"testing"

	"github.com/matryer/is"
)

func TestClassifyRain(t *testing.T) {
	is := is.New(t)

	is.Equal(ClassifyRain(0), NoAlert)
	is.Equal(ClassifyRain(10), NoAlert)
	is.Equal(ClassifyRain(10.1), HeavyRain)
	is.Equal(ClassifyRain(15), HeavyRain)
	is.Equal(ClassifyRain(20), HeavyRain)
	is.Equal(ClassifyRain(25), VeryHeavyRain)
}
