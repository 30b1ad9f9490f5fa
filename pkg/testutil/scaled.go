package testutil

import (
	"os"
	"strconv"
	"time"
)

// TimeScaleEnvName is the name of an environment variable that scales all
// durations returned by Scaled. It is useful for making timing-sensitive
// tests more robust on slow machines.
const TimeScaleEnvName = "WEIR_TEST_TIME_SCALE"

// Scaled returns d scaled by $WEIR_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * getTestTimeScale())
}

func getTestTimeScale() float64 {
	env := os.Getenv(TimeScaleEnvName)
	if env == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(env, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
