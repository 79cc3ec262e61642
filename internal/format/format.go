// Package format renders byte counts and byte-rates as human-readable
// strings. Functions are pure and deterministic so the UI and tests share the
// exact same output.
package format

import (
	"math"
	"strconv"
)

const sizeUnit = 1024

// Units from bytes up to gigabytes. Inputs at terabyte scale and beyond keep
// the GB exponent; extending the table is deliberately unsupported.
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// Size renders a byte count with the largest fitting unit and at most two
// decimal places, trailing zeros stripped: 1024 -> "1 KB", 1536 -> "1.5 KB".
func Size(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	return scale(float64(bytes))
}

// Speed renders a byte rate the same way Size renders a count, with a /s
// suffix: 0 -> "0 B/s", 1536 -> "1.5 KB/s".
func Speed(bytesPerSecond float64) string {
	if bytesPerSecond == 0 {
		return "0 B/s"
	}
	return scale(bytesPerSecond) + "/s"
}

func scale(value float64) string {
	exp := 0
	for value >= sizeUnit && exp < len(sizeUnits)-1 {
		value /= sizeUnit
		exp++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[exp]
}
