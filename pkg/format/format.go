package format

import (
	"fmt"
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

var speedUnits = []string{"B/s", "KB/s", "MB/s", "GB/s", "TB/s"}

const base = 1024

// Bytes formats a size with two decimals.
func Bytes(bytes float64) string {
	return FormatBytes(bytes, 2)
}

// FormatBytes renders a byte count using binary (IEC) units, for example
// "1.5 KiB". Trailing zeros are dropped. Values beyond the largest unit,
// infinities included, stay expressed in YiB.
func FormatBytes(bytes float64, decimals int) string {
	if bytes == 0 || math.IsNaN(bytes) {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}
	if math.IsInf(bytes, 0) {
		return fmt.Sprintf("%s %s", strconv.FormatFloat(bytes, 'f', -1, 64), byteUnits[len(byteUnits)-1])
	}
	magnitude := math.Abs(bytes)
	i := int(math.Floor(math.Log(magnitude) / math.Log(base)))
	if i < 0 {
		i = 0
	}
	if i > len(byteUnits)-1 {
		i = len(byteUnits) - 1
	}
	scaled := bytes / math.Pow(base, float64(i))
	// round to the requested precision, then print the shortest form
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(scaled, 'f', decimals, 64), 64)
	if err != nil {
		rounded = scaled
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(rounded, 'f', -1, 64), byteUnits[i])
}

// FormatSpeed renders a bytes/second rate, for example "2.00KB/s". TB/s is
// the largest unit.
func FormatSpeed(val float64) string {
	index := 0
	for val >= base && index < len(speedUnits)-1 {
		val /= base
		index++
	}
	return fmt.Sprintf("%.2f%s", val, speedUnits[index])
}
