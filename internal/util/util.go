// Package util holds small formatting helpers shared by the usecases.
package util

import "strconv"

const sizeUnits = "KMGTPE"

// HumanSize renders a byte count with binary units, e.g. "5.0 MB".
func HumanSize(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n)
	unit := -1
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + string(sizeUnits[unit]) + "B"
}
