// SPDX-License-Identifier: EPL-2.0

package utils

// ClampToInt16 converts x to int16, truncating toward zero and saturating
// at the int16 range boundaries. Conversion of an out-of-range float to an
// integer type is undefined in Go, so the clamp runs first.
func ClampToInt16(x float32) int16 {
	if x > 32767.0 {
		return 32767
	}

	if x < -32768.0 {
		return -32768
	}

	return int16(x)
}
