package session

import "github.com/gopcua/opcua/ua"

// Status code severity occupies the two most significant bits.
const (
	severityMask      = 0xC0000000
	severityUncertain = 0x40000000
	severityBad       = 0x80000000
)

// IsGood reports whether code has Good severity.
func IsGood(code ua.StatusCode) bool {
	return uint32(code)&severityMask == 0
}

// IsUncertain reports whether code has Uncertain severity.
func IsUncertain(code ua.StatusCode) bool {
	return uint32(code)&severityMask == severityUncertain
}

// IsBad reports whether code has Bad severity.
func IsBad(code ua.StatusCode) bool {
	return uint32(code)&severityBad != 0
}
