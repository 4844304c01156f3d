package widthadapter

import (
	"log"
	"math/bits"
)

// subWordIndex returns which narrow word the address selects inside a wide
// word. It reads the address bits between log2(narrowBytes) and
// log2(wideBytes), so both widths must be powers of two.
func subWordIndex(addr uint64, narrowBytes, wideBytes int) int {
	ratio := wideBytes / narrowBytes
	return int(addr>>uint(bits.TrailingZeros(uint(narrowBytes)))) & (ratio - 1)
}

// widenData places a narrow data payload at the byte lanes of the wide bus
// that the address selects. All other lanes are zero.
func widenData(addr uint64, data []byte, narrowBytes, wideBytes int) []byte {
	if len(data) != narrowBytes {
		log.Panicf("write beat carries %d bytes, primary bus is %d bytes wide",
			len(data), narrowBytes)
	}

	wide := make([]byte, wideBytes)
	offset := subWordIndex(addr, narrowBytes, wideBytes) * narrowBytes
	copy(wide[offset:], data)

	return wide
}

// widenStrobe places a narrow strobe at the byte lanes of the wide bus that
// the address selects. All other lanes stay unset, so a write only touches
// the intended bytes of the wide word.
func widenStrobe(addr uint64, strobe []bool, narrowBytes, wideBytes int) []bool {
	if len(strobe) != narrowBytes {
		log.Panicf("write beat carries %d strobe lanes, primary bus is %d bytes wide",
			len(strobe), narrowBytes)
	}

	wide := make([]bool, wideBytes)
	offset := subWordIndex(addr, narrowBytes, wideBytes) * narrowBytes
	copy(wide[offset:], strobe)

	return wide
}

// narrowData extracts the narrow sub-word that the address selects from a
// wide data payload.
func narrowData(addr uint64, data []byte, narrowBytes, wideBytes int) []byte {
	if len(data) != wideBytes {
		log.Panicf("read beat carries %d bytes, secondary bus is %d bytes wide",
			len(data), wideBytes)
	}

	narrow := make([]byte, narrowBytes)
	offset := subWordIndex(addr, narrowBytes, wideBytes) * narrowBytes
	copy(narrow, data[offset:offset+narrowBytes])

	return narrow
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
