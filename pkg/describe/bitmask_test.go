package describe

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowsBitOrder(t *testing.T) {
	// 0b10100000 0b01000000: bits 0, 2 and 9 set, MSB first per byte.
	mask := base64.StdEncoding.EncodeToString([]byte{0xA0, 0x40})

	assert.True(t, Allows(mask, 0))
	assert.False(t, Allows(mask, 1))
	assert.True(t, Allows(mask, 2))
	assert.False(t, Allows(mask, 8))
	assert.True(t, Allows(mask, 9))
}

func TestAllowsOutOfRange(t *testing.T) {
	mask := base64.StdEncoding.EncodeToString([]byte{0xFF})

	assert.True(t, Allows(mask, 7))
	assert.False(t, Allows(mask, 8))
	assert.False(t, Allows(mask, 1000))
	assert.False(t, Allows(mask, -1))
}

func TestAllowsMalformedMask(t *testing.T) {
	assert.False(t, Allows("", 0))
	assert.False(t, Allows("not base64!!", 0))
}
