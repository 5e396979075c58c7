package config

import (
	"fmt"
	"strconv"
)

// HexColor is a 32-bit ARGB color persisted as an 8-digit hex string
// (e.g. "B2FF0000"), because hand-editing a decimal uint32 is hopeless.
type HexColor uint32

// MarshalText implements encoding.TextMarshaler for TOML output.
func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%08X", uint32(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML input.
func (c *HexColor) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 16, 32)
	if err != nil {
		return fmt.Errorf("color must be an 8-digit ARGB hex string: %w", err)
	}
	*c = HexColor(v)
	return nil
}

// Alpha returns the color's alpha channel.
func (c HexColor) Alpha() uint8 {
	return uint8(c >> 24)
}
