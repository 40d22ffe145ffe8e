package turnover

import (
	"fmt"
	"strings"
)

// Mode selects the block cipher mode variant used to conceal the counter.
type Mode byte

const (
	// ModeECB uses the AES primitive in ECB mode as a one-block stream
	// cipher: the IV itself is enciphered and the result XORed with the data.
	ModeECB Mode = iota
	// ModeCFB represents cipher feedback chaining (CFB-128).
	ModeCFB
	// ModeCTR represents counter mode with the IV as initial counter block.
	ModeCTR
)

// ParseMode maps a configured mode name to its variant.
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(name) {
	case "ECB":
		return ModeECB, nil
	case "CFB":
		return ModeCFB, nil
	case "CTR":
		return ModeCTR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCFB:
		return "CFB"
	case ModeCTR:
		return "CTR"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}
