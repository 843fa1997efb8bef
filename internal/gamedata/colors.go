package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a hex color ("#FF0000" or "FF0000") or a named color
// ("red") to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}

	hex := strings.TrimPrefix(s, "#")
	if strings.HasPrefix(s, "#") || isHexDigits(hex) {
		if len(hex) != 6 || !isHexDigits(hex) {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color: %s", s)
		}
		return tcell.GetColor("#" + hex), nil
	}

	color, ok := tcell.ColorNames[s]
	if !ok {
		return tcell.ColorDefault, fmt.Errorf("unknown color name: %s", s)
	}
	return color, nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
