package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidItemCodes — некорректный список кодов единиц для импорта.
var ErrInvalidItemCodes = errors.New("invalid item codes")

// ItemCodes — проверяет список кодов: не пустой, не длиннее maxCodes (если > 0), без пустых кодов и дублей.
// Возвращает коды без окружающих пробелов.
func ItemCodes(codes []string, maxCodes int) ([]string, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: список пуст", ErrInvalidItemCodes)
	}
	if maxCodes > 0 && len(codes) > maxCodes {
		return nil, fmt.Errorf("%w: не более %d кодов за запрос, получено %d", ErrInvalidItemCodes, maxCodes, len(codes))
	}

	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for i, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, fmt.Errorf("%w: codes[%d] пустой", ErrInvalidItemCodes, i)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("%w: codes[%d] дублирует %q", ErrInvalidItemCodes, i, code)
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out, nil
}
