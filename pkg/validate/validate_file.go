package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_inventory/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ResolveFormat — auto по расширению файла (.jsonl → jsonl, иначе json).
func ResolveFormat(filePath string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.ToLower(filepath.Ext(filePath)) == ".jsonl" {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — валидирует файл как JSON или JSONL и пишет валидный вывод в writer.
func ValidateFile(decoder ports.ChangeDecoder, filePath string, format InputFormat, ow io.Writer) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(decoder, file, ResolveFormat(filePath, format), ow)
}

// ValidateReader — то же, что ValidateFile, но для произвольного reader’а (например, stdin).
func ValidateReader(decoder ports.ChangeDecoder, ir io.Reader, format InputFormat, ow io.Writer) (string, error) {
	switch format {
	case FormatJSON, FormatAuto:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		record, err := decoder.Decode(raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		canonical, _ := json.Marshal(record)
		if _, err := ow.Write(canonical); err != nil {
			return "", fmt.Errorf("write json: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return "", fmt.Errorf("write newline: %w", err)
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		result, err := ValidateJSONLStream(decoder, ir, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
