package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

// CLI для проверки сообщений изменений продуктов перед публикацией.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	decoder := validate.NewProductDecoder()
	format := validate.InputFormat(*formatStr)

	var (
		summary string
		err     error
	)
	// stdin вариант: считаем, что jsonl
	if *inputPath == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		summary, err = validate.ValidateReader(decoder, os.Stdin, format, os.Stdout)
	} else {
		summary, err = validate.ValidateFile(decoder, *inputPath, format, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
