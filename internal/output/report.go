package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/homeplan/homeplan/internal/domain"
)

// extensionFor maps a canonical format name to its file extension.
func extensionFor(format string) string {
	switch {
	case format == "console":
		return "txt"
	case strings.Contains(format, "csv"):
		return "csv"
	default:
		return format
	}
}

// GenerateReport resolves the format name, runs the matching formatter,
// and writes the result to a timestamped file. The console format is
// additionally echoed to stdout. "all" writes every registered format.
func GenerateReport(report *domain.Report, format string) error {
	name := NormalizeFormatName(format)
	if name == "all" {
		for _, f := range builtInFormatters {
			if _, err := WriteFormatted(f, report, extensionFor(f.Name())); err != nil {
				return fmt.Errorf("format %s: %w", f.Name(), err)
			}
		}
		return nil
	}

	f := GetFormatterByName(name)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	if name == "console" {
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	filename, err := WriteFormatted(f, report, extensionFor(name))
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
