package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Shared printer, immutable after init
var sizePrinter = message.NewPrinter(language.English)

// SizeBytes formats a byte count with grouping separators and a unit
// suffix: 1234567 becomes "1,234,567 B".
func SizeBytes(bytes int64) string {
	return sizePrinter.Sprintf("%d B", bytes)
}
