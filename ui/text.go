package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// keys longer than this are not used to pad the others
const maxKeyPad = 30

func Color(w io.Writer) aurora.Aurora {
	f, ok := w.(*os.File)
	return aurora.NewAurora(ok && isatty.IsTerminal(f.Fd()))
}

func Bold(text string) string {
	return Color(os.Stdout).Bold(text).String()
}

func RedText(text string) string {
	return Color(os.Stdout).Red(text).String()
}

// ErrorText renders err in red unless its message already carries styling.
func ErrorText(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "\x1b[") {
		return msg
	}
	return RedText(msg)
}

func GreenText(text string) string {
	return Color(os.Stdout).Green(text).String()
}

func YellowText(text string) string {
	return Color(os.Stdout).Yellow(text).String()
}

func BlueText(text string) string {
	return Color(os.Stdout).Blue(text).String()
}

func MagentaText(text string) string {
	return Color(os.Stdout).Magenta(text).String()
}

func GrayText(text string) string {
	return Color(os.Stdout).Gray(12, text).String()
}

// KeyValues prints one aligned "key: value" line per entry, sorted by key.
func KeyValues(items map[string]string) string {
	keys := make([]string, 0, len(items))
	width := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > width && len(k) <= maxKeyPad {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", width+1, k+":", items[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
