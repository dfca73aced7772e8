package format

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	White  = color.New(color.FgWhite).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()

	headerFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// visibleWidth is the printed width of str, ignoring ANSI escape codes.
func visibleWidth(str string) int {
	return utf8.RuneCountInString(ansiRegex.ReplaceAllString(str, ""))
}

// DisableColors turns off ANSI output globally.
func DisableColors() {
	color.NoColor = true
}

func ColorLatency(d time.Duration) string {
	ms := d.Milliseconds()
	switch {
	case ms < 100:
		return Green(fmt.Sprintf("%dms", ms))
	case ms < 300:
		return Yellow(fmt.Sprintf("%dms", ms))
	default:
		return Red(fmt.Sprintf("%dms", ms))
	}
}

func ColorStatus(code int) string {
	s := fmt.Sprintf("%d", code)
	if code >= 200 && code < 300 {
		return Green(s)
	}
	return Red(s)
}
