package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var bannerLines = []string{
	` __        __         _        _                 `,
	` \ \      / /__  _ __| | _____| |__   ___  _ __  `,
	`  \ \ /\ / / _ \| '__| |/ / __| '_ \ / _ \| '_ \ `,
	`   \ V  V / (_) | |  |   <\__ \ | | | (_) | |_) |`,
	`    \_/\_/ \___/|_|  |_|\_\___/_| |_|\___/| .__/ `,
	`                                          |_|    `,
}

// Blue to violet, one color per line.
var bannerColors = []string{"#60a5fa", "#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// Banner renders the workshop banner for the given color profile.
func Banner(p termenv.Profile, version string) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, line := range bannerLines {
		b.WriteString(p.String(line).Foreground(p.Color(bannerColors[i])).String())
		b.WriteString("\n")
	}
	if version != "" {
		b.WriteString(p.String("  v" + version).Faint().String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// PrintBanner writes the banner to out when out is an interactive terminal.
// It reports whether anything was written.
func PrintBanner(out *os.File, version string) bool {
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return false
	}
	return writeBanner(out, termenv.ColorProfile(), version)
}

func writeBanner(w io.Writer, p termenv.Profile, version string) bool {
	_, err := fmt.Fprint(w, Banner(p, version))
	return err == nil
}
