package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/clipfit/clipfit/internal/term"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("13")).
	PaddingLeft(1)

const bannerArt = `      _ _       __ _ _
  ___| (_)_ __ / _(_) |_
 / __| | | '_ \ |_| | __|
| (__| | | |_) |  _| | |_
 \___|_|_| .__/_| |_|\__|
         |_|`

// PrintBanner prints the startup banner. Styling is skipped when colors are
// disabled so piped output stays clean.
func PrintBanner(version string) {
	line := fmt.Sprintf("%s  v%s", bannerArt, version)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, bannerStyle.Render(line))
	} else {
		fmt.Fprintln(os.Stdout, line)
	}
}
