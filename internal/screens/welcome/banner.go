package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗ ███████╗██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██╔════╝██║╚══██╔══╝
 ██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝█████╗  ██║   ██║
 ██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗██╔══╝  ██║   ██║
 ╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║██║     ██║   ██║
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "C A R E E R F I T"

// bannerMinWidth is the narrowest terminal that fits the full banner.
const bannerMinWidth = 72

// RenderBanner returns the banner styled in the primary color, with a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
