package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"articraft/internal"
	"articraft/internal/util"
)

const defaultWidth = 80

var (
	label = color.New(color.FgCyan)
	value = color.New(color.FgHiWhite)
	muted = color.New(color.FgHiBlack)
)

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// ColorFor maps a card color token to a terminal color.
func ColorFor(token string) *color.Color {
	switch token {
	case "red":
		return color.New(color.FgHiRed, color.Bold)
	case "green":
		return color.New(color.FgHiGreen, color.Bold)
	case "blue":
		return color.New(color.FgHiBlue, color.Bold)
	case "black":
		return color.New(color.FgHiMagenta, color.Bold)
	case internal.ColorDarkGold:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgWhite, color.Bold)
	}
}

func RenderCards(w io.Writer, cards []internal.Card, width int) {
	if len(cards) == 0 {
		fmt.Fprintln(w, muted.Sprint("No cards found."))
		return
	}
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		RenderCard(w, c, width)
	}
}

func RenderCard(w io.Writer, c internal.Card, width int) {
	if width <= 0 {
		width = defaultWidth
	}
	const indent = "  "

	fmt.Fprintf(w, "%s %s\n", ColorFor(c.Color).Sprint(c.Name),
		muted.Sprintf("[%s · %s]", c.Type, strings.ReplaceAll(string(c.Rarity), "_", " ")))

	line := func(name, v string) {
		fmt.Fprintf(w, "%s%s %s\n", indent, label.Sprintf("%-12s", name+":"), value.Sprint(v))
	}

	line("Color", c.Color)
	if c.Illustrator != "" {
		line("Illustrator", c.Illustrator)
	}
	if c.Stats.Present() {
		line("Stats", fmt.Sprintf("%s attack / %s armor / %s health",
			stat(c.Stats.Attack), stat(c.Stats.Armor), stat(c.Stats.Health)))
	}
	if c.Spell.Kind != internal.SpellNone {
		line("Spell", c.Spell.Name)
	}

	if len(c.Abilities) > 0 {
		fmt.Fprintf(w, "%s%s\n", indent, label.Sprint("Abilities:"))
		descIndent := indent + indent + indent
		for _, a := range c.Abilities {
			title := a.Name
			if a.Type != "" {
				title += " " + muted.Sprintf("(%s)", a.Type)
			}
			fmt.Fprintf(w, "%s%s%s\n", indent, indent, value.Sprint(title))
			for _, l := range util.WrapText(util.PlainText(a.Description), width-len(descIndent)) {
				if l == "" {
					continue
				}
				fmt.Fprintf(w, "%s%s\n", descIndent, l)
			}
		}
	}

	if c.Image != "" {
		line("Image", c.Image)
	}
}

func stat(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
