// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const barWidth = 20

// ThemeColor returns the accent for a leader: the leading starter's color,
// magenta for a tie, and no color when nobody has voted.
func ThemeColor(l Leader) *color.Color {
	if s, ok := l.Starter(); ok {
		info, _ := Info(s)
		return color.New(info.Accent, color.Bold)
	}
	if l == LeaderTie {
		return color.New(color.FgMagenta, color.Bold)
	}
	return color.New(color.Reset)
}

// Banner is the leader line shown under the header, empty when there is
// no leader yet.
func Banner(l Leader) string {
	if l == LeaderTie {
		return "It's a TIE! The starters are battling it out!"
	}
	if s, ok := l.Starter(); ok {
		info, _ := Info(s)
		return info.Name + " is in the lead! The theme reflects the current winner."
	}
	return ""
}

// Render writes a text rendering of s to w, colored by the current leader.
func Render(w io.Writer, s State) error {
	accent := ThemeColor(s.Leader)
	dim := color.New(color.Faint)

	var b strings.Builder
	accent.Fprintln(&b, "Who's Your Starter?")
	fmt.Fprintln(&b, "Pokemon Winds & Waves - Gen 10 Starter Vote")
	dim.Fprintln(&b, "Only the best starter gets to choose the colors")

	if s.Loading {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Loading votes...")
		_, err := io.WriteString(w, b.String())
		return err
	}

	if banner := Banner(s.Leader); banner != "" {
		accent.Fprintln(&b, banner)
	}
	fmt.Fprintln(&b)

	for i, c := range s.Cards {
		typeColor := color.New(c.Info.Accent)
		fmt.Fprintf(&b, "%d) %s ", i+1, c.Info.Name)
		typeColor.Fprintf(&b, "[%s]\n", c.Info.Type)
		dim.Fprintf(&b, "   %s\n", c.Info.Description)
		fmt.Fprintf(&b, "   %s votes  %d%%\n", humanize.Comma(c.Votes), c.Percent)
		fmt.Fprintf(&b, "   %s\n", bar(c.Percent))

		label := c.Button.Label()
		switch {
		case c.Button == ButtonMine:
			accent.Fprintf(&b, "   > %s\n", label)
		case c.Disabled:
			dim.Fprintf(&b, "   - %s\n", label)
		default:
			fmt.Fprintf(&b, "   > %s\n", label)
		}
		fmt.Fprintln(&b)
	}

	plural := "s"
	if s.Total == 1 {
		plural = ""
	}
	dim.Fprintf(&b, "%s total vote%s cast\n", humanize.Comma(s.Total), plural)
	if s.Submitting {
		fmt.Fprintln(&b, "Submitting vote...")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func bar(percent int) string {
	filled := percent * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}
