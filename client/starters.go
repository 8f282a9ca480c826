// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"github.com/fatih/color"

	"github.com/danielhkuo/starter-vote/models"
)

// StarterInfo is the static display metadata for a starter.
type StarterInfo struct {
	ID          models.Starter
	Name        string
	Type        string
	Description string
	Image       string
	TypeColor   string // text color token
	TypeBg      string // background color token
	Accent      color.Attribute
}

var starterInfos = []StarterInfo{
	{
		ID:          models.StarterBrowt,
		Name:        "Browt",
		Type:        "Grass",
		Description: "The Bean Chick Pokemon. A feisty little bird with a sprout-like brow.",
		Image:       "/starters/browt.jpg",
		TypeColor:   "text-green-700",
		TypeBg:      "bg-green-100",
		Accent:      color.FgGreen,
	},
	{
		ID:          models.StarterPombon,
		Name:        "Pombon",
		Type:        "Fire",
		Description: "The Puppy Pokemon. A fiery Pomeranian with a bonfire spirit.",
		Image:       "/starters/pombon.jpg",
		TypeColor:   "text-red-700",
		TypeBg:      "bg-red-100",
		Accent:      color.FgRed,
	},
	{
		ID:          models.StarterGecqua,
		Name:        "Gecqua",
		Type:        "Water",
		Description: "The Water Gecko Pokemon. A cool, aquatic gecko ready to splash.",
		Image:       "/starters/gecqua.jpg",
		TypeColor:   "text-blue-700",
		TypeBg:      "bg-blue-100",
		Accent:      color.FgBlue,
	},
}

// StarterInfos returns the display table in display order.
func StarterInfos() []StarterInfo {
	out := make([]StarterInfo, len(starterInfos))
	copy(out, starterInfos)
	return out
}

// Info looks up display metadata for a starter.
func Info(s models.Starter) (StarterInfo, bool) {
	for _, info := range starterInfos {
		if info.ID == s {
			return info, true
		}
	}
	return StarterInfo{}, false
}
