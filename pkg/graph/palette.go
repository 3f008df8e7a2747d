package graph

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Role and relationship colors shared by every render target.
var (
	colorRoleMain       = mustHex("#e74c3c") // red
	colorRoleSupporting = mustHex("#1abc9c") // teal
	colorRoleMinor      = mustHex("#f1c40f") // yellow
	colorRoleOther      = mustHex("#607d8b") // blue-gray

	colorLinkFriend  = mustHex("#2ecc71") // green
	colorLinkDefault = mustHex("#e67e22") // orange
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err) // palette literals are fixed at compile time
	}
	return c
}

// RoleColor maps a node role to its fill color. Unknown roles get the
// "other" color.
func RoleColor(role string) colorful.Color {
	switch strings.ToLower(role) {
	case "main":
		return colorRoleMain
	case "supporting":
		return colorRoleSupporting
	case "minor":
		return colorRoleMinor
	default:
		return colorRoleOther
	}
}

// LinkColor maps a relationship type to its stroke color.
func LinkColor(linkType string) colorful.Color {
	if linkType == "Friend" {
		return colorLinkFriend
	}
	return colorLinkDefault
}

// rgba converts a palette color to image/color with the given alpha.
func rgba(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, alpha}
}
