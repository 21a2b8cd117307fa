// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/anisan-cli/anidb/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Mask
	Reserved
)

type def struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*def{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(^_^)", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "", plain: "✖", kaomoji: "(T_T)", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(o_o)", squares: "🟨"},
	Mask:     {emoji: "🎭", nerd: "", plain: "#", kaomoji: "(-_-)", squares: "🟪"},
	Reserved: {emoji: "🚧", nerd: "", plain: "~", kaomoji: "(x_x)", squares: "⬛"},
}

func (d *def) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	return icons[i].get()
}
