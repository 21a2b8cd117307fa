// Package cmd implements the anidb command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/icon"
	"github.com/anisan-cli/anidb/preset"
	"github.com/anisan-cli/anidb/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named mask presets",
}

func init() {
	presetCmd.AddCommand(presetSaveCmd)

	addKindFlag(presetSaveCmd)
	presetSaveCmd.Flags().StringSliceP("mask", "m", []string{}, "Hex mask, one per table in wire order")
	presetSaveCmd.Flags().StringSliceP("field", "f", []string{}, "Field to select, may be repeated")
	presetSaveCmd.MarkFlagsMutuallyExclusive("mask", "field")
	presetSaveCmd.MarkFlagsOneRequired("mask", "field")
}

var presetSaveCmd = &cobra.Command{
	Use:     "save <name>",
	Short:   "Save masks under a name",
	Example: "  anidb preset save titles -f aid -f romanji_name -f english_name",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		var p *preset.Preset
		if hexes := lo.Must(cmd.Flags().GetStringSlice("mask")); len(hexes) > 0 {
			masks, err := k.parse(hexes)
			handleErr(err)
			p = preset.New(args[0], k.name, masks...)
		} else {
			masks, err := k.of(lo.Must(cmd.Flags().GetStringSlice("field"))...)
			handleErr(err)
			p = preset.New(args[0], k.name, masks...)
		}

		handleErr(preset.Save(p))
		fmt.Printf(
			"%s saved %s as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(strings.Join(p.Masks, " ")),
			style.Fg(color.Purple)(p.Name),
		)
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	presetListCmd.SetOut(os.Stdout)
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Run: func(cmd *cobra.Command, args []string) {
		list, err := preset.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(list))
			return
		}

		if len(list) == 0 {
			cmd.Println(style.Faint("no presets saved"))
			return
		}

		for _, p := range list {
			cmd.Printf("%s %s %s\n", style.Bold(p.Name), style.Faint(p.Kind), style.Fg(color.Yellow)(strings.Join(p.Masks, " ")))
		}
	},
}

func init() {
	presetCmd.AddCommand(presetGetCmd)
	presetGetCmd.SetOut(os.Stdout)
}

var presetGetCmd = &cobra.Command{
	Use:               "get <name>",
	Short:             "Print the masks of a preset, one per line",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPresets,
	Run: func(cmd *cobra.Command, args []string) {
		found, err := preset.Get(args[0])
		handleErr(err)

		p, ok := found.Get()
		if !ok {
			handleErr(errNoPreset(args[0]))
		}

		for _, hex := range p.Masks {
			cmd.Println(hex)
		}
	},
}

func init() {
	presetCmd.AddCommand(presetRemoveCmd)
}

var presetRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove a preset",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPresets,
	Run: func(cmd *cobra.Command, args []string) {
		removed, err := preset.Remove(args[0])
		handleErr(err)

		if !removed {
			handleErr(errNoPreset(args[0]))
		}

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(args[0]))
	},
}

func errNoPreset(name string) error {
	if suggestion, ok := preset.Suggest(name).Get(); ok {
		return fmt.Errorf("no preset named %s, did you mean %s?", style.Fg(color.Red)(name), style.Fg(color.Yellow)(suggestion))
	}
	return fmt.Errorf("no preset named %s", style.Fg(color.Red)(name))
}
