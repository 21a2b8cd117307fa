// Package cmd implements the anidb command-line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/icon"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/style"
	"github.com/anisan-cli/anidb/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(maskCmd)
}

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Build and explain request masks",
}

func init() {
	maskCmd.AddCommand(maskBuildCmd)

	addKindFlag(maskBuildCmd)
	maskBuildCmd.Flags().StringSliceP("field", "f", []string{}, "Field to select, may be repeated")
	maskBuildCmd.Flags().BoolP("all", "a", false, "Select every field")
	maskBuildCmd.Flags().BoolP("interactive", "i", false, "Pick the fields from a list")
	maskBuildCmd.MarkFlagsMutuallyExclusive("field", "all", "interactive")

	lo.Must0(maskBuildCmd.RegisterFlagCompletionFunc("field", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		k, err := kindFromFlags(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.FlatMap(k.tables, func(t *mask.Table, _ int) []string { return t.IDs() }), cobra.ShellCompDirectiveNoFileComp
	}))

	maskBuildCmd.SetOut(os.Stdout)
}

var maskBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Print the masks selecting the given fields",
	Example: `  anidb mask build -f aid -f romanji_name -f episodes
  anidb mask build --kind file -f size -f ed2k -f ep_name`,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		var masks []mask.Mask
		switch {
		case lo.Must(cmd.Flags().GetBool("all")):
			masks = lo.Map(k.tables, func(t *mask.Table, _ int) mask.Mask { return t.All() })
		case lo.Must(cmd.Flags().GetBool("interactive")):
			ids, err := pickFields(k)
			handleErr(err)
			masks, err = k.of(ids...)
			handleErr(err)
		default:
			masks, err = k.of(lo.Must(cmd.Flags().GetStringSlice("field"))...)
			handleErr(err)
		}

		for _, m := range masks {
			cmd.Println(m.Hex())
		}
	},
}

func pickFields(k *recordKind) ([]string, error) {
	options := lo.FlatMap(k.tables, func(t *mask.Table, _ int) []string { return t.IDs() })

	var picked []string
	prompt := &survey.MultiSelect{
		Message:  fmt.Sprintf("Select %s fields", k.name),
		Options:  options,
		PageSize: 15,
	}

	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	if len(picked) == 0 {
		return nil, errors.New("no fields selected")
	}

	return picked, nil
}

func init() {
	maskCmd.AddCommand(maskExplainCmd)

	addKindFlag(maskExplainCmd)
	maskExplainCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	maskExplainCmd.SetOut(os.Stdout)
}

type explained struct {
	Table    string        `json:"table"`
	Hex      string        `json:"hex"`
	Fields   []explainedFd `json:"fields"`
	Reserved string        `json:"reserved,omitempty"`
}

type explainedFd struct {
	Rank  int    `json:"rank"`
	Bit   int    `json:"bit"`
	Byte  int    `json:"byte"`
	ID    string `json:"id"`
	Type  string `json:"type"`
	Sep   string `json:"separator,omitempty"`
	Index int    `json:"index"`
}

var maskExplainCmd = &cobra.Command{
	Use:     "explain <hex>...",
	Short:   "List the fields a reply to the given masks carries, in reply order",
	Example: "  anidb mask explain b2f0e0fc000000",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		masks, err := k.parse(args)
		handleErr(err)

		var (
			out   []explained
			index = len(k.fixed)
		)

		for _, m := range masks {
			e := explained{Table: m.Table().Name(), Hex: m.Hex()}
			for f := range m.Fields() {
				e.Fields = append(e.Fields, explainedFd{
					Rank:  f.Rank,
					Bit:   int(f.Bit),
					Byte:  m.Table().Width() - f.Group(),
					ID:    f.ID,
					Type:  f.Type.String(),
					Sep:   lo.Ternary(f.Type == mask.List || f.Type == mask.IntList, f.Separator(), ""),
					Index: index,
				})
				index++
			}
			if reserved := m.Reserved(); reserved != 0 {
				e.Reserved = m.Table().FromUint(reserved).Hex()
			}
			out = append(out, e)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(out))
			return
		}

		for _, f := range k.fixed {
			cmd.Printf("%s %s %s\n", style.Faint("fixed"), style.Bold(f.ID), style.Fg(color.ForType(f.Type.String()))(f.Type.String()))
		}

		for i, e := range out {
			cmd.Println(style.Title(fmt.Sprintf("%s %s", e.Table, e.Hex)))
			cmd.Println(style.Faint(util.Quantify(len(e.Fields), "field", "fields")))

			width := util.Max(lo.Map(e.Fields, func(f explainedFd, _ int) int { return len(f.ID) })...)
			for _, f := range e.Fields {
				cmd.Printf(
					"%3d  %s  %s  %s\n",
					f.Index,
					style.Faint(fmt.Sprintf("byte %d bit %2d", f.Byte, f.Bit)),
					style.Bold(f.ID+strings.Repeat(" ", width-len(f.ID))),
					style.Fg(color.ForType(f.Type))(f.Type),
				)
			}

			if e.Reserved != "" {
				cmd.Printf("%s reserved bits %s are ignored\n", icon.Get(icon.Reserved), style.Fg(color.Yellow)(e.Reserved))
			}

			if i < len(out)-1 {
				cmd.Println()
			}
		}
	},
}
