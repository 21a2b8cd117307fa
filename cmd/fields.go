// Package cmd implements the anidb command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/style"
	"github.com/anisan-cli/anidb/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fieldsCmd)

	addKindFlag(fieldsCmd)
	fieldsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	fieldsCmd.SetOut(os.Stdout)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [filter]",
	Short: "List the fields a record kind can request",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		matches := func(f mask.Field) bool {
			return len(args) == 0 || fuzzy.MatchFold(args[0], f.ID)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			type entry struct {
				Table string `json:"table"`
				Bit   int    `json:"bit"`
				ID    string `json:"id"`
				Type  string `json:"type"`
				Sep   string `json:"separator,omitempty"`
			}

			var entries []entry
			for _, t := range k.tables {
				for _, f := range t.Fields() {
					if !matches(f) {
						continue
					}
					entries = append(entries, entry{
						Table: t.Name(),
						Bit:   int(f.Bit),
						ID:    f.ID,
						Type:  f.Type.String(),
						Sep:   lo.Ternary(f.Type == mask.List || f.Type == mask.IntList, f.Separator(), ""),
					})
				}
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		width := util.Max(lo.Map(k.fields(), func(f mask.Field, _ int) int { return len(f.ID) })...)
		for i, t := range k.tables {
			cmd.Println(style.Title(fmt.Sprintf("%s (%s)", t.Name(), util.Quantify(t.Width(), "byte", "bytes"))))

			for _, f := range t.Fields() {
				if !matches(f) {
					continue
				}

				hex := t.Empty().With(f.Bit).Hex()
				line := fmt.Sprintf("%s  %s  %s", style.Faint(hex), style.Bold(f.ID+strings.Repeat(" ", width-len(f.ID))), style.Fg(color.ForType(f.Type.String()))(f.Type.String()))
				if f.Type == mask.List || f.Type == mask.IntList {
					line += style.Faint(fmt.Sprintf(" (%q)", f.Separator()))
				}
				cmd.Println(line)
			}

			if i < len(k.tables)-1 {
				cmd.Println()
			}
		}
	},
}
