// Package cmd implements the anidb command-line interface.
package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/filesystem"
	"github.com/anisan-cli/anidb/icon"
	"github.com/anisan-cli/anidb/key"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/preset"
	"github.com/anisan-cli/anidb/style"
	"github.com/anisan-cli/anidb/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(decodeCmd)

	addKindFlag(decodeCmd)
	decodeCmd.Flags().StringSliceP("mask", "m", []string{}, "Hex mask the request carried, one per table in wire order")
	decodeCmd.Flags().StringP("preset", "p", "", "Use the masks of a saved preset")
	decodeCmd.MarkFlagsMutuallyExclusive("mask", "preset")
	lo.Must0(decodeCmd.RegisterFlagCompletionFunc("preset", completionPresets))

	decodeCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(viper.BindPFlag(key.OutputJSON, decodeCmd.Flags().Lookup("json")))

	decodeCmd.Flags().IntP("wrap", "w", 0, "Wrap values at this width, 0 for the terminal width, -1 to disable")
	lo.Must0(viper.BindPFlag(key.OutputWrap, decodeCmd.Flags().Lookup("wrap")))

	decodeCmd.SetOut(os.Stdout)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file|-]",
	Short: "Decode a raw reply into records",
	Long: `Decode a raw reply into records.

The reply is read from the given file, or from stdin when the file is "-" or
omitted. Masks are taken from --mask, then --preset, then the config.`,
	Example: `  printf '230 ANIME\n1|Seikai no Monshou' | anidb decode -m 80800000000000
  anidb decode --kind file -p hashes reply.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		masks, err := masksFromFlags(cmd, k)
		handleErr(err)

		payload, err := readPayload(cmd, args)
		handleErr(err)

		result, err := k.decode(codec.Options{Charset: viper.GetString(key.CodecCharset)}, payload, masks)
		handleErr(err)

		if viper.GetBool(key.OutputJSON) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(result))
			return
		}

		handleErr(printDecoded(cmd.OutOrStdout(), k, masks, result))
	},
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return filesystem.API().ReadFile(args[0])
	}

	if util.IsTerminal(os.Stdin) {
		return nil, errors.New("no reply given, pass a file or pipe it to stdin")
	}

	return io.ReadAll(cmd.InOrStdin())
}

// wrapWidth resolves output.wrap against the terminal.
func wrapWidth(indent int) int {
	width := viper.GetInt(key.OutputWrap)
	if width == 0 {
		if w, _, err := util.TerminalSize(); err == nil {
			width = w
		}
	}
	if width <= indent {
		return -1
	}
	return width - indent
}

func printDecoded(w io.Writer, k *recordKind, masks []mask.Mask, result *decoded) error {
	header := fmt.Sprintf("%d %s", result.Code, result.Name)
	if result.Tag != "" {
		header = result.Tag + " " + header
	}
	fmt.Fprintln(w, style.Title(header))

	if len(result.Lines) == 0 {
		fmt.Fprintln(w, style.Faint("no data lines"))
		return nil
	}

	fields := wireFields(k.fixed, masks)
	indent := util.Max(lo.Map(fields, func(f mask.Field, _ int) int { return len(f.ID) })...) + 2
	width := wrapWidth(indent)

	for i, line := range result.Lines {
		fmt.Fprintln(w)
		fmt.Fprintln(w, style.Fg(color.HiPurple)(fmt.Sprintf("line %d", i+1)))

		if line.Err != nil {
			fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(line.Err.Error()))
			continue
		}

		raw, err := json.Marshal(line.Record)
		if err != nil {
			return err
		}

		var values map[string]any
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(&values); err != nil {
			return err
		}

		for _, f := range fields {
			value, ok := values[f.ID]
			if !ok || value == nil {
				continue
			}

			text := util.Wrap(formatValue(value), width)
			text = strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", indent))
			fmt.Fprintf(w, "%s%s%s\n", style.Bold(f.ID), strings.Repeat(" ", indent-len(f.ID)), text)
		}
	}

	return nil
}

// wireFields lists the fixed fields and the fields selected by masks, in wire order.
func wireFields(fixed []mask.Field, masks []mask.Mask) []mask.Field {
	fields := append([]mask.Field{}, fixed...)
	for _, m := range masks {
		for f := range m.Fields() {
			fields = append(fields, f)
		}
	}
	return fields
}

func formatValue(v any) string {
	switch value := v.(type) {
	case []any:
		if len(value) == 0 {
			return style.Faint("(none)")
		}
		return strings.Join(lo.Map(value, func(e any, _ int) string { return fmt.Sprint(e) }), ", ")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return value
	default:
		return fmt.Sprint(value)
	}
}

func completionPresets(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	list, err := preset.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return lo.Map(list, func(p *preset.Preset, _ int) string { return p.Name }), cobra.ShellCompDirectiveNoFileComp
}
