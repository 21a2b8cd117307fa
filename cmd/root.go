// Package cmd implements the anidb command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anidb/color"
	"github.com/anisan-cli/anidb/constant"
	"github.com/anisan-cli/anidb/icon"
	"github.com/anisan-cli/anidb/key"
	"github.com/anisan-cli/anidb/log"
	"github.com/anisan-cli/anidb/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("charset", "", "Charset replies are encoded in")
	lo.Must0(viper.BindPFlag(key.CodecCharset, rootCmd.PersistentFlags().Lookup("charset")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Build AniDB request masks and decode the replies they produce",
	Long: constant.Banner + "\n\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Build AniDB request masks and decode the replies they produce"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
