package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dvm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dvm",
	Short: "Move bytecode disassembler toolchain",
	Long:  `dvm inspects compiled Move modules and restores recompilable source text`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorFlag настраивает глобальный режим цвета по флагу --color
func applyColorFlag(cmd *cobra.Command) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
