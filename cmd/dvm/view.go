package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dvm/internal/disasm"
	"dvm/internal/driver"
	"dvm/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <module.dvmod>",
	Short: "View disassembled source in an interactive pager",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().Int("indent", 0, "indent width (default: dvm.toml setting or 4)")
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return fmt.Errorf("failed to get indent flag: %w", err)
	}
	if manifest, ok, mErr := loadProjectManifest("."); mErr == nil && ok && indent == 0 {
		indent = manifest.Config.Disasm.Indent
	}

	res, err := driver.DisasmFile(path, disasm.Options{IndentWidth: indent})
	if err != nil {
		return fmt.Errorf("disassembly failed: %w", err)
	}

	// Без терминала пейджер бесполезен, просто печатаем текст
	if !isTerminal(os.Stdout) {
		_, err = fmt.Fprint(os.Stdout, res.Source)
		return err
	}

	model := ui.NewViewerModel(filepath.Base(path), res.Source)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
