package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dvm/internal/disasm"
	"dvm/internal/driver"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] <module.dvmod|dir>",
	Short: "Disassemble compiled module containers",
	Long:  `Disasm restores recompilable source text from compiled module containers`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func init() {
	disasmCmd.Flags().String("out", "", "output directory (default: next to the input)")
	disasmCmd.Flags().Int("jobs", 0, "max parallel jobs for directory input (0 = NumCPU)")
	disasmCmd.Flags().Bool("stdout", false, "print source to stdout instead of writing files")
	disasmCmd.Flags().Int("indent", 0, "indent width (default: dvm.toml setting or 4)")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	path := args[0]
	applyColorFlag(cmd)

	// Получаем флаги
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return fmt.Errorf("failed to get indent flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	// Настройки из манифеста проекта, если он есть
	if manifest, ok, err := loadProjectManifest("."); err == nil && ok {
		if indent == 0 {
			indent = manifest.Config.Disasm.Indent
		}
		if outDir == "" {
			outDir = manifest.Config.Disasm.Out
		}
	}

	opt := disasm.Options{IndentWidth: indent}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		if toStdout {
			return fmt.Errorf("--stdout is only valid for a single container file")
		}
		results, err := driver.DisasmDir(cmd.Context(), path, opt, jobs)
		if err != nil {
			return fmt.Errorf("disassembly failed: %w", err)
		}
		for _, res := range results {
			out, err := driver.WriteSource(res, outDir)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("%s %s -> %s\n", color.GreenString("restored"), res.Path, out)
			}
		}
		if !quiet {
			fmt.Printf("restored %d modules\n", len(results))
		}
		return nil
	}

	res, err := driver.DisasmFile(path, opt)
	if err != nil {
		return fmt.Errorf("disassembly failed: %w", err)
	}
	if toStdout {
		_, err = fmt.Fprint(os.Stdout, res.Source)
		return err
	}
	out, err := driver.WriteSource(res, outDir)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("%s %s -> %s\n", color.GreenString("restored"), res.Path, out)
	}
	return nil
}
