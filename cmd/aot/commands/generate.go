package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/aot/internal/adapters/layout"
	"go.trai.ch/aot/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <app-dir>",
		Short: "Generate native images for a deployed application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir := args[0]

			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				abs, err := filepath.Abs(appDir)
				if err != nil {
					return err
				}
				name = filepath.Base(abs)
			}

			outputDir, _ := cmd.Flags().GetString("output")
			layoutKind, _ := cmd.Flags().GetString("layout")
			generator, _ := cmd.Flags().GetString("generator")
			symbolWriter, _ := cmd.Flags().GetString("symbol-writer")
			symbols, _ := cmd.Flags().GetBool("symbols")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			dotnetRoot, _ := cmd.Flags().GetString("dotnet-root")
			configPath, _ := cmd.Flags().GetString("config")

			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				AppName:          name,
				AppDir:           appDir,
				OutputDir:        outputDir,
				Layout:           layoutKind,
				GeneratorPath:    generator,
				SymbolWriterPath: symbolWriter,
				CreateSymbols:    symbols,
				Overwrite:        overwrite,
				DotnetRoot:       dotnetRoot,
				ConfigPath:       configPath,
			})
		},
	}

	cmd.Flags().StringP("name", "n", "", "Application name (defaults to the app directory name)")
	cmd.Flags().StringP("output", "o", "", "Output directory for generated images")
	cmd.Flags().StringP("layout", "l", layout.KindFlat, "Output layout: flat or cache")
	cmd.Flags().StringP("generator", "g", "", "Path of the native image generator executable")
	cmd.Flags().String("symbol-writer", "", "Path of the debug symbol writer assembly")
	cmd.Flags().BoolP("symbols", "s", false, "Generate debug symbols alongside each image")
	cmd.Flags().Bool("overwrite", false, "Replace cache entries whose hash stamp disagrees")
	cmd.Flags().String("dotnet-root", "", "Dotnet installation root for portable applications")
	cmd.Flags().StringP("config", "c", "", "Path of the tool configuration file (defaults to aot.yaml)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
