package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"entitygen/internal/codegen"
	"entitygen/internal/config"
	"entitygen/internal/render"
	"entitygen/internal/schema"
)

// loadConfig resolves the effective configuration: the config file if given,
// defaults otherwise, with set flags taking precedence.
func loadConfig(cmd *cobra.Command, configPath string, flags *config.Config) (*config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg = *loaded
	}

	if cmd.Flags().Changed("schema") {
		cfg.Schema = flags.Schema
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = flags.Output
	}

	if cmd.Flags().Changed("package") {
		cfg.Package = flags.Package
	}

	if cmd.Flags().Changed("store-import") {
		cfg.StoreImport = flags.StoreImport
	}

	return &cfg, nil
}

func addConfigFlags(cmd *cobra.Command, configPath *string, flags *config.Config) {
	cmd.Flags().StringVarP(configPath, "config", "c", "", "path of the YAML config file")
	cmd.Flags().StringVar(&flags.Schema, "schema", "", "path of the SDL schema file")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output directory for generated files")
	cmd.Flags().StringVarP(&flags.Package, "package", "p", "", "package name of the generated files")
	cmd.Flags().StringVar(&flags.StoreImport, "store-import", "", "import path of the store runtime")
}

// generate runs the schema-to-classes pass and prints warnings.
func generate(cfg *config.Config) (*codegen.Result, error) {
	doc, err := schema.ParseFile(cfg.Schema)
	if err != nil {
		return nil, err
	}

	res, err := codegen.Generate(doc)
	if err != nil {
		return nil, err
	}

	for _, w := range res.Diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	return res, nil
}

func newGenCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Config
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate entity wrapper source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath, &flags)
			if err != nil {
				return err
			}

			res, err := generate(cfg)
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.Options{
				PackageName: cfg.Package,
				StoreImport: cfg.StoreImport,
				OutputDir:   cfg.Output,
			})

			files, err := r.Render(res.Classes)
			if err != nil {
				return err
			}

			if err := render.WriteFiles(files, cfg.Output); err != nil {
				return err
			}

			fmt.Printf("generated %d entity type(s) in %s\n", len(res.Classes), cfg.Output)

			return nil
		},
	}

	addConfigFlags(cmd, &configPath, &flags)

	return cmd
}

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Config
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the schema against the generator without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath, &flags)
			if err != nil {
				return err
			}

			res, err := generate(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("%d entity type(s), %d warning(s)\n",
				len(res.Classes), len(res.Diags.Warnings))

			return nil
		},
	}

	addConfigFlags(cmd, &configPath, &flags)

	return cmd
}
