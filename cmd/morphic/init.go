package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morphic-dev/morphic/internal/config"
	"github.com/morphic-dev/morphic/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		name         string
		templateName string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new morphic project",
		Long: `Scaffold a new morphic project from a template.

Available templates: ` + strings.Join(templates.List(), ", ") + `

Examples:
  morphic init
  morphic init ./myapp --name myapp
  morphic init ./myapp --template minimal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			if name == "" {
				abs, err := filepath.Abs(dir)
				if err != nil {
					return err
				}
				name = filepath.Base(abs)
			}

			tmpl, err := templates.Get(templateName)
			if err != nil {
				return err
			}
			if err := tmpl.Create(dir, templates.Config{
				ProjectName: name,
				ModulePath:  name,
				Port:        config.DefaultPort,
			}); err != nil {
				return err
			}

			success("created %s project in %s", tmpl.Name, dir)
			info("next: cd %s && go mod tidy && go run .", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().StringVarP(&templateName, "template", "t", "counter", "Project template")

	return cmd
}
