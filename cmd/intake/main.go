// Command intake is the schema-document toolchain for the questionnaire
// engine: it lints schema files (structure, duplicate fields, dangling
// parents, dependency cycles) and lists the fields a document declares.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	intake "github.com/StanfordCorporation/intake-engine"
)

func main() {
	root := &cobra.Command{
		Use:           "intake",
		Short:         "Inspect questionnaire schema documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLintCmd(), newFieldsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "intake:", err)
		os.Exit(1)
	}
}

func newLintCmd() *cobra.Command {
	var legacyVisible bool
	cmd := &cobra.Command{
		Use:   "lint <schema.(json|yaml)>",
		Short: "Validate a schema document and its dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadIndex(args[0], legacyVisible)
			if err != nil {
				if se, ok := intake.AsSchemaError(err); ok {
					for _, it := range se.Issues {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", it.Code, it.Field, it.Message)
					}
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d sections, %d fields, %d conditional\n",
				len(idx.Sections()), idx.Len(), len(idx.Graph().Edges()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacyVisible, "legacy-visible", false,
		"treat a missing dependsOn parent as always visible instead of an error")
	return cmd
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <schema.(json|yaml)>",
		Short: "List sections and fields with their conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadIndex(args[0], false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, sec := range idx.Sections() {
				fmt.Fprintf(out, "section %d\n", sec)
				for _, field := range idx.SectionFields(sec) {
					q, _ := idx.Question(field)
					line := fmt.Sprintf("  %s (%s)", field, q.Type)
					if q.Required {
						line += " required"
					}
					if e, ok := idx.Graph().Edge(field); ok {
						line += fmt.Sprintf(" when %s=%s", e.Parent, e.RequiredValue)
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
}

func loadIndex(path string, legacyVisible bool) (*intake.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sch *intake.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sch, err = intake.LoadYAML(data)
	default:
		sch, err = intake.LoadJSON(data)
	}
	if err != nil {
		return nil, err
	}
	var opts []intake.IndexOption
	if legacyVisible {
		opts = append(opts, intake.WithMissingParentPolicy(intake.MissingParentVisible))
	}
	return intake.BuildIndex(sch, opts...)
}
