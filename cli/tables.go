package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mortgage-affordability/tables"
)

func tablesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tables",
		Short: "Inspect and validate rate tables",
	}
	c.AddCommand(tablesValidateCmd(), tablesShowCmd())
	return c
}

func tablesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a YAML rate table override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := tables.LoadFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func tablesShowCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the effective rate tables as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadTables(file)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(tables.Export(set)); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML override to merge onto the defaults")
	return c
}
