package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect portfolio content files",
	}

	cmd.AddCommand(newContentValidateCmd())
	cmd.AddCommand(newContentDumpCmd())

	return cmd
}

func newContentValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Check a content file for syntax and validation errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d projects, %d notes, %d neurons)\n",
				args[0], len(c.Projects), len(c.Notes), len(c.Neurons))
			return nil
		},
	}
}

func newContentDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the built-in content as YAML",
		Long:  `Print the built-in content as YAML. Use it as a starting point for your own content file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return content.Dump(cmd.OutOrStdout(), content.Default())
		},
	}
}
