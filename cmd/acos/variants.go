package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVariantsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the page variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			variants, err := cfg.BuildVariants()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(variants))
			for name := range variants {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIVISOR\tORDER\tHELPER\tBREADCRUMBS")
			for _, name := range names {
				v := variants[name]
				marker := ""
				if name == cfg.DefaultVariant {
					marker = " *"
				}
				fmt.Fprintf(tw, "%s%s\t%s\t%s\t%t\t%t\n", name, marker, v.DivisorLabel,
					strings.Join(v.OrderNames(), ","), v.ShowHelperText, v.ShowBreadcrumbs)
			}
			return tw.Flush()
		},
	}
}
