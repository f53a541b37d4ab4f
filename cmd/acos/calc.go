package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/acos-calculator/internal/calculation"
	"github.com/rpgo/acos-calculator/internal/domain"
	"github.com/rpgo/acos-calculator/internal/output"
)

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var (
		spend   string
		divisor string
		sales   string
		revenue string
		format  string
		variant string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate ACoS from ad spend and ad sales/revenue",
		Example: `  acos calc --spend 300 --sales 1500
  acos calc --spend '$1,200' --revenue 9600 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			variants, err := cfg.BuildVariants()
			if err != nil {
				return err
			}

			name := variant
			if name == "" {
				name = cfg.DefaultVariant
				if cmd.Flags().Changed("revenue") {
					name = "revenue"
				}
			}
			v, ok := variants[name]
			if !ok {
				return fmt.Errorf("unknown variant %q", name)
			}

			raw := divisor
			switch {
			case cmd.Flags().Changed("sales"):
				raw = sales
			case cmd.Flags().Changed("revenue"):
				raw = revenue
			}

			report := &domain.Report{
				Variant:     v,
				Spend:       spend,
				Divisor:     raw,
				Calculation: calculation.Evaluate(spend, raw),
			}
			if err := output.GenerateReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			if !report.Calculation.Eligible {
				return calculation.ErrNotEligible
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&spend, "spend", "", "Ad spend, e.g. 300 or '$1,200.50'")
	cmd.Flags().StringVar(&divisor, "divisor", "", "Ad sales or revenue")
	cmd.Flags().StringVar(&sales, "sales", "", "Ad sales (alias of --divisor)")
	cmd.Flags().StringVar(&revenue, "revenue", "", "Ad revenue (alias of --divisor, selects the revenue variant)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, json, csv, html")
	cmd.Flags().StringVar(&variant, "variant", "", "Page variant used for labels")
	_ = cmd.MarkFlagRequired("spend")
	cmd.MarkFlagsMutuallyExclusive("divisor", "sales", "revenue")
	cmd.MarkFlagsOneRequired("divisor", "sales", "revenue")
	return cmd
}
