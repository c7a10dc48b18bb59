package main

import (
	"fmt"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/spf13/cobra"
)

func periodsCmd() *cobra.Command {
	var (
		mode    string
		compare string
	)
	cmd := &cobra.Command{
		Use:   "periods PERIOD",
		Short: "Show the months a report covers and the months it is compared with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := entity.ParsePeriod(args[0])
			if err != nil {
				return err
			}
			cp := p.PrevYear()
			if compare != "" {
				if cp, err = entity.ParsePeriod(compare); err != nil {
					return err
				}
			}
			m := entity.ReportMode(strings.ToLower(mode))
			if !m.Valid() {
				return fmt.Errorf("unknown mode %q", mode)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "current:    %s\n", join(m.Periods(p)))
			fmt.Fprintf(out, "comparison: %s\n", join(m.Periods(cp)))
			fmt.Fprintf(out, "baseline:   %s\n", join(m.Periods(cp.PrevYear())))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(entity.ModeMonth), "month or ytd")
	cmd.Flags().StringVar(&compare, "compare", "", "comparison period, defaults to one year earlier")
	return cmd
}

func join(ps []entity.Period) string {
	s := make([]string, 0, len(ps))
	for _, p := range ps {
		s = append(s, p.String())
	}
	return strings.Join(s, " ")
}
