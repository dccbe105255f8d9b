package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/recurse/arith"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) sumRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum-range N",
		Short: "Print 1 + 2 + … + N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("sum-range", zap.Int64("n", n))
			res, err := arith.SumRange(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func (a *app) powerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power BASE EXP",
		Short: "Print BASE raised to EXP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseInt(args[0])
			if err != nil {
				return err
			}
			exp, err := parseInt(args[1])
			if err != nil {
				return err
			}
			a.log.Debug("power", zap.Int64("base", base), zap.Int64("exp", exp))
			res, err := arith.Power(base, exp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func (a *app) factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Print N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("factorial", zap.Int64("n", n))
			res, err := arith.Factorial(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}

	return n, nil
}
