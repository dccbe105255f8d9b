package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/recurse/nested"
	"github.com/katalvlaran/recurse/seq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) allCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all --pred P [X...]",
		Short: "Print whether predicate P holds for every integer X",
		Long: `Predicates: even, odd, positive, negative, nonzero, lt:N, gt:N.
Use -- before negative numbers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := parsePredicate(a.pred)
			if err != nil {
				return err
			}
			items, err := parseInts(args)
			if err != nil {
				return err
			}
			a.log.Debug("all", zap.String("pred", a.pred), zap.Int64s("items", items))
			ok, err := seq.All(items, pred, a.seqOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)

			return nil
		},
	}
	cmd.Flags().StringVarP(&a.pred, "pred", "p", "", "predicate to test (required)")
	_ = cmd.MarkFlagRequired("pred")
	cmd.Flags().BoolVar(&a.rejectEmpty, "reject-empty", false, "fail on an empty input instead of printing true")

	return cmd
}

func (a *app) productCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product [X...]",
		Short: "Print the product of the numbers X",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]float64, 0, len(args))
			for _, s := range args {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("parse number %q: %w", s, err)
				}
				items = append(items, f)
			}
			a.log.Debug("product", zap.Float64s("items", items))
			res, err := seq.Product(items, a.seqOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(res, 'g', -1, 64))

			return nil
		},
	}
	cmd.Flags().BoolVar(&a.rejectEmpty, "reject-empty", false, "fail on an empty input instead of printing 1")

	return cmd
}

func (a *app) replicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replicate COUNT VALUE",
		Short: "Print COUNT copies of VALUE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse count %q: %w", args[0], err)
			}
			value, err := nested.ParseScalar(args[1])
			if err != nil {
				return err
			}
			a.log.Debug("replicate", zap.Int("count", count), zap.Any("value", value))
			out, err := seq.Replicate(count, value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func (a *app) seqOptions() []seq.Option {
	if a.rejectEmpty {
		return []seq.Option{seq.WithRejectEmpty()}
	}

	return nil
}

func parseInts(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, s := range args {
		n, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
