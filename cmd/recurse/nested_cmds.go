package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/recurse/nested"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoDocument = errors.New("no document: use --data, --file or stdin")

func (a *app) containsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contains VALUE",
		Short: "Print whether any leaf of the document equals VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := nested.ParseScalar(args[0])
			if err != nil {
				return err
			}
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			tree, err := nested.ParseTree(doc)
			if err != nil {
				return err
			}
			a.log.Debug("contains", zap.Any("target", target), zap.Int("bytes", len(doc)))
			found, err := nested.Contains(tree, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)

			return nil
		},
	}
	a.addDocumentFlags(cmd)

	return cmd
}

func (a *app) totalIntegersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-integers",
		Short: "Print the number of whole-number leaves of a nested list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(cmd)
			if err != nil {
				return err
			}
			n, err := nested.TotalIntegers(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
	a.addDocumentFlags(cmd)

	return cmd
}

func (a *app) sumSquaresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum-squares",
		Short: "Print the sum of squares of the numeric leaves of a nested list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(cmd)
			if err != nil {
				return err
			}
			s, err := nested.SumSquares(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(s, 'g', -1, 64))

			return nil
		},
	}
	a.addDocumentFlags(cmd)

	return cmd
}

func (a *app) addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.data, "data", "d", "", "inline YAML/JSON document")
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "path to a YAML/JSON document")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
}

// document returns --data, the contents of --file, or stdin, in that order.
func (a *app) document(cmd *cobra.Command) ([]byte, error) {
	switch {
	case a.data != "":
		return []byte(a.data), nil
	case a.file != "":
		b, err := os.ReadFile(a.file)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}

		return b, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(b) == 0 {
		return nil, errNoDocument
	}

	return b, nil
}

func (a *app) value(cmd *cobra.Command) (nested.Value, error) {
	doc, err := a.document(cmd)
	if err != nil {
		return nil, err
	}
	a.log.Debug("decode value", zap.String("cmd", cmd.Name()), zap.Int("bytes", len(doc)))

	return nested.ParseValue(doc)
}
