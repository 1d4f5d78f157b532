package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/e11jah/rbt/ingredient"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of ingredients and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.loadBackend()
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), backend)
			return nil
		},
	}
}

func newCaloriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calories NAME",
		Short: "Print the calories per 100g of an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.loadBackend()
			if err != nil {
				return err
			}

			calories := backend.CalorieCount(args[0])
			if calories == ingredient.NotFound {
				return fmt.Errorf("ingredient %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d calories\n", args[0], calories)
			return nil
		},
	}
}

func newSubstitutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "substitutes NAME",
		Short: "List substitutes of the same category with slightly higher calories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.loadBackend()
			if err != nil {
				return err
			}
			printSubstitutes(cmd.OutOrStdout(), args[0], backend.NameSubstitutes(args[0]))
			return nil
		},
	}
}

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), ingredient.NewBackend(opts.config))
		},
	}
}

func printCounts(out io.Writer, backend *ingredient.Backend) {
	fmt.Fprintf(out, "%s ingredients, %s categories in the file\n",
		humanize.Comma(int64(backend.IngredientCount())),
		humanize.Comma(int64(backend.CategoryCount())))
}

func printSubstitutes(out io.Writer, name string, substitutes []*ingredient.Ingredient) {
	if len(substitutes) == 0 {
		fmt.Fprintf(out, "No replacements found for %s\n", name)
		return
	}
	fmt.Fprintf(out, "Replacements for %s:\n", name)
	for i, s := range substitutes {
		fmt.Fprintf(out, "Replacement %d: %s (%s, %d calories)\n", i+1, s.Name(), s.Category(), s.Calories())
	}
}
