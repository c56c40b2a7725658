package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sweeper/internal/category"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [name]",
		Short: "Show the active classification catalog, or a single category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			cats := catalog.Categories()
			if len(args) == 1 {
				cat, ok := catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("no category named %q (see `sweeper categories`)", args[0])
				}
				cats = []category.Category{cat}
			}

			extensionsByName := make(map[string][]string, len(cfg.Categories))
			for _, entry := range cfg.Categories {
				extensionsByName[entry.Name] = entry.Extensions
			}

			rows := make([][]string, 0, len(cats))
			for _, cat := range cats {
				exts := extensionsByName[cat.Name]
				label := ""
				switch {
				case cat.Name == "Others":
					label = "(everything else)"
				case len(exts) > 0:
					label = joinLimited(exts, 8)
				}
				color := cat.Decoration.Color
				rows = append(rows, []string{
					cat.Name,
					label,
					strconv.Itoa(cat.Decoration.IconIndex),
					fmt.Sprintf("%d %d %d", color[0], color[1], color[2]),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Category", "Extensions", "Icon", "Color"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func joinLimited(items []string, max int) string {
	if len(items) <= max {
		out := ""
		for i, item := range items {
			if i > 0 {
				out += " "
			}
			out += item
		}
		return out
	}
	out := joinLimited(items[:max], max)
	return fmt.Sprintf("%s +%d more", out, len(items)-max)
}
