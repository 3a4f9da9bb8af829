package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tagsmith/internal/tagger"
)

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known categories and their template tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := root.loadVocabulary(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range vocab.CategoryNames() {
				fmt.Fprintf(w, "%s %s\n", bold(name), faint("("+tagger.CategoryLabel(name)+")"))
				if templates := vocab.Templates(name); len(templates) > 0 {
					fmt.Fprintf(w, "    %s\n", strings.Join(templates, ", "))
				}
			}
			return nil
		},
	}
}
