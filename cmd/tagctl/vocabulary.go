package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagsmith/internal/vocabulary"
)

func newVocabularyCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocabulary",
		Short: "Inspect or seed the generator vocabulary",
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective vocabulary as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := root.loadVocabulary(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			return vocabulary.Encode(cmd.OutOrStdout(), vocab)
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in vocabulary, plus any --vocabulary overlay, to Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.databaseURL == "" {
				return errors.New("seed needs --database-url or DATABASE_URL")
			}
			overlay, err := vocabulary.Resolve(cmd.Context(), root.vocabularyPath, nil)
			if err != nil {
				return err
			}
			return root.withStore(cmd.Context(), cmd, func(store *vocabulary.Store) error {
				n, err := store.Seed(cmd.Context(), overlay)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), success(fmt.Sprintf("seeded %d terms", n)))
				return nil
			})
		},
	}

	cmd.AddCommand(dump, seed)
	return cmd
}
