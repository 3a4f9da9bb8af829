package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tagsmith/internal/infra"
	"tagsmith/internal/tagger"
	"tagsmith/internal/vocabulary"
)

type rootOptions struct {
	vocabularyPath string
	databaseURL    string
	noColor        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "tagctl",
		Short:         "Generate marketplace listing tags from a product description",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if opts.vocabularyPath == "" {
				opts.vocabularyPath = os.Getenv("VOCABULARY_PATH")
			}
			if opts.databaseURL == "" {
				opts.databaseURL = os.Getenv("DATABASE_URL")
			}
			if opts.noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.vocabularyPath, "vocabulary", "", "YAML vocabulary overlay (default $VOCABULARY_PATH)")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "read vocabulary terms from Postgres (default $DATABASE_URL)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newCategoriesCmd(opts),
		newVocabularyCmd(opts),
	)
	return cmd
}

// withStore opens the vocabulary store when a database URL is configured.
// The returned store is nil otherwise.
func (o *rootOptions) withStore(ctx context.Context, cmd *cobra.Command, fn func(*vocabulary.Store) error) error {
	if o.databaseURL == "" {
		return fn(nil)
	}
	pool, err := infra.NewDBPool(ctx, &infra.Config{DatabaseURL: o.databaseURL})
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(vocabulary.NewStore(infra.NewSQLRunner(pool, o.logger(cmd))))
}

func (o *rootOptions) loadVocabulary(ctx context.Context, cmd *cobra.Command) (tagger.Vocabulary, error) {
	var v tagger.Vocabulary
	err := o.withStore(ctx, cmd, func(store *vocabulary.Store) error {
		var err error
		v, err = vocabulary.Resolve(ctx, o.vocabularyPath, store)
		return err
	})
	return v, err
}

func (o *rootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()
}
