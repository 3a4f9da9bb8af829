package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tagsmith/internal/domain"
	"tagsmith/internal/export"
	"tagsmith/internal/tagger"
)

type generateOptions struct {
	category    string
	style       string
	maxTags     int
	maxWords    int
	format      string
	shareBase   string
	explain     bool
	scorePolicy string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [description]",
		Short: "Generate tags for a product description",
		Long: `Generate tags for a product description. The description is taken from the
arguments, or from standard input when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read description: %w", err)
				}
				description = string(raw)
			}

			req := domain.GenerationRequest{
				Description:    description,
				Category:       opts.category,
				Style:          opts.style,
				MaxTags:        &opts.maxTags,
				MaxWordsPerTag: &opts.maxWords,
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			vocab, err := root.loadVocabulary(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			tuning := tagger.DefaultOptions()
			if tuning.Score, err = tagger.ParseScorePolicy(opts.scorePolicy); err != nil {
				return err
			}
			res, err := tagger.New(vocab, tuning).Generate(req.Input())
			if err != nil {
				return err
			}

			var shareURL string
			if opts.shareBase != "" {
				if shareURL, err = export.ShareURL(opts.shareBase, req); err != nil {
					return err
				}
			}
			return writeResult(cmd.OutOrStdout(), opts, res, shareURL)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.category, "category", "c", "", "product category, e.g. home_decor")
	f.StringVarP(&opts.style, "style", "s", "", "product style, e.g. minimalist")
	f.IntVarP(&opts.maxTags, "max-tags", "n", domain.DefaultMaxTags, "maximum number of tags (1-300)")
	f.IntVarP(&opts.maxWords, "max-words", "w", domain.DefaultMaxWordsPerTag, "maximum words per tag (1-5)")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, json, csv or copy")
	f.StringVar(&opts.shareBase, "share-base", "", "print a shareable link rooted at this URL")
	f.BoolVar(&opts.explain, "explain", false, "show weight and source for each tag")
	f.StringVar(&opts.scorePolicy, "score-policy", "fixed", "relevance score policy: fixed or composite")
	return cmd
}

type jsonOutput struct {
	tagger.Result
	Share       string           `json:"share,omitempty"`
	Explanation []explainedTag `json:"explanation,omitempty"`
}

type explainedTag struct {
	Tag    string  `json:"tag"`
	Weight float64 `json:"weight"`
	Source string  `json:"source"`
}

var errUnknownFormat = errors.New("unknown format")

func writeResult(w io.Writer, opts *generateOptions, res tagger.Result, shareURL string) error {
	switch opts.format {
	case "json":
		out := jsonOutput{Result: res, Share: shareURL}
		if opts.explain {
			for _, c := range res.Ranked {
				out.Explanation = append(out.Explanation, explainedTag{Tag: c.Text, Weight: c.Weight, Source: string(c.Source)})
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "csv":
		body, err := export.CSV(res.Tags)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, body)
		return err
	case "copy":
		_, err := fmt.Fprintln(w, export.CopyAll(res.Tags))
		return err
	case "text":
		for i, c := range res.Ranked {
			line := fmt.Sprintf("%3d. %s", i+1, bold(c.Text))
			if opts.explain {
				line += faint(fmt.Sprintf("  %.2f %s", c.Weight, c.Source))
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w, success(fmt.Sprintf("%d of %d tags, relevance %d", len(res.Tags), res.TotalFilteredTags, res.RelevanceScore)))
		if shareURL != "" {
			fmt.Fprintln(w, "share: "+cyan(shareURL))
		}
		return nil
	default:
		return fmt.Errorf("%w %q (want text, json, csv or copy)", errUnknownFormat, opts.format)
	}
}
