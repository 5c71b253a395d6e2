package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/declinatio/corpus"
)

// withOutput runs fn against the CSV file at path, or against stdout when
// path is empty.
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// loadTagger loads the name list at path; an empty path disables
// proper-noun filtering.
func loadTagger(path string) (corpus.Tagger, error) {
	if path == "" {
		return nil, nil
	}
	return corpus.LoadNameList(path)
}

func freqCmd() *cobra.Command {
	var (
		csvPath  string
		names    string
		splitQue bool
	)
	cmd := &cobra.Command{
		Use:   "freq <file.txt>",
		Short: "Count word forms in a Latin text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.ReadWork(args[0])
			if err != nil {
				return err
			}
			tagger, err := loadTagger(names)
			if err != nil {
				return err
			}
			forms := corpus.FilterTokens(corpus.Tokens(text), corpus.Options{Tagger: tagger, SplitQue: splitQue})
			freqs := corpus.Frequencies(forms)
			log.Info().
				Str("file", args[0]).
				Int("tokens", len(forms)).
				Int("forms", len(freqs)).
				Msg("frequencies computed")
			return withOutput(cmd, csvPath, func(w io.Writer) error {
				return corpus.WriteFrequenciesCSV(w, freqs)
			})
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the table to this CSV file instead of stdout")
	cmd.Flags().StringVar(&names, "names", "", "File listing proper nouns to ignore, one per line")
	cmd.Flags().BoolVar(&splitQue, "split-que", true, "Count the host word of an enclitic -que")
	return cmd
}

func lemmataCmd() *cobra.Command {
	var (
		csvPath string
		names   string
		lexPath string
	)
	cmd := &cobra.Command{
		Use:   "lemmata <file.txt>",
		Short: "List the distinct lemmata of a Latin text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.ReadWork(args[0])
			if err != nil {
				return err
			}
			tagger, err := loadTagger(names)
			if err != nil {
				return err
			}
			lex := corpus.NewLexicon(nil)
			if lexPath != "" {
				if lex, err = corpus.LoadLexicon(lexPath); err != nil {
					return err
				}
			} else {
				log.Warn().Msg("no lexicon given, every form is its own lemma")
			}
			lemmata := corpus.CompileLemmata(text, tagger, lex)
			log.Info().Str("file", args[0]).Int("lemmata", len(lemmata)).Msg("lemmata compiled")
			return withOutput(cmd, csvPath, func(w io.Writer) error {
				return corpus.WriteLemmataCSV(w, lemmata)
			})
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the list to this CSV file instead of stdout")
	cmd.Flags().StringVar(&names, "names", "", "File listing proper nouns to ignore, one per line")
	cmd.Flags().StringVar(&lexPath, "lexicon", "", "Lexicon file with form:lemma lines")
	return cmd
}
