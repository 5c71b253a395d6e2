package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/declinatio"
)

func declineCmd() *cobra.Command {
	var (
		gender  string
		asJSON  bool
		endings bool
	)
	cmd := &cobra.Command{
		Use:   "decline <stem>",
		Short: "Print the singular paradigm of a stem",
		Example: `  declinare decline mīlet
  declinare decline puero --gender m --endings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := declinatio.ParseGender(gender)
			if err != nil {
				return err
			}
			noun, err := declinatio.NewNoun(args[0], g)
			if err != nil {
				return err
			}
			p := declinatio.NewParadigm(noun)
			if asJSON {
				return writeParadigmJSON(cmd.OutOrStdout(), p)
			}
			return writeParadigm(cmd.OutOrStdout(), p, endings)
		},
	}
	cmd.Flags().StringVarP(&gender, "gender", "g", "f", "Grammatical gender (m, f, n)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the paradigm as JSON")
	cmd.Flags().BoolVar(&endings, "endings", false, "Also print the result of every ending operation")
	return cmd
}

func endingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ending <name> <stem>",
		Short: "Apply a single ending operation (s, m, ei, ns, sum, e, is, eis, ibus, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := declinatio.ParseEnding(args[0])
			if err != nil {
				return err
			}
			noun, err := declinatio.NewNoun(args[1], declinatio.Feminine)
			if err != nil {
				return err
			}
			form, err := noun.Apply(e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		},
	}
}

// cellText renders a paradigm cell, naming the gap when there is no form.
func cellText(f declinatio.Form) string {
	if f.Outcome == declinatio.OutcomeOK {
		return f.Value
	}
	return "(" + string(f.Outcome) + ")"
}

func writeParadigm(w io.Writer, p *declinatio.Paradigm, withEndings bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", p.Noun.Stem, p.Noun.Gender)
	for _, c := range declinatio.Cases {
		fmt.Fprintf(tw, "%s\t%s\n", c.Abbrev(), cellText(p.Form(c)))
	}
	if withEndings {
		fmt.Fprintln(tw)
		for _, e := range declinatio.Endings {
			fmt.Fprintf(tw, "+%s\t%s\n", e, cellText(p.Endings[e]))
		}
	}
	return tw.Flush()
}

type paradigmJSON struct {
	Stem    string            `json:"stem"`
	Gender  string            `json:"gender"`
	Cases   map[string]string `json:"cases"`
	Gaps    map[string]string `json:"gaps,omitempty"`
	Endings map[string]string `json:"endings,omitempty"`
}

func writeParadigmJSON(w io.Writer, p *declinatio.Paradigm) error {
	out := paradigmJSON{
		Stem:    p.Noun.Stem.String(),
		Gender:  p.Noun.Gender.String(),
		Cases:   make(map[string]string),
		Gaps:    make(map[string]string),
		Endings: make(map[string]string),
	}
	for _, c := range declinatio.Cases {
		f := p.Form(c)
		if f.Outcome == declinatio.OutcomeOK {
			out.Cases[c.String()] = f.Value
		} else {
			out.Gaps[c.String()] = string(f.Outcome)
		}
	}
	for _, e := range declinatio.Endings {
		if f := p.Endings[e]; !errors.Is(f.Err, declinatio.ErrUnimplemented) {
			out.Endings[string(e)] = cellText(f)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
