package cli

import (
	"github.com/spf13/cobra"

	"github.com/hightemp/codeconv/internal/languages"
	"github.com/hightemp/codeconv/internal/output"
)

const languageTable = "language"

func (a *app) languageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "language",
		Short: "Look up ISO-639 language codes and names",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "name [code]",
		Short: "Print the language name for a code (case-sensitive)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.languages()
			if err != nil {
				return err
			}
			return a.runLookup(cmd, args, func(q string) *output.Result {
				name, ok := t.Name(q)
				return &output.Result{Table: languageTable, Kind: "name", Query: q, Value: name, Found: ok}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "code [name...]",
		Short: "Print the code for a language name",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.languages()
			if err != nil {
				return err
			}
			return a.runLookup(cmd, args, func(q string) *output.Result {
				code, ok := t.Code(q)
				return &output.Result{Table: languageTable, Kind: "code", Query: q, Value: code, Found: ok}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of languages in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.languages()
			if err != nil {
				return err
			}
			return a.printCount(cmd, languageTable, t.Count())
		},
	})

	return cmd
}

func (a *app) languages() (*languages.Table, error) {
	var (
		t   *languages.Table
		err error
	)
	if a.cfg.LanguageFile == "" {
		t, err = languages.Embedded(languages.WithLogger(a.log))
	} else {
		t, err = languages.LoadFile(a.cfg.LanguageFile, languages.WithLogger(a.log))
	}
	if err != nil {
		return nil, &exitError{code: ExitLoadFailed, err: err}
	}
	return t, nil
}
