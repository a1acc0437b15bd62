package cli

import (
	"github.com/spf13/cobra"

	"github.com/hightemp/codeconv/internal/countries"
	"github.com/hightemp/codeconv/internal/output"
)

const countryTable = "country"

func (a *app) countryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "country",
		Short: "Look up ISO-3166 country codes and names",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "name [code]",
		Short: "Print the country name for an alpha-2 or alpha-3 code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.countries()
			if err != nil {
				return err
			}
			return a.runLookup(cmd, args, func(q string) *output.Result {
				name, ok := t.Name(q)
				r := &output.Result{Table: countryTable, Kind: "name", Query: q, Value: name, Found: ok}
				if !ok {
					r.Message = countries.NameNotFound(q)
				}
				return r
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "code [name...]",
		Short: "Print the alpha-2 code for a country name",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.countries()
			if err != nil {
				return err
			}
			return a.runLookup(cmd, args, func(q string) *output.Result {
				code, ok := t.Code(q)
				r := &output.Result{Table: countryTable, Kind: "code", Query: q, Value: code, Found: ok}
				if !ok {
					r.Message = countries.CodeNotFound(q)
				}
				return r
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of countries in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.countries()
			if err != nil {
				return err
			}
			return a.printCount(cmd, countryTable, t.Count())
		},
	})

	return cmd
}

func (a *app) countries() (*countries.Table, error) {
	var (
		t   *countries.Table
		err error
	)
	if a.cfg.CountryFile == "" {
		t, err = countries.Embedded(countries.WithLogger(a.log))
	} else {
		t, err = countries.LoadFile(a.cfg.CountryFile, countries.WithLogger(a.log))
	}
	if err != nil {
		return nil, &exitError{code: ExitLoadFailed, err: err}
	}
	return t, nil
}
