package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devswiss/pkg/password"
)

var (
	pwLength           int
	pwNoUppercase      bool
	pwNoLowercase      bool
	pwNoNumbers        bool
	pwNoSymbols        bool
	pwExcludeAmbiguous bool
	pwExclude          string
	pwCount            int
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate secure random passwords",
	RunE:  runPassword,
}

func init() {
	f := passwordCmd.Flags()
	f.IntVarP(&pwLength, "length", "l", password.DefaultLength, "password length")
	f.BoolVar(&pwNoUppercase, "no-uppercase", false, "exclude uppercase letters")
	f.BoolVar(&pwNoLowercase, "no-lowercase", false, "exclude lowercase letters")
	f.BoolVar(&pwNoNumbers, "no-numbers", false, "exclude numbers")
	f.BoolVar(&pwNoSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVar(&pwExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (0O1lI)")
	f.StringVar(&pwExclude, "exclude", "", "characters to exclude")
	f.IntVarP(&pwCount, "count", "n", 1, "number of passwords to generate")
	rootCmd.AddCommand(passwordCmd)
}

func runPassword(cmd *cobra.Command, _ []string) error {
	var opts []password.Option
	if pwNoUppercase {
		opts = append(opts, password.WithoutUppercase())
	}
	if pwNoLowercase {
		opts = append(opts, password.WithoutLowercase())
	}
	if pwNoNumbers {
		opts = append(opts, password.WithoutDigits())
	}
	if pwNoSymbols {
		opts = append(opts, password.WithoutSymbols())
	}
	if pwExcludeAmbiguous {
		opts = append(opts, password.WithoutAmbiguous())
	}
	if pwExclude != "" {
		opts = append(opts, password.WithExcluded(pwExclude))
	}

	for i := 0; i < pwCount; i++ {
		pw, err := password.Generate(pwLength, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pw)
	}
	return nil
}
