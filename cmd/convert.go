package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devswiss/pkg/convert"
)

var (
	convInput  string
	convOutput string
	convFrom   string
	convTo     string
	convForce  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert files between formats",
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convInput, "input", "i", "", "input file path")
	f.StringVarP(&convOutput, "output", "o", "", "output file path")
	f.StringVar(&convFrom, "from", "pdf", "input format")
	f.StringVar(&convTo, "to", "docx", "output format")
	f.BoolVar(&convForce, "force", false, "overwrite existing output file")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	from, err := convert.ParseFormat(convFrom)
	if err != nil {
		return err
	}
	to, err := convert.ParseFormat(convTo)
	if err != nil {
		return err
	}

	result, err := convert.Convert(convert.Options{
		InputPath:  convInput,
		OutputPath: convOutput,
		From:       from,
		To:         to,
		Force:      convForce,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d page(s) to %s\n", result.Pages, convOutput)
	return nil
}
