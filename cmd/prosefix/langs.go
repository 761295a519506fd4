package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prosefix/prosefix/internal/lang"
	"github.com/prosefix/prosefix/internal/util"
)

var langsCmd = &cobra.Command{
	Use:   "langs [flags] [text]",
	Short: "Detect language spans in text",
	Long:  "Segments text into Unicode-script runs and prints a language guess per run.",
	RunE:  runLangs,
}

func init() {
	langsCmd.Flags().StringP("file", "f", "", "read text from a file instead of args/stdin")
	langsCmd.Flags().Bool("json", false, "print the raw JSON spans")
}

func runLangs(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	text, err := readText(file, args)
	if err != nil {
		return err
	}

	spans := lang.Spans(text)
	if jsonOut {
		out, _ := util.MarshalNoEscape(spans, true)
		fmt.Println(string(out))
		return nil
	}

	cyan := color.New(color.FgCyan)
	bold := color.New(color.Bold)
	runes := []rune(text)
	for _, sp := range spans {
		snippet := string(runes[sp.Start:sp.End])
		if len([]rune(snippet)) > 40 {
			snippet = string([]rune(snippet)[:40]) + "…"
		}
		fmt.Printf("%4d-%-4d %-12s %-5s %.2f  %q\n",
			sp.Start, sp.End, cyan.Sprint(sp.Script), bold.Sprint(sp.Lang), sp.Confidence, snippet)
	}
	fmt.Printf("dominant: %s\n", bold.Sprint(lang.Dominant(text)))
	return nil
}
