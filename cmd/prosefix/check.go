package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prosefix/prosefix/internal/config"
	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/util"
	"github.com/prosefix/prosefix/prosefix"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [text]",
	Short: "Check text and print corrections",
	Long:  "Reads text from args, --file, or stdin, runs it through the configured backend (or an offline edit batch), and prints the issues and the corrected text.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringP("file", "f", "", "read text from a file instead of args/stdin")
	checkCmd.Flags().String("edits", "", "JSON edit batch file; runs the merge engine offline, no backend")
	checkCmd.Flags().String("mode", "", "backend: languagetool | openai | anthropic (default from config)")
	checkCmd.Flags().StringP("dict", "d", "", "user dictionary JSON file (protected words)")
	checkCmd.Flags().DurationP("timeout", "t", 60*time.Second, "overall timeout")
	checkCmd.Flags().Bool("json", false, "print the raw JSON result")
}

func runCheck(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	editsPath, err := cmd.Flags().GetString("edits")
	if err != nil {
		return err
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}
	dictPath, err := cmd.Flags().GetString("dict")
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
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

	var res *model.Result

	if editsPath != "" {
		// Offline: the batch's offsets refer to the text exactly as read.
		data, err := os.ReadFile(editsPath)
		if err != nil {
			return err
		}
		res, err = prosefix.MergeBatch(text, data)
		if err != nil {
			return err
		}
	} else {
		cfg := config.Load()
		if mode != "" {
			cfg.Mode = mode
		}
		backend, err := newBackend(cfg)
		if err != nil {
			return err
		}

		var dict *prosefix.Dict
		if dictPath != "" {
			if dict, err = prosefix.LoadDict(dictPath); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if dict != nil {
			res, err = prosefix.CorrectWithDict(ctx, text, backend, dict)
		} else {
			res, err = prosefix.Correct(ctx, text, backend)
		}
		if err != nil {
			return err
		}
	}

	if jsonOut {
		out, _ := util.MarshalNoEscape(res, true)
		fmt.Println(string(out))
		return nil
	}
	printReport(res)
	return nil
}

func printReport(res *model.Result) {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	if len(res.Issues) == 0 {
		fmt.Println("no issues found")
	}
	for i, issue := range res.Issues {
		fmt.Printf("%2d. %s  %s\n", i+1, red.Sprint(issue.Wrong), issue.Reason)
	}

	fmt.Printf("\n%s\n", green.Sprint(res.Corrected))
	fmt.Printf("%d issue(s), %d applied, edit distance %d\n",
		len(res.Issues), res.AppliedCount, res.EditDistance)

	if n := len(res.Dropped); n > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d invalid edit(s) dropped\n", n)
	}
}
