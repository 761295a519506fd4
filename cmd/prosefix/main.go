// Command prosefix corrects text via an analysis backend or an offline edit
// batch, serves the correction REST API, and inspects language spans.
//
// Usage:
//
//	echo "Teh dog dont bark" | prosefix check
//	prosefix check -f draft.txt --mode openai
//	prosefix check --edits edits.json -f draft.txt
//	prosefix serve -p 8080
//	prosefix langs "Hola amigo, how are you?"
package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prosefix/prosefix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prosefix",
	Short: "Text correction engine and server",
	Long:  "prosefix merges provider-supplied correction edits into corrected text and a normalized issue list.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(langsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readText resolves the input text: file flag, then args, then stdin.
func readText(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		return string(data), err
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}
