package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arturoeanton/go-soup/soup"
	"github.com/spf13/cobra"
)

var (
	strictParams bool
	pretty       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a document and print it back out",
	Long:  `Parse reads a file (or stdin if no file is given), builds the tag tree, and re-serializes it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "soup: %v\n", err)
			os.Exit(1)
		}

		opts := []soup.Option{soup.WithLogger(newLogger())}
		if strictParams {
			opts = append(opts, soup.WithStrictParameters())
		}

		root := soup.Parse(string(data), opts...)
		if pretty {
			fmt.Print(root.Prettify(0))
			return
		}
		fmt.Println(root.ToString())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&strictParams, "strict-parameters", false, "disable case-insensitive attribute lookup")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "indent output two spaces per nesting level")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
