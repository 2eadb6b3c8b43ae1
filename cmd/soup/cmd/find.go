package cmd

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-soup/soup"
	"github.com/spf13/cobra"
)

var findBreadthFirst bool

var findCmd = &cobra.Command{
	Use:   "find [file] [tag-name]",
	Short: "Parse a document and print every tag matching a name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "soup: %v\n", err)
			os.Exit(1)
		}

		root := soup.Parse(string(data), soup.WithLogger(newLogger()))

		var matches []*soup.Tag
		if findBreadthFirst {
			matches = root.Findb(args[1])
		} else {
			matches = root.Find(args[1])
		}

		for _, m := range matches {
			fmt.Println(m.ToString())
		}
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().BoolVar(&findBreadthFirst, "breadth-first", false, "traverse breadth-first instead of depth-first")
}
