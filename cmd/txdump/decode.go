package main

import (
	"fmt"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/indigo-web/txlog/format"
	"github.com/indigo-web/txlog/scanner"
	"github.com/spf13/cobra"
)

var pretty bool

func init() {
	decodeCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Colored and indented output")
}

var decodeCmd = &cobra.Command{
	Use:   "decode [FILE]...",
	Short: "Print transactions as JSON lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := scanInputs(args, func(s *scanner.Scanner) error {
			if !pretty {
				return format.Write(outWriter, s.Transaction())
			}

			data, err := format.JSON(s.Transaction(), false)
			if err != nil {
				return err
			}

			colored, err := prettyjson.Format(data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(colorableOut, string(colored))
			return err
		})

		return err
	},
}
