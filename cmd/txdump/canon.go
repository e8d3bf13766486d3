package main

import (
	"github.com/indigo-web/txlog"
	"github.com/indigo-web/txlog/scanner"
	"github.com/spf13/cobra"
)

var canonCmd = &cobra.Command{
	Use:   "canon [FILE]...",
	Short: "Re-encode transactions in the canonical form",
	Long: "Re-encode transactions with single spaces and CRLF line terminators. Malformed " +
		"transactions are either fatal or, with --recover, dropped from the output.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			codec = txlog.New(nil)
			buff  []byte
		)

		_, err := scanInputs(args, func(s *scanner.Scanner) error {
			buff = codec.AppendTransaction(buff[:0], s.Transaction())
			_, err := outWriter.Write(buff)
			return err
		})

		return err
	},
}
