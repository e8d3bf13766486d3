package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/http/status"
	"github.com/indigo-web/txlog/scanner"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat [FILE]...",
	Short: "Summarize transactions by method, status and body framing",
	RunE: func(cmd *cobra.Command, args []string) error {
		var st stats

		skipped, err := scanInputs(args, func(s *scanner.Scanner) error {
			st.add(s.Transaction())
			return nil
		})
		if err != nil {
			return err
		}

		st.skipped = skipped
		return st.print()
	},
}

type stats struct {
	transactions int
	skipped      int
	bodyBytes    int
	chunked      int
	methods      map[string]int
	statuses     map[string]int
}

func (s *stats) add(tx http.Transaction) {
	if s.methods == nil {
		s.methods = make(map[string]int)
		s.statuses = make(map[string]int)
	}

	s.transactions++
	s.methods[tx.Request.Method.String()]++
	s.statuses[fmt.Sprintf("%dxx", status.Class(tx.Response.Code))]++

	for _, body := range []http.Body{tx.Request.Body, tx.Response.Body} {
		if body == nil {
			continue
		}

		s.bodyBytes += body.Len()
		if _, ok := body.(http.ChunkedBody); ok {
			s.chunked++
		}
	}
}

func (s *stats) print() error {
	w := tabwriter.NewWriter(outWriter, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "transactions\t%d\n", s.transactions)
	fmt.Fprintf(w, "skipped\t%d\n", s.skipped)
	fmt.Fprintf(w, "body bytes\t%d\n", s.bodyBytes)
	fmt.Fprintf(w, "chunked bodies\t%d\n", s.chunked)

	for _, key := range sortedKeys(s.methods) {
		fmt.Fprintf(w, "method %s\t%d\n", key, s.methods[key])
	}

	for _, key := range sortedKeys(s.statuses) {
		fmt.Fprintf(w, "status %s\t%d\n", key, s.statuses[key])
	}

	return w.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}
