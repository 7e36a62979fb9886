package domain

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport writes the grade of every student as a table, in the given order.
func WriteReport(w io.Writer, students []Student) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // padding

	fmt.Fprintln(tw, "ID\tName\tScore\tGrade")

	for _, s := range students {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", s.ID, s.FullName, s.Score, s.Grade())
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}
