package output

import (
	"fmt"
	"io"

	"contigmap/internal/contigs"
)

// WriteText writes contigs as TSV rows.
func WriteText(w io.Writer, list []contigs.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRows(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes TSV rows as contigs arrive on in.
func StreamText(w io.Writer, in <-chan contigs.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRows(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, r contigs.Result) error {
	for _, row := range FormatRowsTSV(r) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
