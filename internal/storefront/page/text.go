package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderText writes the page as a plain-text screen. Catalog rows are
// prefixed with the product id the console commands take.
func RenderText(w io.Writer, p Page) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, p.Title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(p.Title)))
	fmt.Fprintln(&buf)
	table(&buf, p.Catalog)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, CartHeading)
	fmt.Fprintln(&buf, strings.Repeat("-", len(CartHeading)))
	if p.Placeholder != "" {
		fmt.Fprintf(&buf, "  %s\n", p.Placeholder)
	} else {
		table(&buf, p.Cart)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total: %s\n", p.Total)

	if p.Dialog.Open {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "[ %s ]\n", p.Dialog.Message)
		if len(p.Dialog.Summary) > 0 {
			tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
			for _, l := range p.Dialog.Summary {
				fmt.Fprintf(tw, "  %s\t%d x %s\t%s\t\n", l.Name, l.Quantity, l.UnitPrice, l.LineTotal)
			}
			fmt.Fprintf(tw, "  Total\t\t%s\t\n", p.Dialog.Total)
			_ = tw.Flush()
		}
		fmt.Fprintln(&buf, `  type "close" to dismiss`)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func table(buf *bytes.Buffer, rows []Row) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.ProductID, r.Name, r.Price)
	}
	_ = tw.Flush()
}
