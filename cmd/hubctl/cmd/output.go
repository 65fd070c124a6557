package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nuvias-uc/hubctl/internal/hub"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printUserDetail(out io.Writer, u *hub.User) error {
	tw := newTabWriter(out)
	tw.writef("ID:\t%d\n", u.ID)
	tw.writef("Name:\t%s\n", u.Name)
	tw.writef("Organisation:\t%d\n", u.Organisation)
	tw.writef("Currency:\t%d\n", u.Currency)
	tw.writef("Locale:\t%s\n", u.Locale)
	tw.writef("Timezone:\t%s\n", u.Timezone)
	return tw.finish()
}

func printShippingTypesTable(out io.Writer, shipTypes []hub.ShippingType) error {
	tw := newTabWriter(out)
	tw.writef("ID\tNAME\tCOUNTRIES\n")
	for i := range shipTypes {
		tw.writef("%d\t%s\t%s\n",
			shipTypes[i].ID,
			shipTypes[i].Name,
			formatCountryList(&shipTypes[i]),
		)
	}
	return tw.finish()
}

func formatCountryList(st *hub.ShippingType) string {
	if len(st.Countries) == 0 {
		return "all"
	}
	ids := make([]string, len(st.Countries))
	for i, id := range st.Countries {
		ids[i] = strconv.Itoa(id)
	}
	list := strings.Join(ids, ",")
	if st.ExcludeCountries {
		return "all except " + list
	}
	return list
}

func printBasketDetail(out io.Writer, b *hub.Basket) error {
	tw := newTabWriter(out)
	tw.writef("ID:\t%d\n", b.ID)
	if b.Name != "" {
		tw.writef("Name:\t%s\n", b.Name)
	}
	tw.writef("URL:\t%s\n", b.URL)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
