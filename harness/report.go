package harness

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, f Format) error {
	if f == FormatText {
		return r.writeText(w)
	}
	c, ok := CodecByName(f)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	b, err := c.Marshal(r)
	if err != nil {
		return fmt.Errorf("harness: encode %s: %w", c.Name(), err)
	}
	_, err = w.Write(b)
	return err
}

// writeText renders an aligned table, one row per result.
func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\tseed %d\tworkers %d\n", r.RunID, r.Seed, r.Workers)
	fmt.Fprintln(tw, "KIND\tALGORITHM\tSHAPE\tN\tMEAN\tMIN\tMAX\tCMP/HITS")
	for _, res := range r.Results {
		extra := res.Comparisons
		if res.Kind == KindSearch {
			extra = int64(res.Hits)
		}
		shape := res.Shape
		if shape == "" {
			shape = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\t%v\t%v\t%d\n",
			res.Kind, res.Algorithm, shape, res.Size,
			time.Duration(res.MeanNanos), time.Duration(res.MinNanos), time.Duration(res.MaxNanos),
			extra)
	}
	return tw.Flush()
}
