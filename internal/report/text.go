package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func renderText(w io.Writer, v view) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, v.Title)
	fmt.Fprintln(bw, strings.Repeat("=", len([]rune(v.Title))))
	fmt.Fprintf(bw, "Answered %d of %d questions", v.Answered, v.Total)
	if v.Duration != "" {
		fmt.Fprintf(bw, " in %s", v.Duration)
	}
	fmt.Fprintln(bw)
	if v.SessionID != "" {
		fmt.Fprintf(bw, "Session %s\n", v.SessionID)
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Recommendation: %s (%s)\n", v.Guidance.Title, v.Tier)
	fmt.Fprintln(bw, v.Guidance.Description)
	fmt.Fprintln(bw)

	tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	for _, l := range []scoreLine{v.Overall, v.Technical, v.Psycho} {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", l.Label, l.Value, l.Bar, l.Note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "WISCAR dimensions")
	tw = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	for _, l := range v.Dimensions {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", l.Label, l.Value, l.Bar)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Career role fit")
	tw = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	for _, r := range v.Roles {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Title, r.Fit, r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Next steps")
	for i, step := range v.Guidance.NextSteps {
		fmt.Fprintf(bw, "  %d. %s\n", i+1, step)
	}

	return bw.Flush()
}
