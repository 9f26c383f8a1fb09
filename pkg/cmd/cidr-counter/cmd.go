package cidr_counter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/openshift/cidr-counter/pkg/cidrcount"
	"github.com/openshift/cidr-counter/pkg/cidrcount/metrics"
)

const missingFileMessage = "Please provide a filename as command line argument."

// cidrCounter stores the variables needed to run a count from the command line.
type cidrCounter struct {
	configFile string
	flags      flagValues

	out    io.Writer
	errout io.Writer
}

var counterLong = `
Read a CSV file mapping IPv4 addresses to areas, summarize each area's addresses
into CIDR blocks, and print the number of blocks per area.

Addresses are grouped into runs of consecutive addresses in the order they appear
in the file; each run is converted into the minimal set of CIDR blocks covering
it. Rows with an empty area are ignored.
`

func NewCIDRCounterCommand(basename string, out, errout io.Writer) *cobra.Command {
	cc := &cidrCounter{out: out, errout: errout}

	cmd := &cobra.Command{
		Use:   basename + " [flags] <file.csv>",
		Short: "Count the CIDR blocks covering each area's addresses",
		Long:  counterLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cc.out, missingFileMessage)
				return c.Usage()
			}
			opts, err := cc.complete(c)
			if err != nil {
				return err
			}
			if len(args) > 1 {
				klog.V(2).Infof("Ignoring extra arguments %q", args[1:])
			}
			return cc.run(opts, args[0])
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errout)

	flags := cmd.Flags()
	flags.StringVar(&cc.configFile, "config", "", "Location of a YAML options file; flags override its values")
	cc.flags.addFlags(flags, NewOptions())

	return cmd
}

// complete builds the effective options from the config file and the command
// line, and validates them.
func (cc *cidrCounter) complete(c *cobra.Command) (*Options, error) {
	opts := NewOptions()
	if cc.configFile != "" {
		klog.V(2).Infof("Reading options from %s", cc.configFile)
		if err := readOptionsFile(cc.configFile, opts); err != nil {
			return nil, err
		}
	}
	cc.flags.applyTo(c.Flags(), opts)

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %v", err)
	}
	return opts, nil
}

// run loads file, prints the per-area report and, if requested, writes metrics.
func (cc *cidrCounter) run(opts *Options, file string) error {
	klog.V(2).Infof("Reading areas from %s", file)
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	areas, err := cidrcount.LoadAreas(f, opts.Columns())
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	klog.V(2).Infof("Read %d rows (%d skipped) in %d areas", areas.Rows, areas.Skipped, areas.Len())

	report, err := cidrcount.Count(areas, opts.Consume)
	// Areas summarized before a failure are still printed
	if printErr := report.Print(cc.out, opts.Output); printErr != nil {
		return printErr
	}
	if err != nil {
		var serr *cidrcount.SummarizeError
		if errors.As(err, &serr) {
			printSummarizeError(cc.errout, serr)
		}
		return err
	}

	if opts.MetricsFile != "" {
		recordMetrics(areas, report)
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}

func printSummarizeError(w io.Writer, err *cidrcount.SummarizeError) {
	fmt.Fprintf(w, "Error: %v\n", err.Err)
	fmt.Fprintf(w, "start_ip=%s, end_ip=%s\n", err.Range.Start, err.Range.End)
	fmt.Fprintf(w, "ips=%s, len(cidrs)=%d\n", err.RemainingString(), err.Groups)
}

func recordMetrics(areas *cidrcount.Areas, report *cidrcount.Report) {
	metrics.Register()
	metrics.RecordRows(areas.Accepted, areas.Skipped)
	metrics.RecordAreaCount(areas.Len())
	for _, area := range report.Areas {
		metrics.RecordArea(area.Name, area.Addresses, len(area.Groups), area.Blocks())
	}
}
