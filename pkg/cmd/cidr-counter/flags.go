package cidr_counter

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/openshift/cidr-counter/pkg/cidrcount"
)

// enumValue is a pflag.Value accepting one of a fixed set of strings.
type enumValue struct {
	value   *string
	allowed []string
}

var _ pflag.Value = &enumValue{}

func (e *enumValue) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumValue) Set(s string) error {
	if !sets.NewString(e.allowed...).Has(s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	*e.value = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}

// flagValues holds the raw flag values before they are merged into Options.
type flagValues struct {
	areaColumn  string
	ipColumn    string
	consume     string
	output      string
	metricsFile string
}

func (f *flagValues) addFlags(flags *pflag.FlagSet, defaults *Options) {
	f.consume = string(defaults.Consume)
	f.output = string(defaults.Output)

	flags.StringVar(&f.areaColumn, "area-column", defaults.AreaColumn, "Name of the CSV column holding the area")
	flags.StringVar(&f.ipColumn, "ip-column", defaults.IPColumn, "Name of the CSV column holding the IPv4 address")
	flags.Var(&enumValue{value: &f.consume, allowed: cidrcount.ConsumeModes}, "consume",
		fmt.Sprintf("How many addresses to consume after summarizing a run (%s)", strings.Join(cidrcount.ConsumeModes, ", ")))
	flags.Var(&enumValue{value: &f.output, allowed: cidrcount.OutputFormats}, "output",
		fmt.Sprintf("Output format (%s)", strings.Join(cidrcount.OutputFormats, ", ")))
	flags.StringVar(&f.metricsFile, "metrics-file", defaults.MetricsFile, "If set, write run metrics to this file in Prometheus text format")
}

// applyTo copies every flag set explicitly on the command line into o.
func (f *flagValues) applyTo(flags *pflag.FlagSet, o *Options) {
	if flags.Changed("area-column") {
		o.AreaColumn = f.areaColumn
	}
	if flags.Changed("ip-column") {
		o.IPColumn = f.ipColumn
	}
	if flags.Changed("consume") {
		o.Consume = cidrcount.ConsumeMode(f.consume)
	}
	if flags.Changed("output") {
		o.Output = cidrcount.OutputFormat(f.output)
	}
	if flags.Changed("metrics-file") {
		o.MetricsFile = f.metricsFile
	}
}
