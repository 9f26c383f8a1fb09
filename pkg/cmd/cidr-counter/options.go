package cidr_counter

import (
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/openshift/cidr-counter/pkg/cidrcount"
)

// Options configures a cidr-counter run. It can be read from a YAML file with
// --config; flags given on the command line take precedence.
type Options struct {
	AreaColumn  string                 `json:"areaColumn,omitempty"`
	IPColumn    string                 `json:"ipColumn,omitempty"`
	Consume     cidrcount.ConsumeMode  `json:"consume,omitempty"`
	Output      cidrcount.OutputFormat `json:"output,omitempty"`
	MetricsFile string                 `json:"metricsFile,omitempty"`
}

// NewOptions returns Options with default values.
func NewOptions() *Options {
	return &Options{
		AreaColumn: cidrcount.DefaultAreaColumn,
		IPColumn:   cidrcount.DefaultIPColumn,
		Consume:    cidrcount.ConsumeAddresses,
		Output:     cidrcount.OutputCount,
	}
}

// Columns returns the configured CSV column names.
func (o *Options) Columns() cidrcount.Columns {
	return cidrcount.Columns{Area: o.AreaColumn, IP: o.IPColumn}
}

// Validate returns an aggregate of every problem found in o.
func (o *Options) Validate() error {
	allErrs := field.ErrorList{}

	if o.AreaColumn == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("areaColumn"), ""))
	}
	if o.IPColumn == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("ipColumn"), ""))
	}
	if o.AreaColumn != "" && o.AreaColumn == o.IPColumn {
		allErrs = append(allErrs, field.Invalid(field.NewPath("ipColumn"), o.IPColumn, "must differ from areaColumn"))
	}
	if !sets.NewString(cidrcount.ConsumeModes...).Has(string(o.Consume)) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("consume"), string(o.Consume), cidrcount.ConsumeModes))
	}
	if !sets.NewString(cidrcount.OutputFormats...).Has(string(o.Output)) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("output"), string(o.Output), cidrcount.OutputFormats))
	}

	return allErrs.ToAggregate()
}

// readOptionsFile overlays the values in file onto o. Unknown keys are an error.
func readOptionsFile(file string, o *Options) error {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	err = yaml.UnmarshalStrict(bytes, o)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %v", file, err)
	}
	return nil
}
