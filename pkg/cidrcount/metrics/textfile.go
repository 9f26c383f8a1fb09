package metrics

// contains the textfile writer for run metrics

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile registers the run metrics and writes them to path in the text
// exposition format, for pickup by a node-exporter textfile collector. The file
// is replaced atomically.
func WriteTextfile(path string) error {
	Register()
	klog.V(2).Infof("Writing metrics to %s", path)
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %v", path, err)
	}
	return nil
}
