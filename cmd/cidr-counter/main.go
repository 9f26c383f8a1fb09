package main

import (
	"os"

	"k8s.io/component-base/cli"

	"github.com/openshift/cidr-counter/pkg/cmd/cidr-counter"
)

func main() {
	cmd := cidr_counter.NewCIDRCounterCommand("cidr-counter", os.Stdout, os.Stderr)
	code := cli.Run(cmd)
	os.Exit(code)
}
