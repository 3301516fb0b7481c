package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// requireEnablingFlags returns an error if an option is set while the
// enabling flag of its check is not, e.g. --redis-url without --redis.
func requireEnablingFlags(fs *pflag.FlagSet, descriptors []descriptor) error {
	for _, d := range descriptors {
		if *d.enabled {
			continue
		}
		for _, o := range d.options {
			if fs.Changed(o.name) {
				return fmt.Errorf("--%s requires --%s", o.name, d.flag)
			}
		}
	}
	return nil
}
