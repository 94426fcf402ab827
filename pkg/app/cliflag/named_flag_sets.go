// Package cliflag groups command-line flags into named sections so an
// application can print and register them per concern.
package cliflag

import "github.com/spf13/pflag"

// NamedFlagSets stores named flag sets in the order they were added.
type NamedFlagSets struct {
	// Order is the order in which flag set names were added.
	Order []string

	// FlagSets maps a name to its flag set.
	FlagSets map[string]*pflag.FlagSet
}

// FlagSet returns the flag set with the given name, creating it and
// recording its order on first use.
func (nfs *NamedFlagSets) FlagSet(name string) *pflag.FlagSet {
	if nfs.FlagSets == nil {
		nfs.FlagSets = map[string]*pflag.FlagSet{}
	}
	if _, ok := nfs.FlagSets[name]; !ok {
		nfs.FlagSets[name] = pflag.NewFlagSet(name, pflag.ExitOnError)
		nfs.Order = append(nfs.Order, name)
	}
	return nfs.FlagSets[name]
}
