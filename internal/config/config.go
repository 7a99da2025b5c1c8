// Package config defines the decoder's run options (spec.md §A.3): the
// repair/filter switches the CLI exposes, loadable from an optional YAML
// file and overridable by flags, following DMRHub's flags-override-file
// precedence.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the decoder's full set of run-time switches.
type Options struct {
	FixErrors  bool     `yaml:"fix_errors"`  // enable UW Hamming correction (§4.1)
	Harder     bool     `yaml:"harder"`      // enable §4.2 step 6 repair-then-classify
	TypeFilter []string `yaml:"type_filter"` // FilteredType allowlist, empty = all
	EmitErrors bool     `yaml:"emit_errors"` // side-channel in §6 "Error output"
	GlobalTime bool     `yaml:"global_time"` // provenance as "j <unix>" instead of file+offset
}

// Default returns the zero-config Options: no repair passes, no type
// filtering, failed frames left out of the output.
func Default() Options {
	return Options{}
}

// Load reads an optional YAML options file. A missing file is not an
// error — Load returns Default() — since every field already has a safe
// zero value; an unreadable or malformed existing file is.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, err
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Merge overlays flag-sourced values onto file-sourced ones wherever the
// flag was explicitly set, per DMRHub's flags-override-file precedence.
// Only the boolean switches and the type filter participate; unset
// (false/nil) flag values never clobber a file setting.
func (o Options) Merge(flags Options, explicit FlagsSet) Options {
	out := o
	if explicit.FixErrors {
		out.FixErrors = flags.FixErrors
	}
	if explicit.Harder {
		out.Harder = flags.Harder
	}
	if explicit.EmitErrors {
		out.EmitErrors = flags.EmitErrors
	}
	if explicit.GlobalTime {
		out.GlobalTime = flags.GlobalTime
	}
	if explicit.TypeFilter {
		out.TypeFilter = flags.TypeFilter
	}
	return out
}

// FlagsSet records which pflag-bound fields the user actually passed on
// the command line, so Merge can distinguish "flag left at its zero
// value" from "flag explicitly set to its zero value".
type FlagsSet struct {
	FixErrors  bool
	Harder     bool
	EmitErrors bool
	GlobalTime bool
	TypeFilter bool
}
