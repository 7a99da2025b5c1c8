package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/config"
	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/Regentag/iridium-go/internal/obslog"
	"github.com/Regentag/iridium-go/internal/pretty"
	"github.com/Regentag/iridium-go/internal/timing"
	"github.com/spf13/cobra"
)

func newDecodeCommand() *cobra.Command {
	var flags config.Options
	var explicit config.FlagsSet
	var typeFilter []string

	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode burst lines from files or stdin into pretty-printed frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit.TypeFilter = cmd.Flags().Changed("type")
			flags.TypeFilter = typeFilter
			opts, err := loadOptions(cmd, flags, explicit)
			if err != nil {
				return err
			}
			return runDecode(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.FixErrors, "fix-uw", false, "enable UW Hamming correction (§4.1)")
	f.BoolVar(&flags.Harder, "harder", false, "enable repair-then-classify fallback (§4.2 step 6)")
	f.BoolVar(&flags.EmitErrors, "emit-errors", false, "print ERR lines instead of dropping failed frames")
	f.BoolVar(&flags.GlobalTime, "global-time", false, "show provenance as a derived global timestamp")
	f.StringSliceVar(&typeFilter, "type", nil, "restrict decoding to these classify.Type values (repeatable)")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		explicit.FixErrors = cmd.Flags().Changed("fix-uw")
		explicit.Harder = cmd.Flags().Changed("harder")
		explicit.EmitErrors = cmd.Flags().Changed("emit-errors")
		explicit.GlobalTime = cmd.Flags().Changed("global-time")
	}

	return cmd
}

func runDecode(cmd *cobra.Command, args []string, opts config.Options) error {
	readers, closeAll, err := openInputs(args)
	if err != nil {
		return err
	}
	defer closeAll()

	for _, r := range readers {
		if err := runDecodeFromReader(cmd, r, opts); err != nil {
			return err
		}
	}
	return nil
}

// runDecodeFromReader drives the decode loop over a single already-open
// reader, so it can be exercised directly against an in-memory buffer
// without going through file/stdin plumbing.
func runDecodeFromReader(cmd *cobra.Command, r io.Reader, opts config.Options) error {
	logger := obslog.Default()

	frameOpts := frame.Options{
		CorrectUW:  opts.FixErrors,
		Harder:     opts.Harder,
		TypeFilter: typeFilterSet(opts.TypeFilter),
	}
	prettyOpts := pretty.Options{GlobalTime: opts.GlobalTime}
	tctx := timing.NewContext()

	out := cmd.OutOrStdout()
	var total, decoded, failed int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		total++

		b, err := burst.Parse(line)
		if err != nil {
			failed++
			if opts.EmitErrors {
				fmt.Fprintln(out, "ERR: burst:", err)
			}
			continue
		}

		f := frame.Decode(b, frameOpts, tctx)
		if f.IsError() {
			failed++
			if !opts.EmitErrors {
				continue
			}
		} else {
			decoded++
		}
		fmt.Fprintln(out, pretty.Format(f, prettyOpts))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", "error", err)
	}

	logger.Info("run complete", "bursts", total, "decoded", decoded, "failed", failed)
	return nil
}

func typeFilterSet(names []string) map[classify.Type]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[classify.Type]bool, len(names))
	for _, n := range names {
		set[classify.Type(n)] = true
	}
	return set
}

func openInputs(args []string) (readers []io.Reader, closeAll func(), err error) {
	if len(args) == 0 {
		return []io.Reader{os.Stdin}, func() {}, nil
	}

	var files []*os.File
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return readers, func() {
		for _, f := range files {
			f.Close()
		}
	}, nil
}
