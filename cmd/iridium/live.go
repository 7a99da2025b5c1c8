package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/config"
	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/Regentag/iridium-go/internal/pretty"
	"github.com/Regentag/iridium-go/internal/timing"
	"github.com/jroimartin/gocui"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
)

const liveRecencyTTL = 60 * time.Second
const liveMaxRows = 200

// liveContext is the "live" subcommand's analogue of the teacher's
// Context{decoder, sky}: a decode pipeline plus the recently-seen-frame
// table the gocui layout renders, instead of an ICAO aircraft table.
type liveContext struct {
	mux sync.Mutex

	tctx   *timing.Context
	opts   frame.Options
	pretty pretty.Options
	recent *cache.Cache // key: "source/offset_ms" -> pretty-printed line
	order  []string     // insertion order, capped at liveMaxRows
	counts map[frame.Tag]int
	total  int
}

func newLiveContext(opts frame.Options, prettyOpts pretty.Options) *liveContext {
	return &liveContext{
		tctx:   timing.NewContext(),
		opts:   opts,
		pretty: prettyOpts,
		recent: cache.New(liveRecencyTTL, liveRecencyTTL/2),
		counts: make(map[frame.Tag]int),
	}
}

func (lc *liveContext) ingest(line string) {
	b, err := burst.Parse(line)
	if err != nil {
		return
	}
	f := frame.Decode(b, lc.opts, lc.tctx)

	lc.mux.Lock()
	defer lc.mux.Unlock()

	lc.total++
	lc.counts[f.Tag]++

	key := fmt.Sprintf("%s/%014.4f", b.SourceName, float64(b.OffsetMs))
	lc.recent.Set(key, pretty.Format(f, lc.pretty), cache.DefaultExpiration)
	lc.order = append(lc.order, key)
	if len(lc.order) > liveMaxRows {
		stale := lc.order[0]
		lc.order = lc.order[1:]
		lc.recent.Delete(stale)
	}
}

func (lc *liveContext) update(g *gocui.Gui) error {
	lc.mux.Lock()
	defer lc.mux.Unlock()

	status, err := g.View("status")
	if err != nil {
		return err
	}
	status.Clear()
	fmt.Fprintf(status, " bursts: %d  last update: %s\n", lc.total, time.Now().Format("2006-01-02 15:04:05"))

	tags := make([]string, 0, len(lc.counts))
	for t := range lc.counts {
		tags = append(tags, string(t))
	}
	sort.Strings(tags)
	for _, t := range tags {
		fmt.Fprintf(status, " %-6s %d", t, lc.counts[frame.Tag(t)])
	}
	fmt.Fprintln(status)

	list, err := g.View("list")
	if err != nil {
		return err
	}
	list.Clear()
	for _, key := range lc.order {
		if v, ok := lc.recent.Get(key); ok {
			fmt.Fprintln(list, v.(string))
		}
	}
	return nil
}

func liveLayout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("status", 0, 0, maxX-1, 3); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " STATUS "
	}
	if v, err := g.SetView("list", 0, 4, maxX-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " FRAMES "
	}
	return nil
}

func liveQuit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func newLiveCommand() *cobra.Command {
	var flags config.Options
	var explicit config.FlagsSet

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Interactively watch decoded frames arriving on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, flags, explicit)
			if err != nil {
				return err
			}
			return runLive(opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.FixErrors, "fix-uw", false, "enable UW Hamming correction (§4.1)")
	f.BoolVar(&flags.Harder, "harder", false, "enable repair-then-classify fallback (§4.2 step 6)")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		explicit.FixErrors = cmd.Flags().Changed("fix-uw")
		explicit.Harder = cmd.Flags().Changed("harder")
	}

	return cmd
}

func runLive(opts config.Options) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()

	g.SetManagerFunc(liveLayout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, liveQuit); err != nil {
		return err
	}

	lc := newLiveContext(frame.Options{
		CorrectUW:  opts.FixErrors,
		Harder:     opts.Harder,
		TypeFilter: typeFilterSet(opts.TypeFilter),
	}, pretty.Options{GlobalTime: opts.GlobalTime})

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			lc.ingest(scanner.Text())
			g.Update(lc.update)
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}
