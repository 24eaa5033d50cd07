package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"

	"github.com/peterbourgon/p11trc/internal/p11util"
)

type callsConfig struct {
	*rootConfig

	limit    int
	function string
}

func (cfg *callsConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "limit" /*    */, Value: ffval.NewValueDefault(&cfg.limit, 10) /* */, Usage: "maximum number of recent calls to show"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'f', LongName: "function" /* */, Value: ffval.NewValue(&cfg.function) /*        */, Usage: "only show recent calls of this function, e.g. C_GetSlotList"})
}

func (cfg *callsConfig) Exec(ctx context.Context, args []string) error {
	if err := cfg.probe(); err != nil {
		return err
	}

	stats := cfg.proxy.CallStats()

	var total int
	for _, s := range stats {
		total += int(s.Calls)
	}

	tw := tabwriter.NewWriter(cfg.stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", heading.Sprint("FUNCTION\tCALLS\tSHARE\tERRORS\tLAST\tMEAN"))
	for _, s := range stats {
		last := success.Sprint(s.LastRV)
		if s.LastRV.Err() != nil {
			last = failure.Sprint(s.LastRV)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%s\n",
			s.Function,
			s.Calls,
			p11util.Percent(int(s.Calls), total),
			s.Errors,
			last,
			p11util.Duration(s.Mean()),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cfg.stdout)

	tw = tabwriter.NewWriter(cfg.stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", heading.Sprint("ID\tFUNCTION\tSTATUS\tDURATION"))
	for _, c := range cfg.proxy.RecentCalls(cfg.function, cfg.limit) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Function, c.RV, p11util.Duration(c.Duration))
	}
	return tw.Flush()
}

// probe makes the read-only calls that every module supports, so that there's
// something to summarize.
func (cfg *callsConfig) probe() error {
	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	if _, err := c.info(); err != nil {
		return err
	}

	slots, err := c.slots(true)
	if err != nil {
		return err
	}

	for _, slot := range slots {
		if _, err := c.slotInfo(slot); err != nil {
			return err
		}
		if _, err := c.tokenInfo(slot); err != nil {
			return err
		}
		mechs, err := c.mechanisms(slot)
		if err != nil {
			return err
		}
		for _, m := range mechs {
			if _, err := c.mechanismInfo(slot, m); err != nil {
				return err
			}
		}
	}

	return nil
}
