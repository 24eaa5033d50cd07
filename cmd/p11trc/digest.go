package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11util"
)

type digestConfig struct {
	*rootConfig

	slot      uint
	mechanism string
	jobs      int
}

func (cfg *digestConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 's', LongName: "slot" /*      */, Value: ffval.NewValue(&cfg.slot) /*                      */, Usage: "slot ID"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'm', LongName: "mechanism" /* */, Value: ffval.NewValueDefault(&cfg.mechanism, "SHA256") /* */, Usage: "digest mechanism, by name or number"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'j', LongName: "jobs" /*      */, Value: ffval.NewValueDefault(&cfg.jobs, 4) /*            */, Usage: "maximum number of files digested concurrently"})
}

// stdinName stands for standard input in the list of files to digest.
const stdinName = "-"

type digestResult struct {
	name string
	sum  []byte
	size int64
}

func (cfg *digestConfig) Exec(ctx context.Context, args []string) error {
	if len(args) <= 0 {
		args = []string{stdinName}
	}

	mech, ok := ck.ParseMechanism(cfg.mechanism)
	if !ok {
		return fmt.Errorf("unknown mechanism %q", cfg.mechanism)
	}

	if cfg.jobs <= 0 {
		cfg.jobs = 1
	}

	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	var (
		slot    = ck.SlotID(cfg.slot)
		results = make([]digestResult, len(args))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, name := range args {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, size, err := cfg.digestFile(c, slot, mech, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = digestResult{name: name, sum: sum, size: size}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total int64
	for _, r := range results {
		fmt.Fprintf(cfg.stdout, "%s  %s\n", hex.EncodeToString(r.sum), r.name)
		total += r.size
	}
	cfg.logger.Info("digest complete",
		zap.Stringer("mechanism", mech),
		zap.Int("files", len(results)),
		zap.String("bytes", p11util.Bytes(total)),
	)

	return nil
}

// digestFile digests a single file in a session of its own.
func (cfg *digestConfig) digestFile(c *client, slot ck.SlotID, mech ck.MechanismType, name string) (_ []byte, _ int64, err error) {
	var r io.Reader = cfg.stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	}

	h, err := c.openSession(slot, false)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := c.closeSession(h); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return c.digest(h, mech, r)
}
