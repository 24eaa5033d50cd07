package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"

	"github.com/peterbourgon/p11trc"
	"github.com/peterbourgon/p11trc/ck"
)

type infoConfig struct {
	*rootConfig
}

func (cfg *infoConfig) Exec(ctx context.Context, args []string) error {
	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	info, err := c.info()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cfg.stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Cryptoki version"), info.CryptokiVersion)
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Manufacturer"), ck.TrimBlank(info.ManufacturerID[:]))
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Library"), ck.TrimBlank(info.LibraryDescription[:]))
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Library version"), info.LibraryVersion)
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Table version"), cfg.proxy.Version())

	if s, ok := cfg.proxy.Settings(); ok {
		traceFile := s.LogFilePath
		if traceFile == "" || s.Has(p11trc.FlagDisableLogFile) {
			traceFile = "(disabled)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Delegate"), s.LibraryPath)
		fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Trace file"), traceFile)
		fmt.Fprintf(tw, "%s\t0x%02x\n", heading.Sprint("Trace flags"), uint64(s.Flags))
	}
	return tw.Flush()
}

//
//
//

type slotsConfig struct {
	*rootConfig

	all bool
}

func (cfg *slotsConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'a', LongName: "all", Value: ffval.NewValue(&cfg.all), Usage: "include slots without a token", NoDefault: true})
}

func (cfg *slotsConfig) Exec(ctx context.Context, args []string) error {
	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	slots, err := c.slots(!cfg.all)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cfg.stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", heading.Sprint("SLOT\tDESCRIPTION\tTOKEN\tMODEL\tSERIAL\tFLAGS"))
	for _, slot := range slots {
		si, err := c.slotInfo(slot)
		if err != nil {
			return err
		}

		if si.Flags&ck.CKF_TOKEN_PRESENT == 0 {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\n", slot, ck.TrimBlank(si.SlotDescription[:]))
			continue
		}

		ti, err := c.tokenInfo(slot)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			slot,
			ck.TrimBlank(si.SlotDescription[:]),
			ck.TrimBlank(ti.Label[:]),
			ck.TrimBlank(ti.Model[:]),
			ck.TrimBlank(ti.SerialNumber[:]),
			tokenFlagSummary(ti.Flags),
		)
	}
	return tw.Flush()
}

func tokenFlagSummary(f ck.Flags) string {
	var names []string
	for _, x := range []struct {
		flag ck.Flags
		name string
	}{
		{ck.CKF_TOKEN_INITIALIZED, "initialized"},
		{ck.CKF_LOGIN_REQUIRED, "login"},
		{ck.CKF_USER_PIN_INITIALIZED, "pin"},
		{ck.CKF_RNG, "rng"},
		{ck.CKF_WRITE_PROTECTED, "ro"},
		{ck.CKF_USER_PIN_LOCKED, "locked"},
	} {
		if f&x.flag != 0 {
			names = append(names, x.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

//
//
//

type mechanismsConfig struct {
	*rootConfig

	slot uint
}

func (cfg *mechanismsConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 's', LongName: "slot", Value: ffval.NewValue(&cfg.slot), Usage: "slot ID"})
}

func (cfg *mechanismsConfig) Exec(ctx context.Context, args []string) error {
	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	slot := ck.SlotID(cfg.slot)
	mechs, err := c.mechanisms(slot)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cfg.stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", heading.Sprint("MECHANISM\tVALUE\tMIN\tMAX\tFLAGS"))
	for _, m := range mechs {
		mi, err := c.mechanismInfo(slot, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t0x%08X\t%d\t%d\t%s\n", m, uint(m), mi.MinKeySize, mi.MaxKeySize, mechanismFlagSummary(mi.Flags))
	}
	return tw.Flush()
}

func mechanismFlagSummary(f ck.Flags) string {
	var names []string
	for _, x := range []struct {
		flag ck.Flags
		name string
	}{
		{ck.CKF_HW, "hw"},
		{ck.CKF_ENCRYPT, "encrypt"},
		{ck.CKF_DECRYPT, "decrypt"},
		{ck.CKF_DIGEST, "digest"},
		{ck.CKF_SIGN, "sign"},
		{ck.CKF_VERIFY, "verify"},
		{ck.CKF_GENERATE, "generate"},
		{ck.CKF_GENERATE_KEY_PAIR, "keypair"},
		{ck.CKF_WRAP, "wrap"},
		{ck.CKF_UNWRAP, "unwrap"},
		{ck.CKF_DERIVE, "derive"},
	} {
		if f&x.flag != 0 {
			names = append(names, x.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
