package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"golang.org/x/term"

	"github.com/peterbourgon/p11trc/ck"
)

type loginConfig struct {
	*rootConfig

	slot     uint
	pin      string
	userType string
}

func (cfg *loginConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 's', LongName: "slot" /* */, Value: ffval.NewValue(&cfg.slot) /*                          */, Usage: "slot ID"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'p', LongName: "pin" /*  */, Value: ffval.NewValue(&cfg.pin) /*                           */, Usage: "PIN (default: prompt)"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'u', LongName: "user" /* */, Value: ffval.NewEnum(&cfg.userType, "user", "so") /*          */, Usage: "user type: user, so"})
}

func (cfg *loginConfig) Exec(ctx context.Context, args []string) error {
	userType := ck.CKU_USER
	if cfg.userType == "so" {
		userType = ck.CKU_SO
	}

	pin, err := cfg.readPIN()
	if err != nil {
		return err
	}

	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	h, err := c.openSession(ck.SlotID(cfg.slot), userType == ck.CKU_SO)
	if err != nil {
		return err
	}
	defer c.closeSession(h)

	if err := c.login(h, userType, pin); err != nil {
		fmt.Fprintf(cfg.stdout, "%s %v\n", failure.Sprint("login failed:"), err)
		return err
	}

	si, err := c.sessionInfo(h)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.stdout, "%s slot %d, session %d, state %s\n", success.Sprint("logged in:"), si.SlotID, h, si.State)

	return c.logout(h)
}

// readPIN returns the --pin flag if it's set, otherwise prompts for the PIN
// on a terminal, otherwise reads a line from stdin.
func (cfg *loginConfig) readPIN() ([]byte, error) {
	if cfg.pin != "" {
		return []byte(cfg.pin), nil
	}

	if f, ok := cfg.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cfg.stderr, "PIN: ")
		pin, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cfg.stderr)
		if err != nil {
			return nil, fmt.Errorf("read PIN: %w", err)
		}
		return pin, nil
	}

	line, err := bufio.NewReader(cfg.stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read PIN: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

//
//
//

type randomConfig struct {
	*rootConfig

	slot     uint
	length   int
	encoding string
}

func (cfg *randomConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 's', LongName: "slot" /*     */, Value: ffval.NewValue(&cfg.slot) /*                               */, Usage: "slot ID"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "length" /*   */, Value: ffval.NewValueDefault(&cfg.length, 32) /*                  */, Usage: "number of random bytes"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'e', LongName: "encoding" /* */, Value: ffval.NewEnum(&cfg.encoding, "hex", "base64", "raw") /* */, Usage: "output encoding: hex, base64, raw"})
}

func (cfg *randomConfig) Exec(ctx context.Context, args []string) error {
	if cfg.length < 0 {
		return fmt.Errorf("invalid length %d", cfg.length)
	}

	c, done, err := cfg.client()
	if err != nil {
		return err
	}
	defer done()

	h, err := c.openSession(ck.SlotID(cfg.slot), false)
	if err != nil {
		return err
	}
	defer c.closeSession(h)

	buf, err := c.random(h, cfg.length)
	if err != nil {
		return err
	}

	switch cfg.encoding {
	case "raw":
		_, err = cfg.stdout.Write(buf)
	case "base64":
		_, err = fmt.Fprintln(cfg.stdout, base64.StdEncoding.EncodeToString(buf))
	default:
		_, err = fmt.Fprintln(cfg.stdout, hex.EncodeToString(buf))
	}
	return err
}
