// p11trc exercises a PKCS#11 module through the tracing proxy, so that every
// call it makes ends up in the trace.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/fftoml"
)

func main() {
	var (
		ctx    = context.Background()
		stdin  = os.Stdin
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdin, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "%s %v\n", failure.Sprint("error:"), err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) (err error) {
	rootConfig := &rootConfig{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	rootFlags := ff.NewFlagSet("p11trc")
	rootConfig.register(rootFlags)

	rootCommand := &ff.Command{
		Name:      "p11trc",
		ShortHelp: "call a PKCS#11 module through the tracing proxy",
		Flags:     rootFlags,
	}

	// Config for `p11trc info`.
	infoConfig := &infoConfig{rootConfig: rootConfig}
	infoFlags := ff.NewFlagSet("info").SetParent(rootFlags)
	infoCommand := &ff.Command{
		Name:      "info",
		ShortHelp: "show general information about the module",
		Flags:     infoFlags,
		Exec:      infoConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, infoCommand)

	// Config for `p11trc slots`.
	slotsConfig := &slotsConfig{rootConfig: rootConfig}
	slotsFlags := ff.NewFlagSet("slots").SetParent(rootFlags)
	slotsConfig.register(slotsFlags)
	slotsCommand := &ff.Command{
		Name:      "slots",
		ShortHelp: "list slots and the tokens in them",
		Flags:     slotsFlags,
		Exec:      slotsConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, slotsCommand)

	// Config for `p11trc mechanisms`.
	mechanismsConfig := &mechanismsConfig{rootConfig: rootConfig}
	mechanismsFlags := ff.NewFlagSet("mechanisms").SetParent(rootFlags)
	mechanismsConfig.register(mechanismsFlags)
	mechanismsCommand := &ff.Command{
		Name:      "mechanisms",
		ShortHelp: "list the mechanisms supported by a slot",
		Flags:     mechanismsFlags,
		Exec:      mechanismsConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, mechanismsCommand)

	// Config for `p11trc digest`.
	digestConfig := &digestConfig{rootConfig: rootConfig}
	digestFlags := ff.NewFlagSet("digest").SetParent(rootFlags)
	digestConfig.register(digestFlags)
	digestCommand := &ff.Command{
		Name:      "digest",
		Usage:     "p11trc digest [FLAGS] [FILE...]",
		ShortHelp: "digest files on the token",
		LongHelp:  "Digest each file in its own session. With no files, digest standard input.",
		Flags:     digestFlags,
		Exec:      digestConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, digestCommand)

	// Config for `p11trc random`.
	randomConfig := &randomConfig{rootConfig: rootConfig}
	randomFlags := ff.NewFlagSet("random").SetParent(rootFlags)
	randomConfig.register(randomFlags)
	randomCommand := &ff.Command{
		Name:      "random",
		ShortHelp: "generate random bytes on the token",
		Flags:     randomFlags,
		Exec:      randomConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, randomCommand)

	// Config for `p11trc login`.
	loginConfig := &loginConfig{rootConfig: rootConfig}
	loginFlags := ff.NewFlagSet("login").SetParent(rootFlags)
	loginConfig.register(loginFlags)
	loginCommand := &ff.Command{
		Name:      "login",
		ShortHelp: "log in to a token, and log out again",
		LongHelp:  "Open a session and log in. The PIN is read from the terminal unless --pin is given.",
		Flags:     loginFlags,
		Exec:      loginConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, loginCommand)

	// Config for `p11trc calls`.
	callsConfig := &callsConfig{rootConfig: rootConfig}
	callsFlags := ff.NewFlagSet("calls").SetParent(rootFlags)
	callsConfig.register(callsFlags)
	callsCommand := &ff.Command{
		Name:      "calls",
		ShortHelp: "probe the module, and summarize the calls that were made",
		Flags:     callsFlags,
		Exec:      callsConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, callsCommand)

	// Print help when appropriate.
	showHelp := true
	defer func() {
		errHelp := errors.Is(err, ff.ErrHelp) || errors.Is(err, ff.ErrNoExec)
		if showHelp || errHelp {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(rootCommand))
		}
		if errHelp {
			err = nil
		}
	}()

	// Initial parsing.
	if err := rootCommand.Parse(args,
		ff.WithEnvVarPrefix("P11TRC"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(fftoml.Parse),
	); err != nil {
		return err
	}

	// Validation and set-up.
	if err := rootConfig.setup(); err != nil {
		return err
	}
	defer func() {
		if cerr := rootConfig.teardown(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// Run errors shouldn't show help by default.
	showHelp = false

	// Run the selected command, until it finishes or a signal arrives.
	var g run.Group
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return rootCommand.Run(ctx)
		}, func(error) {
			cancel()
		})
	}
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt))
	}
	return g.Run()
}
