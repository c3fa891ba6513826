// ipv6fmt prints IPv6 addresses in their canonical text forms.
//
// Usage:
//
//	ipv6fmt <command> [address ...]
//
// Commands:
//
//	canonical    RFC 5952 general canonical form (default)
//	pure         canonical form with dotted quads rewritten to hex
//	expanded     fully expanded pure form, no '::' compression
//	arpa         reverse-DNS ip6.arpa form
//	unc          Windows UNC-literal transcription
//	random       generate random addresses
//	iface        first IPv6 address of a network interface
//
// Addresses are taken from the arguments, or one per line from stdin when
// no arguments are given. Rejected inputs are logged to stderr and the
// process exits with code 1 once all inputs were processed.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/ipv6addr"
)

// Version can be injected with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

var errRejected = errors.New("one or more inputs were rejected")

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := newApp(logger)
	if err := app.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errRejected) {
			logger.Error("command failed", "error", err)
		}
		return 1
	}
	return 0
}

func newApp(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:           "ipv6fmt",
		Usage:          "canonicalize IPv6 address text",
		Version:        Version,
		DefaultCommand: "canonical",
		Commands: []*cli.Command{
			formatCommand(logger, "canonical", "RFC 5952 general canonical form", ipv6addr.Canonical),
			formatCommand(logger, "pure", "canonical form with dotted quads rewritten to hex", ipv6addr.Pure),
			formatCommand(logger, "expanded", "fully expanded pure form", ipv6addr.Expanded),
			formatCommand(logger, "arpa", "reverse-DNS ip6.arpa form", func(s string) (string, error) {
				a, err := ipv6addr.Parse(s)
				if err != nil {
					return "", err
				}
				return a.IP6ARPA(), nil
			}),
			formatCommand(logger, "unc", "Windows UNC-literal transcription", func(s string) (string, error) {
				a, err := ipv6addr.Parse(s)
				if err != nil {
					return "", err
				}
				return a.UNC(), nil
			}),
			{
				Name:  "random",
				Usage: "generate random addresses",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of addresses", Value: 1},
					&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "colon-terminated address prefix"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					for range cmd.Int("count") {
						a, err := ipv6addr.RandomWithPrefix(cmd.String("prefix"))
						if err != nil {
							return err
						}
						fmt.Fprintln(cmd.Root().Writer, a)
					}
					return nil
				},
			},
			{
				Name:      "iface",
				Usage:     "first IPv6 address of a network interface",
				ArgsUsage: "<interface>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return errors.New("interface name is required")
					}
					a, err := ipv6addr.InterfaceAddr(name)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, a)
					return nil
				},
			},
		},
	}
}

// formatCommand builds a command that maps each input address through fn.
func formatCommand(logger *slog.Logger, name, usage string, fn func(string) (string, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[address ...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			inputs := cmd.Args().Slice()
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.Root().Reader); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			return formatAll(cmd.Root().Writer, logger, inputs, fn)
		},
	}
}

// formatAll prints fn(input) for every input, logging rejections. It keeps
// going after a rejection so every input gets reported, then signals the
// failure once.
func formatAll(w io.Writer, logger *slog.Logger, inputs []string, fn func(string) (string, error)) error {
	rejected := false
	for _, in := range inputs {
		out, err := fn(in)
		if err != nil {
			logger.Error("rejected", "input", in, "error", err)
			rejected = true
			continue
		}
		fmt.Fprintln(w, out)
	}
	if rejected {
		return errRejected
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
