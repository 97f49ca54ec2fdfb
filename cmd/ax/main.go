// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kushti/ergo-simple-addresses/ax"
)

const AX_VERSION = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ax [--version] [--help] <command> [<args>]\n")
	fmt.Fprintf(os.Stderr, `
address :
    addr-encode           build an address of a given type from base16 content bytes
    addr-decode           decode an address string into its type and base16 content bytes
    p2sh-from-script      build a p2sh address by hashing a base16 serialized script

encode and decode :
    base58-encode         encode a base16 string to a base58 string
    base58-decode         decode a base58 string to a base16 string
    base58check-encode    encode a base58check string with a blake2b256 checksum
    base58check-decode    decode a base58check string and verify its checksum

hash :
    blake2b256            calculate blake2b 256 hash of a base16 data.

`)
	os.Exit(1)
}

func cmdUsage(cmd *flag.FlagSet, usage string) {
	fmt.Fprintf(os.Stderr, usage)
	cmd.PrintDefaults()
}

func version() {
	fmt.Fprintf(os.Stderr, "Ax Version : %q\n", AX_VERSION)
	os.Exit(1)
}

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "Ax Error : %q\n", err)
	os.Exit(1)
}

var network string
var addrType string

// cmdInput returns the trailing argument of the parsed command, falling back
// to STDIN when the command is fed through a pipe.
func cmdInput(cmd *flag.FlagSet) string {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeNamedPipe) == 0 {
		if cmd.NArg() < 1 || cmd.Arg(0) == "help" || cmd.Arg(0) == "--help" {
			cmd.Usage()
			os.Exit(1)
		}
		return cmd.Arg(cmd.NArg() - 1)
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		errExit(err)
	}
	return strings.TrimSpace(string(src))
}

func output(result string, err error) {
	if err != nil {
		errExit(err)
	}
	fmt.Printf("%s\n", result)
}

func main() {
	addrEncodeCommand := flag.NewFlagSet("addr-encode", flag.ExitOnError)
	addrEncodeCommand.StringVar(&network, "n", "mainnet", "network : [mainnet|testnet]")
	addrEncodeCommand.StringVar(&addrType, "t", "p2pk", "address type : [p2pk|p2sh|p2s]")
	addrEncodeCommand.Usage = func() {
		cmdUsage(addrEncodeCommand, "Usage: ax addr-encode [-n <network>] [-t <type>] [hexstring]\n")
	}

	addrDecodeCommand := flag.NewFlagSet("addr-decode", flag.ExitOnError)
	addrDecodeCommand.StringVar(&network, "n", "mainnet", "network : [mainnet|testnet]")
	addrDecodeCommand.Usage = func() {
		cmdUsage(addrDecodeCommand, "Usage: ax addr-decode [-n <network>] [address]\n")
	}

	p2shFromScriptCommand := flag.NewFlagSet("p2sh-from-script", flag.ExitOnError)
	p2shFromScriptCommand.StringVar(&network, "n", "mainnet", "network : [mainnet|testnet]")
	p2shFromScriptCommand.Usage = func() {
		cmdUsage(p2shFromScriptCommand, "Usage: ax p2sh-from-script [-n <network>] [hexstring]\n")
	}

	base58EncodeCommand := flag.NewFlagSet("base58-encode", flag.ExitOnError)
	base58EncodeCommand.Usage = func() {
		cmdUsage(base58EncodeCommand, "Usage: ax base58-encode [hexstring]\n")
	}

	base58DecodeCommand := flag.NewFlagSet("base58-decode", flag.ExitOnError)
	base58DecodeCommand.Usage = func() {
		cmdUsage(base58DecodeCommand, "Usage: ax base58-decode [base58string]\n")
	}

	var base58CheckVer string
	base58CheckEncodeCommand := flag.NewFlagSet("base58check-encode", flag.ExitOnError)
	base58CheckEncodeCommand.StringVar(&base58CheckVer, "v", "01", "base58check version byte")
	base58CheckEncodeCommand.Usage = func() {
		cmdUsage(base58CheckEncodeCommand, "Usage: ax base58check-encode [-v <ver>] [hexstring]\n")
	}

	base58CheckDecodeCommand := flag.NewFlagSet("base58check-decode", flag.ExitOnError)
	base58CheckDecodeCommand.Usage = func() {
		cmdUsage(base58CheckDecodeCommand, "Usage: ax base58check-decode [base58string]\n")
	}

	blake2b256Command := flag.NewFlagSet("blake2b256", flag.ExitOnError)
	blake2b256Command.Usage = func() {
		cmdUsage(blake2b256Command, "Usage: ax blake2b256 [hexstring]\n")
	}

	if len(os.Args) == 1 {
		usage()
	}

	switch os.Args[1] {
	case "help", "--help", "-h":
		usage()
	case "version", "--version":
		version()
	case "addr-encode":
		addrEncodeCommand.Parse(os.Args[2:])
		output(ax.AddrEncode(network, addrType, cmdInput(addrEncodeCommand)))
	case "addr-decode":
		addrDecodeCommand.Parse(os.Args[2:])
		output(ax.AddrDecode(network, cmdInput(addrDecodeCommand)))
	case "p2sh-from-script":
		p2shFromScriptCommand.Parse(os.Args[2:])
		output(ax.P2SHAddrFromScript(network, cmdInput(p2shFromScriptCommand)))
	case "base58-encode":
		base58EncodeCommand.Parse(os.Args[2:])
		output(ax.Base58Encode(cmdInput(base58EncodeCommand)))
	case "base58-decode":
		base58DecodeCommand.Parse(os.Args[2:])
		output(ax.Base58Decode(cmdInput(base58DecodeCommand)))
	case "base58check-encode":
		base58CheckEncodeCommand.Parse(os.Args[2:])
		output(ax.Base58CheckEncode(base58CheckVer, cmdInput(base58CheckEncodeCommand)))
	case "base58check-decode":
		base58CheckDecodeCommand.Parse(os.Args[2:])
		output(ax.Base58CheckDecode(cmdInput(base58CheckDecodeCommand)))
	case "blake2b256":
		blake2b256Command.Parse(os.Args[2:])
		output(ax.Blake2b256(cmdInput(blake2b256Command)))
	default:
		invalid := os.Args[1]
		if invalid[0] == '-' {
			fmt.Fprintf(os.Stderr, "unknown option: %q \n", invalid)
		} else {
			fmt.Fprintf(os.Stderr, "%q is not valid command\n", invalid)
		}
		os.Exit(1)
	}
}
