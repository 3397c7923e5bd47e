// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gonbt/nbt"
)

type globalFlags struct {
	flagset      *flag.FlagSet
	file         string
	littleEndian bool
	jsonOutput   bool
	debug        bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to NBT file to dump (gzip/zlib framing is auto-detected)",
	)
	f.flagset.BoolVar(
		&f.littleEndian,
		"little-endian",
		false,
		"read multi-byte scalars as little-endian (Bedrock-edition data)",
	)
	f.flagset.BoolVar(
		&f.jsonOutput,
		"json",
		false,
		"print the decoded tree as JSON instead of the structure dump",
	)
	f.flagset.BoolVar(
		&f.debug,
		"debug",
		false,
		"enable debug logging of tag dispatch",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if f.file == "" {
		fmt.Println("You must specify a file with -file")
		os.Exit(1)
	}

	data, err := os.ReadFile(f.file)
	if err != nil {
		fmt.Printf("Failed to read file: %s\n", err)
		os.Exit(1)
	}

	raw, err := nbt.Decompress(data)
	if err != nil {
		fmt.Printf("Failed to decompress file: %s\n", err)
		os.Exit(1)
	}

	opts := []nbt.DecoderOptionFunc{}
	if f.littleEndian {
		opts = append(opts, nbt.WithByteOrder(binary.LittleEndian))
	}
	if f.debug {
		logger := slog.New(
			slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug},
			),
		)
		opts = append(opts, nbt.WithLogger(logger))
	}

	name, value, err := nbt.DecodeNamed(raw, opts...)
	if err != nil {
		fmt.Printf("Failed to decode file: %s\n", err)
		os.Exit(1)
	}

	if f.jsonOutput {
		jsonData, err := json.MarshalIndent(nbt.ToGo(value), "", "  ")
		if err != nil {
			fmt.Printf("Failed to render JSON: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))
	} else {
		fmt.Printf("Root name: %q\n", name)
		fmt.Print(nbt.DumpValueStructure(value, ""))
	}
}
