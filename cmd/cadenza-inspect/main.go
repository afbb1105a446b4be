// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// cadenza-inspect decodes a raw chat-platform payload into its typed
// entity and prints the result as JSON. It exists for diagnosing
// malformed payloads: the decode error names the entity, the offending
// key, and the value that was found, which is usually enough to spot
// the problem without a debugger.
//
// The input file may be JSON or JSONC (comments and trailing commas
// are stripped before parsing). Entity kinds whose payloads omit
// guild_id in some delivery contexts accept --guild-id to supply it.
//
// With --snapshot the decoded entity is additionally written to a file
// in the cache snapshot container format, which is useful for seeding
// cache fixtures from captured payloads.
//
// Exit codes: 0 on success, 1 for malformed payloads or I/O failures,
// 2 for usage errors (unknown kind, bad flags, missing context).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cadenza-project/cadenza/cache"
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/lib/version"
	"github.com/cadenza-project/cadenza/model"
	"github.com/cadenza-project/cadenza/transcoder"
)

func main() {
	os.Exit(run())
}

// decodeFunc decodes one entity kind. Kinds that never take guild
// context ignore the guildID argument.
type decodeFunc func(f *transcoder.Factory, p payload.Object, guildID optional.Value[snowflake.ID]) (any, error)

func contextFree[T any](decode func(*transcoder.Factory, payload.Object) (T, error)) decodeFunc {
	return func(f *transcoder.Factory, p payload.Object, _ optional.Value[snowflake.ID]) (any, error) {
		return decode(f, p)
	}
}

func guildScoped[T any](decode func(*transcoder.Factory, payload.Object, optional.Value[snowflake.ID]) (T, error)) decodeFunc {
	return func(f *transcoder.Factory, p payload.Object, guildID optional.Value[snowflake.ID]) (any, error) {
		return decode(f, p, guildID)
	}
}

var kinds = map[string]decodeFunc{
	"application":          contextFree((*transcoder.Factory).DecodeApplication),
	"audit-log":            contextFree((*transcoder.Factory).DecodeAuditLog),
	"ban":                  contextFree((*transcoder.Factory).DecodeGuildMemberBan),
	"channel":              guildScoped((*transcoder.Factory).DecodeChannel),
	"embed":                contextFree((*transcoder.Factory).DecodeEmbed),
	"emoji":                contextFree((*transcoder.Factory).DecodeEmoji),
	"gateway-bot":          contextFree((*transcoder.Factory).DecodeGatewayBot),
	"gateway-guild":        contextFree((*transcoder.Factory).DecodeGatewayGuild),
	"guild":                contextFree((*transcoder.Factory).DecodeRESTGuild),
	"guild-preview":        contextFree((*transcoder.Factory).DecodeGuildPreview),
	"guild-widget":         contextFree((*transcoder.Factory).DecodeGuildWidget),
	"integration":          contextFree((*transcoder.Factory).DecodeIntegration),
	"invite":               contextFree((*transcoder.Factory).DecodeInvite),
	"invite-with-metadata": contextFree((*transcoder.Factory).DecodeInviteWithMetadata),
	"known-custom-emoji":   guildScoped((*transcoder.Factory).DecodeKnownCustomEmoji),
	"member": func(f *transcoder.Factory, p payload.Object, guildID optional.Value[snowflake.ID]) (any, error) {
		return f.DecodeMember(p, guildID, optional.Undefined[model.User]())
	},
	"message":         contextFree((*transcoder.Factory).DecodeMessage),
	"own-user":        contextFree((*transcoder.Factory).DecodeMyUser),
	"partial-message": contextFree((*transcoder.Factory).DecodePartialMessage),
	"presence":        guildScoped((*transcoder.Factory).DecodeMemberPresence),
	"role":            guildScoped((*transcoder.Factory).DecodeRole),
	"user":            contextFree((*transcoder.Factory).DecodeUser),
	"vanity-url":      contextFree((*transcoder.Factory).DecodeVanityURL),
	"voice-region":    contextFree((*transcoder.Factory).DecodeVoiceRegion),
	"voice-state": func(f *transcoder.Factory, p payload.Object, guildID optional.Value[snowflake.ID]) (any, error) {
		return f.DecodeVoiceState(p, guildID, optional.Undefined[model.Member]())
	},
	"webhook": contextFree((*transcoder.Factory).DecodeWebhook),
}

type arguments struct {
	kind         string
	payloadPath  string
	guildID      optional.Value[snowflake.ID]
	snapshotPath string
	compression  cache.CompressionTag
}

func run() int {
	args, code := parseArguments(os.Args[1:])
	if code >= 0 {
		return code
	}

	raw, err := readPayload(args.payloadPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	obj, err := payload.ParseLenient(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	entity, err := kinds[args.kind](transcoder.NewFactory(), obj, args.guildID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var missing *transcoder.MissingContextError
		if errors.As(err, &missing) {
			fmt.Fprintf(os.Stderr, "hint: pass --guild-id to supply the missing context\n")
			return 2
		}
		return 1
	}

	if args.snapshotPath != "" {
		snapshot, err := cache.EncodeSnapshot(entity, args.compression)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: encode snapshot: %v\n", err)
			return 1
		}
		if err := os.WriteFile(args.snapshotPath, snapshot, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	out, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: render %s: %v\n", args.kind, err)
		return 1
	}
	fmt.Printf("%s\n", out)
	return 0
}

// parseArguments returns the parsed arguments and -1, or a zero-value
// arguments struct and the exit code when the process should stop
// before decoding anything (help, version, usage errors).
func parseArguments(argv []string) (arguments, int) {
	var args arguments

	flagSet := pflag.NewFlagSet("cadenza-inspect", pflag.ContinueOnError)
	flagSet.SortFlags = false
	kindFlag := flagSet.String("kind", "", "entity kind to decode the payload as (see --list-kinds)")
	guildFlag := flagSet.String("guild-id", "", "guild ID context for kinds whose payloads may omit guild_id")
	snapshotFlag := flagSet.String("snapshot", "", "also write the decoded entity to this file as a cache snapshot")
	compressFlag := flagSet.String("compress", "zstd", "snapshot compression: none, lz4, or zstd")
	listFlag := flagSet.Bool("list-kinds", false, "print the supported entity kinds and exit")
	versionFlag := flagSet.Bool("version", false, "print version information and exit")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cadenza-inspect --kind KIND [flags] PAYLOAD-FILE\n\n")
		fmt.Fprintf(os.Stderr, "Pass \"-\" as PAYLOAD-FILE to read from stdin.\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			return arguments{}, 0
		}
		return arguments{}, 2
	}

	if *versionFlag {
		fmt.Printf("cadenza-inspect %s\n", version.Info())
		return arguments{}, 0
	}
	if *listFlag {
		for _, kind := range kindNames() {
			fmt.Println(kind)
		}
		return arguments{}, 0
	}

	if *kindFlag == "" {
		fmt.Fprintf(os.Stderr, "error: --kind is required\n")
		flagSet.Usage()
		return arguments{}, 2
	}
	if _, ok := kinds[*kindFlag]; !ok {
		fmt.Fprintf(os.Stderr, "error: unknown kind %q (supported: %s)\n", *kindFlag, strings.Join(kindNames(), ", "))
		return arguments{}, 2
	}
	args.kind = *kindFlag

	if flagSet.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "error: expected exactly one payload file argument\n")
		flagSet.Usage()
		return arguments{}, 2
	}
	args.payloadPath = flagSet.Arg(0)

	if *guildFlag != "" {
		id, err := snowflake.Parse(*guildFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid --guild-id: %v\n", err)
			return arguments{}, 2
		}
		args.guildID = optional.Present(id)
	}

	args.snapshotPath = *snapshotFlag
	tag, err := cache.ParseCompressionTag(*compressFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid --compress: %v\n", err)
		return arguments{}, 2
	}
	args.compression = tag

	return args, -1
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
