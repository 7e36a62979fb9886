package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	short := "Print " + name + " version"
	if strings.TrimSpace(name) == "" {
		short = "Print version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			info := readBuildInfo()

			prefix := "version:"
			if strings.TrimSpace(name) != "" {
				prefix = name + " version:"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s from %s (%s)\n", prefix, info.revision(), info.timestamp(), info.goVersion)
		},
	}
}

type buildInfo struct {
	hash      string
	time      string
	modified  bool
	goVersion string
}

// revision returns the last git hash, or @latest if the binary contains uncommitted code.
func (i buildInfo) revision() string {
	if i.modified || i.hash == "" {
		return "@latest"
	}

	return i.hash
}

func (i buildInfo) timestamp() string {
	if i.modified || i.time == "" {
		return time.Now().UTC().Format(time.RFC3339)
	}

	return i.time
}

// readBuildInfo returns the vcs information embedded by `go build`.
// `go run` and `go test` do not contain that info.
func readBuildInfo() buildInfo {
	info := buildInfo{goVersion: runtime.Version()}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range bi.Settings { // called from a Go test info.Settings are always empty: []
		switch setting.Key {
		case "vcs.revision":
			info.hash = setting.Value
		case "vcs.time":
			info.time = setting.Value
		case "vcs.modified":
			info.modified = setting.Value == "true"
		}
	}

	return info
}
