package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/novanotes/nova/internal/buildinfo"
)

type versionInfo struct {
	Version   string
	Commit    string
	Dirty     bool
	GoVersion string
}

var readBuildInfo = debug.ReadBuildInfo

// versionTemplate renders --version output. Only {{.Name}} and {{.Version}}
// are filled in by cobra.
func versionTemplate(info versionInfo) string {
	tmpl := "{{.Name}} {{.Version}}\n"
	if info.Commit != "" {
		commit := info.Commit
		if info.Dirty {
			commit += "-dirty"
		}
		tmpl += fmt.Sprintf("commit: %s\n", commit)
	}
	return tmpl + fmt.Sprintf("go: %s %s/%s\n", info.GoVersion, runtime.GOOS, runtime.GOARCH)
}

// currentVersionInfo prefers module build info and falls back to the
// ldflags-injected values for anything it lacks.
func currentVersionInfo() versionInfo {
	info := versionInfo{GoVersion: runtime.Version()}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if v := bi.Main.Version; v != "(devel)" {
			info.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = buildinfo.Version
	}
	if info.Version == "" {
		info.Version = "devel"
	}
	if info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	return info
}
