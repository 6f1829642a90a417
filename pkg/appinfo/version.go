// Package appinfo defines application build informations.
package appinfo

import (
	"fmt"
	"io"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/containerkit/imageref/pkg/cmdhelper"
	"github.com/containerkit/imageref/pkg/errdefs"
)

// Pre-defined variables set by LDFLAGS like below:
//
//	go build -ldflags '-X github.com/containerkit/imageref/pkg/appinfo.version=v1.0.0'
var (
	// version value from the release tag
	version = "dev"
	// gitCommit output from `git rev-parse HEAD`
	gitCommit = ""
	// buildDate output from `date -u +'%Y-%m-%dT%H:%M:%SZ'`
	buildDate = ""
)

// Version records the application's version and the environment it was
// built in.
type Version struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// GetVersion returns the Version of the application.
func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns the short version string.
func (v Version) Short() string {
	if len(v.GitCommit) > 7 {
		return v.Version + "-" + v.GitCommit[:8]
	}
	return v.Version
}

// Write renders the version to w in the given format, one of "text",
// "json" or "yaml". When short is set only the short version string is
// written regardless of format.
func (v Version) Write(w io.Writer, format string, short bool) error {
	if short {
		cmdhelper.Fprintf(w, "%s", v.Short())
		return nil
	}
	switch format {
	case "", "text":
		cmdhelper.Fprintf(w, "Version:    %s", v.Version)
		if v.GitCommit != "" {
			cmdhelper.Fprintf(w, "Git commit: %s", v.GitCommit)
		}
		if v.BuildDate != "" {
			cmdhelper.Fprintf(w, "Built:      %s", v.BuildDate)
		}
		cmdhelper.Fprintf(w, "Go version: %s", v.GoVersion)
		cmdhelper.Fprintf(w, "Platform:   %s", v.Platform)
	case "json":
		out, err := cmdhelper.PrettifyJSON(v)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(w, "%s", out)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = w.Write(out)
	default:
		return errdefs.Newf(errdefs.ErrUnsupported, "unsupported format %q", format)
	}
	return nil
}
