package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfoShortensRevision(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "", ""
	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)
	if Version != "v1.2.3" {
		t.Fatalf("expected module version, got %q", Version)
	}
	if Commit != "0123456-dirty" {
		t.Fatalf("expected short dirty commit, got %q", Commit)
	}
	if !strings.Contains(Full(), "0123456-dirty") {
		t.Fatalf("unexpected full version %q", Full())
	}
}

func TestFromBuildInfoIgnoresDevel(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "", ""
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	if Version != "" || Commit != "" {
		t.Fatalf("expected nothing filled, got %q/%q", Version, Commit)
	}
	fromBuildInfo(nil, false)
}
