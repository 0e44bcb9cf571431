package main

import (
	"runtime/debug"
	"testing"
)

func TestVersionFrom(t *testing.T) {
	cases := []struct {
		name string
		info *debug.BuildInfo
		want string
	}{
		{name: "no build info", want: "0.1.0"},
		{
			name: "tagged module",
			info: &debug.BuildInfo{Main: debug.Module{Version: "v0.2.1"}},
			want: "v0.2.1",
		},
		{
			name: "local build without vcs",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "0.1.0-dev",
		},
		{
			name: "local build with commit",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "0.1.0-dev+0123456.dirty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := versionFrom("0.1.0", tc.info); got != tc.want {
				t.Fatalf("versionFrom() = %q, want %q", got, tc.want)
			}
		})
	}
}
