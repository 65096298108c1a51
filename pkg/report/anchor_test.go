package report

import "testing"

func TestAnchor(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"serde 1.0.200", "serde-10200"},
		{"serde_json 1.0.1", "serde_json-101"},
		{"proc-macro2 1.0.86", "proc-macro2-1086"},
		{"  Tokio 1.38.0  ", "tokio-1380"},
		{"ring 0.17.8+build.1", "ring-0178build1"},
		{"windows-sys 0.52.0-rc.1", "windows-sys-0520-rc1"},
		{"a - b", "a-b"},
		{"a\t\tb", "a-b"},
		{"a b", "a-b"},
		{"ünïcode 1.0", "ünïcode-10"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Anchor(tt.title); got != tt.want {
				t.Errorf("Anchor(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "MIT License", "```"},
		{"inline code", "use `foo` and ``bar``", "```"},
		{"contains fence", "```\ncode\n```", "````"},
		{"contains long fence", "`````", "``````"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fence(tt.content); got != tt.want {
				t.Errorf("Fence() = %q, want %q", got, tt.want)
			}
		})
	}
}
