package main

import "testing"

func TestGlyphFromText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"♥", "♥"},
		{"\n  hello world  \nsecond", "hello wo"},
		{"<div><span>&amp;</span></div>", "&"},
		{"{\\rtf1\\ansi ☺}", "☺"},
		{"\x07\x08", ""},
		{"   \n\t\n", ""},
	}
	for _, tt := range tests {
		if got := glyphFromText(tt.in); got != tt.want {
			t.Errorf("glyphFromText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
