package discord

import (
	"testing"
)

func TestFormatMarkdown_Passthrough(t *testing.T) {
	in := "# Title\n\n**bold** and *italic*\n> quote\n- item"
	if got := FormatMarkdown(in); got != in {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestFormatMarkdown_Image(t *testing.T) {
	got := FormatMarkdown("see:\n![chart](https://example.com/c.png)\nend")
	want := "see:\nhttps://example.com/c.png\nend"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatMarkdown_Table(t *testing.T) {
	in := "| Name | Qty |\n|------|-----|\n| apple | 3 |\n| fig | 12 |"
	want := "```\n" +
		"Name  | Qty\n" +
		"------+----\n" +
		"apple | 3\n" +
		"fig   | 12\n" +
		"```"
	if got := FormatMarkdown(in); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatMarkdown_CodeBlockUntouched(t *testing.T) {
	in := "```\n| a | b |\n![x](y)\n```"
	if got := FormatMarkdown(in); got != in {
		t.Errorf("code block should be verbatim, got %q", got)
	}
}

func TestFormatMarkdown_CRLF(t *testing.T) {
	if got := FormatMarkdown("a\r\nb\r\n"); got != "a\nb" {
		t.Errorf("got %q", got)
	}
}
