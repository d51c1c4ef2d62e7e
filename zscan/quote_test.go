package zscan

import "testing"

func TestUnquote(t *testing.T) {
	tests := []struct {
		input   string
		content string
		end     int
	}{
		{`'abc'`, "abc", 4},
		{`''`, "", 1},
		{`"a'b"`, "a'b", 4},
		{"`abc`", "abc", 4},
		{"`a\\nb`", "a\nb", 5},
		{"`\\x41\\x42`", "AB", 9},
		{"`\\101`", "A", 5},
		{"`\\u00e9`", "é", 7},
		{"`\\U0001F600`", "\U0001F600", 11},
		{"`\\e\\a`", "\x1b\a", 5},
		{"`\\q`", "q", 3},
		{"'abc", "abc", 4},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			buf := []byte(test.input)
			content, end := Unquote(buf, 0)
			if string(content) != test.content {
				t.Fatalf("expected %q, got %q", test.content, content)
			}
			if end != test.end {
				t.Fatalf("expected end %d, got %d", test.end, end)
			}
		})
	}
}

func TestUnquoteInPlace(t *testing.T) {
	buf := []byte("`a\\tb`")
	content, _ := Unquote(buf, 0)
	if &content[0] != &buf[1] {
		t.Fatal("content must alias the buffer")
	}
}
