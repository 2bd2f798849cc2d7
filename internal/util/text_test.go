package util

import (
	"reflect"
	"testing"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Deal 2  damage", want: "Deal 2 damage"},
		{name: "tags", input: "<span style=\"color:#fff\">Active 3:</span> Give <b>+2</b> Armor", want: "Active 3: Give +2 Armor"},
		{name: "line breaks", input: "First<br/>Second<br>Third", want: "First\nSecond\nThird"},
		{name: "entities", input: "Rock &amp; Roll", want: "Rock & Roll"},
		{name: "empty", input: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlainText(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("After you play a blue spell there is a chance", 20)
	want := []string{"After you play a", "blue spell there is", "a chance"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}

	got = WrapText("one\ntwo three", 20)
	want = []string{"one", "two three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}

	if got := WrapText("", 20); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("got %q", got)
	}
}
