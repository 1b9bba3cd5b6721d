package parser

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/esparse/syntax"
)

var fuzzSeeds = []string{
	"",
	"var a = 1;",
	"a / b / c",
	"x = /re/g.exec(s)",
	"`a${b}c${`d${e}`}`",
	"(a, b) => a + b",
	"({a, b: [c]} = d)",
	"function* g() { yield* h(); }",
	"<a b={c}>text &amp; {d}</a>",
	"'use strict'; with (o) {}",
	"for (var k in o) for (x of y) ;",
	"a\n++b",
	"/* open",
	"'\\u{110000}'",
	"<a></b>",
	"((((((((((a))))))))))",
	"{ get a() {}, set a(v) {} }",
}

func FuzzParse(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		// Any input either parses or fails with an error; nothing panics.
		for _, features := range []syntax.Features{syntax.DefaultFeatures, syntax.ES6JSX} {
			_, _ = Parse(context.Background(), src,
				WithFeatures(features),
				WithRange(true),
				WithLoc(true),
				WithAttachComment(true),
				WithTokens(true),
				WithTolerant(true),
			)
			_, _ = Parse(context.Background(), src, WithFeatures(features))
		}
	})
}

func FuzzTokenize(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		stream, err := Tokenize(context.Background(), src,
			WithFeatures(syntax.ES6),
			WithComments(true),
			WithRange(true),
			WithLoc(true),
			WithTolerant(true),
		)
		if err != nil {
			t.Fatalf("tolerant tokenize failed: %v", err)
		}
		// Every token is a slice of the source at its range.
		prev := 0
		for _, tok := range stream.Tokens {
			start, end := tok.Range[0], tok.Range[1]
			if start < prev || end < start || end > len(src) {
				t.Fatalf("token %q has bad range [%d, %d)", tok.Value, start, end)
			}
			if src[start:end] != tok.Value {
				t.Fatalf("token value %q does not match source %q", tok.Value, src[start:end])
			}
			prev = end
		}
	})
}
