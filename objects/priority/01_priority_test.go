// /home/krylon/go/src/github.com/blicero/herald/objects/priority/01_priority_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 19:50:31 krylon>

package priority

import "testing"

func TestParse(t *testing.T) {
	type testCase struct {
		input  string
		expect Priority
		err    bool
	}

	var cases = []testCase{
		{input: "HIGH", expect: High},
		{input: "high", expect: High},
		{input: " Medium ", expect: Medium},
		{input: "low", expect: Low},
		{input: "", err: true},
		{input: "urgent", err: true},
	}

	for _, c := range cases {
		var p, err = Parse(c.input)

		if c.err {
			if err == nil {
				t.Errorf("Parsing %q should have failed, got %s", c.input, p)
			}
		} else if err != nil {
			t.Errorf("Cannot parse %q: %s", c.input, err.Error())
		} else if p != c.expect {
			t.Errorf("Unexpected result for %q: %s (expected %s)",
				c.input,
				p,
				c.expect)
		}
	}
} // func TestParse(t *testing.T)

func TestOrder(t *testing.T) {
	if !(High < Medium && Medium < Low) {
		t.Error("Priorities must sort High < Medium < Low")
	}
} // func TestOrder(t *testing.T)

func TestMarshalText(t *testing.T) {
	for _, p := range []Priority{High, Medium, Low} {
		var (
			err  error
			buf  []byte
			back Priority
		)

		if buf, err = p.MarshalText(); err != nil {
			t.Errorf("Cannot marshal %s: %s", p, err.Error())
		} else if err = back.UnmarshalText(buf); err != nil {
			t.Errorf("Cannot unmarshal %q: %s", buf, err.Error())
		} else if back != p {
			t.Errorf("Round trip of %s yielded %s", p, back)
		}
	}

	if _, err := Priority(42).MarshalText(); err == nil {
		t.Error("Marshalling an invalid Priority should fail")
	}
} // func TestMarshalText(t *testing.T)
