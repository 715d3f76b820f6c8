// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Format    string        `flag:"format" desc:"payload encoding"`
		Pretty    bool          `flag:"pretty,p" desc:"indent JSON output"`
		Count     int           `flag:"count" desc:"number of items"`
		Offset    int64         `flag:"offset" desc:"byte offset"`
		Tolerance float64       `flag:"tolerance" desc:"rounding tolerance"`
		Timeout   time.Duration `flag:"timeout" desc:"request timeout"`
		Tables    []string      `flag:"table" desc:"table list"`
		Untagged  string        // no flag tag — should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--format", "cbor",
		"-p",
		"--count", "42",
		"--offset", "1099511627776",
		"--tolerance", "0.001",
		"--timeout", "30s",
		"--table", "KEY,TYPE_ID,OP_ID",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "cbor" {
		t.Errorf("Format = %q, want %q", p.Format, "cbor")
	}
	if !p.Pretty {
		t.Error("Pretty = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if p.Offset != 1099511627776 {
		t.Errorf("Offset = %d, want 1099511627776", p.Offset)
	}
	if p.Tolerance != 0.001 {
		t.Errorf("Tolerance = %f, want 0.001", p.Tolerance)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if len(p.Tables) != 3 || p.Tables[0] != "KEY" || p.Tables[1] != "TYPE_ID" || p.Tables[2] != "OP_ID" {
		t.Errorf("Tables = %v, want [KEY TYPE_ID OP_ID]", p.Tables)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Format    string        `flag:"format" desc:"payload encoding" default:"json"`
		Count     int           `flag:"count" desc:"count" default:"8080"`
		Offset    int64         `flag:"offset" desc:"byte offset" default:"100"`
		Tolerance float64       `flag:"tolerance" desc:"tolerance" default:"0.5"`
		Timeout   time.Duration `flag:"timeout" desc:"timeout" default:"10s"`
		Debug     bool          `flag:"debug" desc:"debug mode" default:"true"`
		Tables    []string      `flag:"table" desc:"tables" default:"KEY,TYPE_ID"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	// Parse with no arguments — should get all defaults.
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "json" {
		t.Errorf("Format = %q, want %q", p.Format, "json")
	}
	if p.Count != 8080 {
		t.Errorf("Count = %d, want 8080", p.Count)
	}
	if p.Offset != 100 {
		t.Errorf("Offset = %d, want 100", p.Offset)
	}
	if p.Tolerance != 0.5 {
		t.Errorf("Tolerance = %f, want 0.5", p.Tolerance)
	}
	if p.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", p.Timeout)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
	if len(p.Tables) != 2 || p.Tables[0] != "KEY" || p.Tables[1] != "TYPE_ID" {
		t.Errorf("Tables = %v, want [KEY TYPE_ID]", p.Tables)
	}
}

func TestBindFlags_DefaultsOverriddenByCLI(t *testing.T) {
	type params struct {
		Format   string `flag:"format" desc:"payload encoding" default:"json"`
		Compress string `flag:"compress" desc:"payload compression" default:"none"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--format", "cbor", "--compress", "zstd"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "cbor" {
		t.Errorf("Format = %q, want %q", p.Format, "cbor")
	}
	if p.Compress != "zstd" {
		t.Errorf("Compress = %q, want %q", p.Compress, "zstd")
	}
}

// TestParamsBinder implements FlagBinder for testing. Named and embedded
// fields use this to verify that BindFlags calls AddFlags instead of
// reflecting tags. Exported so that reflect can call Interface() on it
// when embedded.
type TestParamsBinder struct {
	Alpha string
	Beta  int
}

func (b *TestParamsBinder) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&b.Alpha, "alpha", "", "alpha value")
	flagSet.IntVar(&b.Beta, "beta", 0, "beta value")
}

func TestBindFlags_NamedFlagBinder(t *testing.T) {
	type params struct {
		Binder TestParamsBinder
		Extra  string `flag:"extra" desc:"extra flag"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--alpha", "hello", "--beta", "7", "--extra", "world"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Binder.Alpha != "hello" {
		t.Errorf("Binder.Alpha = %q, want %q", p.Binder.Alpha, "hello")
	}
	if p.Binder.Beta != 7 {
		t.Errorf("Binder.Beta = %d, want 7", p.Binder.Beta)
	}
	if p.Extra != "world" {
		t.Errorf("Extra = %q, want %q", p.Extra, "world")
	}
}

func TestBindFlags_EmbeddedFlagBinder(t *testing.T) {
	type params struct {
		TestParamsBinder
		Extra string `flag:"extra" desc:"extra flag"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--alpha", "hello", "--extra", "world"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Alpha != "hello" {
		t.Errorf("Alpha = %q, want %q", p.Alpha, "hello")
	}
	if p.Extra != "world" {
		t.Errorf("Extra = %q, want %q", p.Extra, "world")
	}
}

func TestBindFlags_EmbeddedStructRecursion(t *testing.T) {
	type inner struct {
		Foo string `flag:"foo" desc:"foo flag"`
		Bar int    `flag:"bar" desc:"bar flag"`
	}
	type params struct {
		inner
		Baz bool `flag:"baz" desc:"baz flag"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--foo", "hello", "--bar", "5", "--baz"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Foo != "hello" {
		t.Errorf("Foo = %q, want %q", p.Foo, "hello")
	}
	if p.Bar != 5 {
		t.Errorf("Bar = %d, want 5", p.Bar)
	}
	if !p.Baz {
		t.Error("Baz = false, want true")
	}
}

func TestBindFlags_JSONOutputEmbedding(t *testing.T) {
	type params struct {
		JSONOutput
		Table string `flag:"table" desc:"table name"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--json", "--table", "KEY"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Table != "KEY" {
		t.Errorf("Table = %q, want %q", p.Table, "KEY")
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Out    string `flag:"out,o" desc:"output path"`
		Pretty bool   `flag:"pretty,p" desc:"indent output"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"-o", "/tmp/out", "-p"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Out != "/tmp/out" {
		t.Errorf("Out = %q, want %q", p.Out, "/tmp/out")
	}
	if !p.Pretty {
		t.Error("Pretty = false, want true")
	}
}

func TestBindFlags_ErrorNotPointer(t *testing.T) {
	type params struct {
		Name string `flag:"name"`
	}
	var p params
	err := BindFlags(p, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil {
		t.Fatal("expected error for non-pointer, got nil")
	}
	if want := "params must be a pointer to a struct"; !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want substring %q", err.Error(), want)
	}
}

func TestBindFlags_ErrorNotStruct(t *testing.T) {
	s := "not a struct"
	err := BindFlags(&s, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil {
		t.Fatal("expected error for non-struct, got nil")
	}
}

func TestBindFlags_ErrorBadDefault(t *testing.T) {
	type params struct {
		Count int `flag:"count" default:"not_a_number"`
	}
	var p params
	err := BindFlags(&p, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil {
		t.Fatal("expected error for bad default, got nil")
	}
}

func TestFlagsFromParams(t *testing.T) {
	type params struct {
		Format string `flag:"format" desc:"payload encoding" default:"json"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse([]string{"--format", "cbor"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Format != "cbor" {
		t.Errorf("Format = %q, want %q", p.Format, "cbor")
	}
}

func TestFlagsFromParams_DefaultUsedWhenNotParsed(t *testing.T) {
	type params struct {
		Format string `flag:"format" desc:"payload encoding" default:"json"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Format != "json" {
		t.Errorf("Format = %q, want %q", p.Format, "json")
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil input, got none")
		}
	}()
	FlagsFromParams("test", nil)
}
