package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-flaget/flaget"
	"github.com/dzonerzy/go-flaget/internal/suggest"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var formats = []string{formatJSON, formatYAML, formatTOML}

func parseFormat(s string) (string, error) {
	switch s {
	case formatJSON, formatYAML, formatTOML:
		return s, nil
	}
	msg := fmt.Sprintf("unknown output format %q (want json, yaml or toml)", s)
	if near := suggest.NewMatcher(2).Closest(s, formats); near != "" {
		msg += fmt.Sprintf("; did you mean %q?", near)
	}
	return "", &UsageError{Err: errors.New(msg)}
}

// document is rendered as is for json and yaml, which keep flag insertion
// order. TOML has no ordered tables, so it gets the native form.
type document interface {
	native() map[string]any
}

type parseDocument struct {
	Flags       *flaget.Flags  `json:"flags" yaml:"flags"`
	Positionals []string       `json:"positionals" yaml:"positionals"`
	Tail        []string       `json:"tail" yaml:"tail"`
	Args        map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

func newParseDocument(res *flaget.Result) parseDocument {
	doc := parseDocument{
		Flags:       res.Flags,
		Positionals: nonNil(res.Positionals),
		Tail:        nonNil(res.Tail),
	}
	for name, arg := range res.Args {
		v := arg.Interface()
		if v == nil {
			continue
		}
		if doc.Args == nil {
			doc.Args = make(map[string]any, len(res.Args))
		}
		doc.Args[name] = v
	}
	return doc
}

func (d parseDocument) native() map[string]any {
	m := map[string]any{
		"flags":       d.Flags.Native(),
		"positionals": d.Positionals,
		"tail":        d.Tail,
	}
	if d.Args != nil {
		m["args"] = d.Args
	}
	return m
}

type flatDocument struct {
	*flaget.Flags
}

func (d flatDocument) native() map[string]any { return d.Flags.Native() }

func render(w io.Writer, format string, doc document) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(doc.native()); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	}
	_, err := parseFormat(format)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
