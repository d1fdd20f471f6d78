// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"path/filepath"
	"strings"
	"text/template"

	"gitlab.com/accumulatenetwork/ircgen/tools/internal/typegen"
)

var Templates = typegen.NewTemplateLibrary(template.FuncMap{
	"lcName": lcName,
})

// Types is the model the templates are executed with.
type Types struct {
	Package string
	Source  string
	Name    string
	Prefix  string
	Values  []*TypeValue
}

// TypeValue is a named value of the generated type.
type TypeValue struct {
	*typegen.Code
	Type *Types
	ID   int

	// Parse is false if an earlier value has the same literal.
	Parse bool
}

// convert converts the code table into the template model.
func convert(codes []*typegen.Code, cfg *Config) *Types {
	ttypes := new(Types)
	ttypes.Package = cfg.Package
	ttypes.Source = filepath.Base(cfg.Input)
	ttypes.Name = cfg.Type
	if cfg.Prefix {
		ttypes.Prefix = cfg.Type
	}

	seen := map[string]bool{}
	ttypes.Values = make([]*TypeValue, len(codes))
	for i, code := range codes {
		v := new(TypeValue)
		v.Code = code
		v.Type = ttypes
		v.ID = i + 1
		v.Parse = !seen[code.Literal]
		seen[code.Literal] = true
		ttypes.Values[i] = v
	}
	return ttypes
}

// UnknownName is the name of the constructor for values not in the table.
func (t *Types) UnknownName() string { return t.Prefix + "Unknown" }

// Reserved returns the names declared by the generated file other than the
// values.
func (t *Types) Reserved() []string {
	return []string{t.Name, t.UnknownName(), "Parse" + t.Name}
}

func (t *Types) Replies() []*TypeValue { return t.filter(typegen.CodeKindReply) }
func (t *Types) Errors() []*TypeValue  { return t.filter(typegen.CodeKindError) }

// Parsed returns the values that can be parsed, in order.
func (t *Types) Parsed() []*TypeValue {
	var values []*TypeValue
	for _, v := range t.Values {
		if v.Parse {
			values = append(values, v)
		}
	}
	return values
}

func (t *Types) filter(kind typegen.CodeKind) []*TypeValue {
	var values []*TypeValue
	for _, v := range t.Values {
		if v.Kind == kind {
			values = append(values, v)
		}
	}
	return values
}

func lcName(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// VarName is the name the value is declared with.
func (v *TypeValue) VarName() string { return v.Type.Prefix + v.Identifier }
