// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/derivex/model"
)

func TestWriter(t *testing.T) {
	var w Writer
	w.Lines(
		"match self {",
		"Self::A => {",
		"f()",
		"} ",
		"_ => {}",
		"}",
	)
	want := `match self {
    Self::A => {
        f()
    }
    _ => {}
}
`
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterText(t *testing.T) {
	var w Writer
	w.Line("fn f() {")
	w.Text(
		"let a = r#\"x",
		"  \"still\" {",
		"\"#; // \"",
		"",
		"let c = '\"'; let d = '\\'';",
		"  if x {  ",
		"}",
	)
	w.Line("}")
	want := "fn f() {\n" +
		"    let a = r#\"x\n" +
		"  \"still\" {\n" +
		"\"#; // \"\n" +
		"\n" +
		"    let c = '\"'; let d = '\\'';\n" +
		"      if x {  \n" +
		"    }\n" +
		"}\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint(t *testing.T) {
	clone := &Impl{
		Attrs:  []string{"#[automatically_derived]"},
		Params: []string{"T"},
		Trait:  "::core::clone::Clone",
		Self:   "X<T>",
		Where:  []string{"Option<T>: ::core::clone::Clone"},
		Items: []Node{
			&Fn{Sig: "fn clone(&self) -> Self", Body: []string{"X(<Option<T> as ::core::clone::Clone>::clone(&self.0))"}},
		},
	}
	marker := &Impl{Trait: "::core::marker::Copy", Self: "Y"}
	check := &ConstBlock{Items: []Node{&Fn{Sig: "fn _f(this: &Y)", Where: []string{"u8: Eq"}}}}
	fail := &CompileError{Message: "dump:\n\"x\""}

	got := string(Print(clone, marker, check, fail))
	want := `#[automatically_derived]
impl<T> ::core::clone::Clone for X<T>
where
    Option<T>: ::core::clone::Clone,
{
    fn clone(&self) -> Self {
        X(<Option<T> as ::core::clone::Clone>::clone(&self.0))
    }
}

impl ::core::marker::Copy for Y {}

const _: () = {
    fn _f(this: &Y)
    where
        u8: Eq,
    {}
};

::core::compile_error!("dump:\n\"x\"");
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestItem(t *testing.T) {
	tests := []struct {
		name string
		item *model.Item
		want string
	}{
		{
			name: "named",
			item: &model.Item{
				Kind:  model.KindStruct,
				Name:  "X",
				Vis:   "pub",
				Attrs: []*model.Attribute{{Text: "#[derive(Debug)]"}},
				Generics: model.Generics{
					Params: []*model.GenericParam{{Kind: model.ParamType, Name: "T", Default: "u8"}},
					Where:  []string{"T: Copy"},
				},
				Fields: model.Fields{Style: model.StyleNamed, List: []*model.Field{
					{Name: "a", Type: "T", Vis: "pub", Attrs: []*model.Attribute{{Text: "#[doc = \"a\"]"}}},
				}},
			},
			want: `#[derive(Debug)]
pub struct X<T = u8>
where
    T: Copy,
{
    #[doc = "a"]
    pub a: T,
}
`,
		},
		{
			name: "tuple",
			item: &model.Item{
				Kind: model.KindStruct,
				Name: "X",
				Fields: model.Fields{Style: model.StyleTuple, List: []*model.Field{
					{Type: "u8", Attrs: []*model.Attribute{{Text: "#[allow(dead_code)]"}}},
					{Type: "u16"},
				}},
			},
			want: "struct X(#[allow(dead_code)] u8, u16);\n",
		},
		{
			name: "unit",
			item: &model.Item{Kind: model.KindStruct, Name: "X", Fields: model.Fields{Style: model.StyleUnit}},
			want: "struct X;\n",
		},
		{
			name: "enum",
			item: &model.Item{
				Kind: model.KindEnum,
				Name: "E",
				Variants: []*model.Variant{
					{Name: "A", Fields: model.Fields{Style: model.StyleUnit}, Discriminant: "1"},
					{Name: "B", Fields: model.Fields{Style: model.StyleTuple, List: []*model.Field{{Type: "u8"}}}},
					{Name: "C", Attrs: []*model.Attribute{{Text: "#[default]"}}, Fields: model.Fields{Style: model.StyleNamed, List: []*model.Field{{Name: "x", Type: "u8"}}}},
				},
			},
			want: `enum E {
    A = 1,
    B(u8),
    #[default]
    C { x: u8 },
}
`,
		},
		{
			name: "impl",
			item: &model.Item{
				Kind: model.KindImpl,
				Impl: &model.Impl{
					Trait: "Add<&X>",
					Self:  "&X",
					Items: []*model.AssocItem{
						{Kind: model.AssocType, Name: "Output", Type: "X"},
						{Kind: model.AssocFn, Name: "add", Text: "fn add(self, rhs: &X) -> X {\n    X(self.0 + rhs.0)\n}"},
					},
				},
			},
			want: `impl Add<&X> for &X {
    type Output = X;
    fn add(self, rhs: &X) -> X {
        X(self.0 + rhs.0)
    }
}
`,
		},
		{
			name: "impl keeps string literals",
			item: &model.Item{
				Kind: model.KindImpl,
				Impl: &model.Impl{
					Trait: "Show",
					Self:  "S",
					Items: []*model.AssocItem{
						{Kind: model.AssocFn, Name: "show", Text: "fn show(&self) -> &'static str {\n    let _s = \"a\n  b {\";\n    \"}\"\n}"},
					},
				},
			},
			want: `impl Show for S {
    fn show(&self) -> &'static str {
        let _s = "a
  b {";
        "}"
    }
}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Print(Item(tt.item)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
