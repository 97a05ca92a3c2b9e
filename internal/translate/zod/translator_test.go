// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func obj(props ...jschema.Property) *jschema.Node {
	return &jschema.Node{Type: jschema.Object, Object: &jschema.ObjectShape{Properties: props}}
}

func prop(name string, n *jschema.Node) jschema.Property {
	return jschema.Property{Name: name, Schema: n}
}

func typed(t jschema.InstanceType) *jschema.Node {
	return &jschema.Node{Type: t}
}

func constOf(v any) *jschema.Node {
	return &jschema.Node{Const: &v}
}

func emit(t *testing.T, n *jschema.Node) (string, bool) {
	t.Helper()
	return translate.Emit(n, &resolver{})
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		node *jschema.Node
		want string
	}{
		{
			name: "reference strips definitions prefix",
			node: &jschema.Node{Ref: "#/definitions/Foo"},
			want: "z.lazy(() => Foo)",
		},
		{
			name: "reference strips $defs prefix",
			node: &jschema.Node{Ref: "#/$defs/Bar"},
			want: "z.lazy(() => Bar)",
		},
		{
			name: "single value enum",
			node: &jschema.Node{Enum: []any{5.0}},
			want: "z.literal(5)",
		},
		{
			name: "numeric enum",
			node: &jschema.Node{Enum: []any{1.0, 2.0, 3.0}},
			want: "z.union([z.literal(1), z.literal(2), z.literal(3), ])",
		},
		{
			name: "string enum",
			node: &jschema.Node{Type: jschema.String, Enum: []any{"b", "a"}},
			want: `z.enum(["b", "a", ])`,
		},
		{
			name: "null",
			node: typed(jschema.Null),
			want: "z.null()",
		},
		{
			name: "boolean",
			node: typed(jschema.Boolean),
			want: "z.boolean()",
		},
		{
			name: "number",
			node: typed(jschema.Number),
			want: "z.number()",
		},
		{
			name: "integer",
			node: typed(jschema.Integer),
			want: "z.number().int()",
		},
		{
			name: "string",
			node: typed(jschema.String),
			want: "z.string()",
		},
		{
			name: "date-time string",
			node: &jschema.Node{Type: jschema.String, Format: "date-time"},
			want: "z.coerce.date()",
		},
		{
			name: "other string format",
			node: &jschema.Node{Type: jschema.String, Format: "uuid"},
			want: "z.string()",
		},
		{
			name: "typed const",
			node: &jschema.Node{Type: jschema.String, Const: ptr[any]("a")},
			want: `z.literal("a")`,
		},
		{
			name: "untyped const",
			node: constOf(true),
			want: "z.literal(true)",
		},
		{
			name: "record",
			node: &jschema.Node{Type: jschema.Object, Object: &jschema.ObjectShape{AdditionalProperties: typed(jschema.String)}},
			want: "z.record(z.string())",
		},
		{
			name: "object keeps declaration order",
			node: obj(prop("a", typed(jschema.String)), prop("b", typed(jschema.Integer))),
			want: "z.object({a: z.string(), b: z.number().int(), })",
		},
		{
			name: "named properties win over additional properties",
			node: &jschema.Node{Type: jschema.Object, Object: &jschema.ObjectShape{
				Properties:           jschema.Properties{prop("a", typed(jschema.Boolean))},
				AdditionalProperties: typed(jschema.String),
			}},
			want: "z.object({a: z.boolean(), })",
		},
		{
			name: "empty object",
			node: obj(),
			want: "z.object({})",
		},
		{
			name: "non-identifier keys are quoted",
			node: obj(prop("content-type", typed(jschema.String)), prop("$id", typed(jschema.String))),
			want: `z.object({"content-type": z.string(), $id: z.string(), })`,
		},
		{
			name: "array",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: typed(jschema.Number)}},
			want: "z.array(z.number())",
		},
		{
			name: "array with only max bound",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: typed(jschema.Number), MaxItems: ptr(2)}},
			want: "z.array(z.number())",
		},
		{
			name: "fixed length array is a tuple",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: typed(jschema.Number), MinItems: ptr(2), MaxItems: ptr(2)}},
			want: "z.tuple([z.number(), z.number(), ])",
		},
		{
			name: "positional tuple",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{
				ItemsArray: []*jschema.Node{typed(jschema.String), typed(jschema.Integer)},
				MinItems:   ptr(2),
				MaxItems:   ptr(2),
			}},
			want: "z.tuple([z.string(), z.number().int(), ])",
		},
		{
			name: "single element item list is not ambiguous",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{ItemsArray: []*jschema.Node{typed(jschema.String)}}},
			want: "z.array(z.string())",
		},
		{
			name: "item list becomes a union and skips failures",
			node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{ItemsArray: []*jschema.Node{
				typed(jschema.String), {}, typed(jschema.Boolean),
			}}},
			want: "z.array(z.union([z.string(), z.boolean(), ]))",
		},
		{
			name: "type sequence",
			node: &jschema.Node{Types: []jschema.InstanceType{jschema.String, jschema.Null}},
			want: "z.union([z.string(), z.null(), ])",
		},
		{
			name: "plain oneOf skips failures",
			node: &jschema.Node{OneOf: []*jschema.Node{typed(jschema.String), {}, typed(jschema.Number)}},
			want: "z.union([z.string(), z.number(), ])",
		},
		{
			name: "enum wins over oneOf and type",
			node: &jschema.Node{Enum: []any{"x"}, OneOf: []*jschema.Node{typed(jschema.String)}, Type: jschema.Number},
			want: `z.literal("x")`,
		},
		{
			name: "reference wins over everything",
			node: &jschema.Node{Ref: "#/definitions/A", Enum: []any{"x"}, Type: jschema.String},
			want: "z.lazy(() => A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := emit(t, tt.node)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmit_Absent(t *testing.T) {
	untyped := &jschema.Node{Title: "nothing"}

	tests := []struct {
		name string
		node *jschema.Node
	}{
		{name: "no classifying attribute", node: untyped},
		{name: "nil node", node: nil},
		{name: "object property fails", node: obj(prop("a", typed(jschema.String)), prop("b", untyped))},
		{name: "record value fails", node: &jschema.Node{Type: jschema.Object, Object: &jschema.ObjectShape{AdditionalProperties: untyped}}},
		{name: "object without shape", node: typed(jschema.Object)},
		{name: "array without shape", node: typed(jschema.Array)},
		{name: "array without items", node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{}}},
		{name: "array item fails", node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: untyped}}},
		{name: "every array union item fails", node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{ItemsArray: []*jschema.Node{untyped, untyped}}}},
		{name: "positional tuple item fails", node: &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{
			ItemsArray: []*jschema.Node{typed(jschema.String), untyped},
			MinItems:   ptr(2),
			MaxItems:   ptr(2),
		}}},
		{name: "type sequence member fails", node: &jschema.Node{Types: []jschema.InstanceType{jschema.String, jschema.Object}}},
		{name: "every oneOf branch fails", node: &jschema.Node{OneOf: []*jschema.Node{untyped, untyped}}},
		{name: "unknown type", node: typed("date")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := emit(t, tt.node)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestEmit_DiscriminatedUnion(t *testing.T) {
	tests := []struct {
		name     string
		branches []*jschema.Node
		want     string
	}{
		{
			name: "type field",
			branches: []*jschema.Node{
				obj(prop("type", constOf("a")), prop("x", typed(jschema.Number))),
				obj(prop("type", constOf("b")), prop("y", typed(jschema.String))),
			},
			want: `z.discriminatedUnion("type", [` +
				`z.object({type: z.literal("a"), x: z.number(), }), ` +
				`z.object({type: z.literal("b"), y: z.string(), }), ])`,
		},
		{
			name: "kind field",
			branches: []*jschema.Node{
				obj(prop("id", typed(jschema.String)), prop("kind", constOf("a"))),
				obj(prop("kind", constOf("b")), prop("id", typed(jschema.String))),
			},
			want: `z.discriminatedUnion("kind", [` +
				`z.object({id: z.string(), kind: z.literal("a"), }), ` +
				`z.object({kind: z.literal("b"), id: z.string(), }), ])`,
		},
		{
			name: "other shared field",
			branches: []*jschema.Node{
				obj(prop("tag", constOf("a"))),
				obj(prop("tag", constOf("b"))),
			},
			want: `z.discriminatedUnion("tag", [z.object({tag: z.literal("a"), }), z.object({tag: z.literal("b"), }), ])`,
		},
		{
			name: "no shared field",
			branches: []*jschema.Node{
				obj(prop("a", typed(jschema.String))),
				obj(prop("b", typed(jschema.String))),
			},
			want: "z.union([z.object({a: z.string(), }), z.object({b: z.string(), }), ])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := emit(t, &jschema.Node{OneOf: tt.branches})
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_Declarations(t *testing.T) {
	doc := &jschema.Document{Root: obj(prop("ignored", typed(jschema.String)))}
	doc.Definitions.Set("Tree", obj(
		prop("value", typed(jschema.Integer)),
		prop("children", &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: &jschema.Node{Ref: "#/definitions/Tree"}}}),
	))
	doc.Definitions.Set("Broken", obj(prop("x", &jschema.Node{})))
	doc.Definitions.Set("Name", typed(jschema.String))

	got := (&Translator{}).Translate(doc)

	want := translate.Result{
		"Tree": "export const Tree = z.object({value: z.number().int(), children: z.array(z.lazy(() => Tree)), });\n" +
			"export type Tree = z.infer<typeof Tree>;\n",
		"Name": "export const Name = z.string();\n" +
			"export type Name = z.infer<typeof Name>;\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Broken"}, translate.Omitted(doc, got))
}

func TestTranslate_RecursiveDefinitions(t *testing.T) {
	doc := &jschema.Document{}
	doc.Definitions.Set("A", obj(prop("b", &jschema.Node{Ref: "#/definitions/B"})))
	doc.Definitions.Set("B", obj(prop("a", &jschema.Node{Ref: "#/definitions/A"})))
	doc.Definitions.Set("Tree", obj(
		prop("children", &jschema.Node{Type: jschema.Array, Array: &jschema.ArrayShape{Items: &jschema.Node{Ref: "#/definitions/Tree"}}}),
	))

	done := make(chan translate.Result, 1)
	go func() { done <- (&Translator{}).Translate(doc) }()

	var got translate.Result
	select {
	case got = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Translate() did not return for recursive definitions")
	}

	want := translate.Result{
		"A": "export const A = z.object({b: z.lazy(() => B), });\n" +
			"export type A = z.infer<typeof A>;\n",
		"B": "export const B = z.object({a: z.lazy(() => A), });\n" +
			"export type B = z.infer<typeof B>;\n",
		"Tree": "export const Tree = z.object({children: z.array(z.lazy(() => Tree)), });\n" +
			"export type Tree = z.infer<typeof Tree>;\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslate_ExactLiterals(t *testing.T) {
	fsys := fstest.MapFS{
		"ids.json": &fstest.MapFile{Data: []byte(`{
			"definitions": {
				"Id": {"const": 9007199254740993},
				"Code": {"enum": [9007199254740993, 1.5]}
			}
		}`)},
		"ids.yaml": &fstest.MapFile{Data: []byte("definitions:\n  Id:\n    const: 9007199254740993\n  Code:\n    enum: [9007199254740993, 1.5]\n")},
	}

	for _, file := range []string{"ids.json", "ids.yaml"} {
		t.Run(file, func(t *testing.T) {
			doc, err := jschema.NewLoader(fsys).LoadFile(file)
			require.NoError(t, err)

			result := (&Translator{}).Translate(doc)
			assert.Contains(t, result["Id"], "z.literal(9007199254740993)")
			assert.Contains(t, result["Code"], "z.union([z.literal(9007199254740993), z.literal(1.5), ])")
		})
	}
}

func TestTranslate_LongFixedLengthArray(t *testing.T) {
	fsys := fstest.MapFS{
		"big.json": &fstest.MapFile{Data: []byte(`{
			"definitions": {
				"Huge": {"type": "array", "items": {"type": "string"}, "minItems": 2147483647, "maxItems": 2147483647},
				"Negative": {"type": "array", "items": {"type": "string"}, "minItems": -1, "maxItems": -1}
			}
		}`)},
	}
	doc, err := jschema.NewLoader(fsys).LoadFile("big.json")
	require.NoError(t, err)

	result := (&Translator{}).Translate(doc)
	require.Len(t, result, 2)
	for _, name := range result.Names() {
		assert.Contains(t, result[name], "= z.array(z.string());")
	}
}

func TestTranslate_EmptyDocument(t *testing.T) {
	got := (&Translator{}).Translate(&jschema.Document{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTranslate_LoadedSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"event.json": &fstest.MapFile{Data: []byte(`{
			"title": "Event",
			"oneOf": [
				{"type": "object", "properties": {"type": {"type": "string", "enum": ["click"]}, "x": {"type": "number"}}},
				{"type": "object", "properties": {"type": {"type": "string", "enum": ["key"]}, "code": {"type": "string"}}}
			],
			"definitions": {
				"Stamp": {"type": "string", "format": "date-time"},
				"Pair": {"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2}
			}
		}`)},
	}
	doc, err := jschema.NewLoader(fsys).LoadFile("event.json")
	require.NoError(t, err)

	result := (&Translator{}).Translate(jschema.Merge(doc))

	assert.Equal(t, []string{"Event", "Pair", "Stamp"}, result.Names())
	assert.Contains(t, result["Event"], `z.discriminatedUnion("type", [z.object({type: z.literal("click"), x: z.number(), }), `)
	assert.Contains(t, result["Pair"], "z.tuple([z.number(), z.number(), ])")
	assert.Contains(t, result["Stamp"], "z.coerce.date()")
}

func TestTranslator_Metadata(t *testing.T) {
	tr := &Translator{}
	assert.Equal(t, "zod", tr.Name())
	assert.Equal(t, ".ts", tr.FileExtension())
	assert.Contains(t, tr.Preamble(), `from "zod"`)
}
