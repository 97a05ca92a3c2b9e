// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package zod provides Zod schema translation.
package zod

import (
	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/dacolabs/zodgen/internal/translate"
)

// Translator translates schema documents to Zod schema declarations.
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "zod"
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Preamble returns the zod import the generated declarations rely on.
func (t *Translator) Preamble() string {
	return "import { z } from \"zod\";\n"
}

// Translate converts every definition of doc to an exported Zod schema and
// its inferred type.
func (t *Translator) Translate(doc *jschema.Document) translate.Result {
	return translate.Convert(doc, &resolver{})
}
