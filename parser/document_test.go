package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderedSpec = `
openapi: 3.0.3
info:
  title: Ordered API
  version: 1.2.3
  description: exercises key ordering
paths:
  /zebras:
    post:
      summary: Create a zebra
    get:
      summary: List zebras
  /apples:
    get:
      operationId: listApples
    parameters:
      - name: limit
        in: query
components:
  schemas:
    Zebra:
      type: object
    Apple:
      type: object
  responses:
    NotFound:
      description: missing
  headers: {}
`

func loadTestDoc(t *testing.T, src string) *Document {
	t.Helper()
	result, err := LoadBytes([]byte(src), "test.yaml")
	require.NoError(t, err)
	return result.Document
}

func TestDocument_Info(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Ordered API", doc.Info.Title)
	assert.Equal(t, "1.2.3", doc.Info.Version)
	assert.Equal(t, "exercises key ordering", doc.Info.Description)
}

func TestPathMap_DocumentOrder(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)
	// Source order, not lexical order.
	assert.Equal(t, []string{"/zebras", "/apples"}, doc.Paths.Keys())
	assert.Equal(t, 2, doc.Paths.Len())
}

func TestPathItem_DeclaredMethodsCanonicalOrder(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)

	item, ok := doc.Paths.Get("/zebras")
	require.True(t, ok)
	// Document declares post before get; canonical order reports get first.
	assert.Equal(t, []string{"get", "post"}, item.DeclaredMethods())

	op, ok := item.Operation("get")
	require.True(t, ok)
	assert.Equal(t, "List zebras", op["summary"])
}

func TestPathItem_NonMethodKeysIgnored(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)

	item, ok := doc.Paths.Get("/apples")
	require.True(t, ok)
	// "parameters" is a path item key but not an operation.
	assert.Equal(t, []string{"get"}, item.DeclaredMethods())
}

func TestComponentMap_DocumentOrder(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)

	assert.Equal(t, []string{"schemas", "responses", "headers"}, doc.Components.Types())

	schemas, ok := doc.Components.Group("schemas")
	require.True(t, ok)
	assert.Equal(t, []string{"Zebra", "Apple"}, schemas.Names())
	assert.Equal(t, 2, schemas.Len())

	headers, ok := doc.Components.Group("headers")
	require.True(t, ok)
	assert.Equal(t, 0, headers.Len())
}

func TestDocument_Field(t *testing.T) {
	doc := loadTestDoc(t, orderedSpec)

	info, ok := doc.Field("info")
	require.True(t, ok)
	assert.Equal(t, "Ordered API", info.(map[string]any)["title"])

	_, ok = doc.Field("Info") // case-sensitive
	assert.False(t, ok)
}

func TestOperationLabel(t *testing.T) {
	tests := []struct {
		name string
		op   map[string]any
		want string
	}{
		{
			name: "summary wins",
			op:   map[string]any{"summary": "List pets", "operationId": "listPets"},
			want: "List pets",
		},
		{
			name: "falls back to operation id",
			op:   map[string]any{"operationId": "listPets"},
			want: "listPets",
		},
		{
			name: "empty summary falls back",
			op:   map[string]any{"summary": "", "operationId": "listPets"},
			want: "listPets",
		},
		{
			name: "neither present",
			op:   map[string]any{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OperationLabel(tt.op))
		})
	}
}

func TestLoadBytes_JSONDocumentPreservesOrder(t *testing.T) {
	doc := loadTestDoc(t, `{
  "openapi": "3.1.0",
  "info": {"title": "JSON API", "version": "1.0.0"},
  "paths": {
    "/b": {"get": {}},
    "/a": {"get": {}}
  }
}`)
	assert.Equal(t, []string{"/b", "/a"}, doc.Paths.Keys())
}
