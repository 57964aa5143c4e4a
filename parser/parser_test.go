package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
`), 0o644))

	result, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Source)
	assert.Equal(t, SourceFormatYAML, result.Format)
	assert.Equal(t, "Petstore", result.Document.Info.Title)
	assert.Equal(t, 1, result.Document.Paths.Len())
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	_, err := LoadBytes([]byte("openapi: [unclosed"), "bad.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, naverrors.ErrTransform)
}

func TestLoadBytes_DereferencesBeforeReturning(t *testing.T) {
	result, err := LoadBytes([]byte(`
openapi: 3.0.3
info:
  title: Ref API
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
`), "ref.yaml")
	require.NoError(t, err)

	item, ok := result.Document.Paths.Get("/pets")
	require.True(t, ok)
	op, ok := item.Operation("get")
	require.True(t, ok)

	schema := op["responses"].(map[string]any)["200"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
	_, hasRef := schema["$ref"]
	assert.False(t, hasRef)
}

func TestLoadBytes_DanglingRefIsFatalForDocument(t *testing.T) {
	_, err := LoadBytes([]byte(`
openapi: 3.0.3
info:
  title: Broken
  version: 1.0.0
paths:
  /x:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Missing"
`), "broken.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, naverrors.ErrTransform)
}

func TestLoadBytes_Determinism(t *testing.T) {
	src := []byte(`
openapi: 3.0.3
info:
  title: Same API
  version: 1.0.0
paths:
  /b:
    get: {}
  /a:
    post: {}
`)
	first, err := LoadBytes(src, "same.yaml")
	require.NoError(t, err)
	second, err := LoadBytes(src, "same.yaml")
	require.NoError(t, err)

	assert.Equal(t, first.Document.Paths.Keys(), second.Document.Paths.Keys())
}
