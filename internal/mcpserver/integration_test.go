package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
	"github.com/domaspe/mcp-openapi-schema-explorer/registry"
)

// petstore is the spec used across integration tests. The get response
// carries a $ref so tests can observe that served content is dereferenced.
const petstore = `{
  "openapi": "3.0.3",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List all pets",
        "responses": {
          "200": {
            "description": "OK",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Pet"}
              }
            }
          }
        }
      },
      "post": {
        "operationId": "createPet",
        "summary": "Create a pet",
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "responses": {"200": {"description": "OK"}}
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {"type": "object", "properties": {"name": {"type": "string"}}},
      "Owner": {"type": "object"}
    },
    "securitySchemes": {
      "bearerAuth": {"type": "http", "scheme": "bearer"}
    }
  }
}`

// startTestSession creates an in-process server/client pair over the given
// server options and returns the connected client session.
func startTestSession(t *testing.T, opts Options) *mcp.ClientSession {
	t.Helper()

	result, err := parser.LoadBytes([]byte(petstore), "petstore.json")
	require.NoError(t, err)
	srv, err := New(registry.New(result), opts)
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- srv.server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func readOne(t *testing.T, session *mcp.ClientSession, uri string) *mcp.ResourceContents {
	t.Helper()
	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uri})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	return result.Contents[0]
}

func TestIntegration_SpecsList(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://specs")
	assert.Equal(t, "openapi://specs", content.URI)
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "- test-api: Test API (version 1.0.0, 2 paths)")
	assert.Contains(t, content.Text, "Hint: Use 'openapi://{specId}/{field}'")
	assert.Contains(t, content.Text, "Example: openapi://test-api/info")
}

func TestIntegration_InfoField(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/info")
	assert.Equal(t, "application/json", content.MIMEType)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(content.Text), &info))
	assert.Equal(t, "Test API", info["title"])
}

func TestIntegration_PathsListing(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/paths")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "GET POST /pets\n")
	assert.Contains(t, content.Text, "GET /pets/{petId}\n")
	assert.Contains(t, content.Text, "Example: openapi://test-api/paths/pets")
}

func TestIntegration_PathMethods(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/paths/pets")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "GET: List all pets\n")
	assert.Contains(t, content.Text, "POST: Create a pet\n")
}

func TestIntegration_OperationMultiMethod(t *testing.T) {
	session := startTestSession(t, Options{})

	result, err := session.ReadResource(context.Background(),
		&mcp.ReadResourceParams{URI: "openapi://test-api/paths/pets/get,post"})
	require.NoError(t, err)
	require.Len(t, result.Contents, 2)

	assert.Equal(t, "openapi://test-api/paths/pets/get", result.Contents[0].URI)
	assert.Equal(t, "openapi://test-api/paths/pets/post", result.Contents[1].URI)

	var op map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &op))
	assert.Equal(t, "listPets", op["operationId"])

	// The $ref in the 200 response must arrive inlined.
	assert.NotContains(t, result.Contents[0].Text, "$ref")
	assert.Contains(t, result.Contents[0].Text, `"type": "object"`)
}

func TestIntegration_OperationPartialValidity(t *testing.T) {
	session := startTestSession(t, Options{})

	result, err := session.ReadResource(context.Background(),
		&mcp.ReadResourceParams{URI: "openapi://test-api/paths/pets/get,put"})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "openapi://test-api/paths/pets/get", result.Contents[0].URI)
}

func TestIntegration_OperationNoValidMethods(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/paths/pets/put,delete")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "None of the requested methods (put, delete) are valid for path /pets")
}

func TestIntegration_ComponentNames(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/components/schemas")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "- Pet\n")
	assert.Contains(t, content.Text, "- Owner\n")
}

func TestIntegration_ComponentDetail(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/components/schemas/Pet")
	assert.Equal(t, "application/json", content.MIMEType)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(content.Text), &schema))
	assert.Equal(t, "object", schema["type"])
}

func TestIntegration_UnknownSpecIsReadableError(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://nope/info")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "Spec not found: nope")
	assert.Contains(t, content.Text, "test-api")
}

func TestIntegration_EmptySelectorIsReadableError(t *testing.T) {
	session := startTestSession(t, Options{})

	content := readOne(t, session, "openapi://test-api/paths/pets/,")
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Contains(t, content.Text, "Empty selector: at least one method must be provided")
}

func TestIntegration_MalformedURI(t *testing.T) {
	session := startTestSession(t, Options{})

	_, err := session.ReadResource(context.Background(),
		&mcp.ReadResourceParams{URI: "files://test-api/info"})
	require.Error(t, err)
}

func TestIntegration_YAMLFormat(t *testing.T) {
	session := startTestSession(t, Options{OutputFormat: "yaml"})

	content := readOne(t, session, "openapi://test-api/components/schemas/Pet")
	assert.Equal(t, "text/yaml", content.MIMEType)
	assert.Contains(t, content.Text, "type: object")

	// Listings stay plain text regardless of output format.
	listing := readOne(t, session, "openapi://specs")
	assert.Equal(t, "text/plain", listing.MIMEType)
}

func TestIntegration_ListResourceTemplates(t *testing.T) {
	session := startTestSession(t, Options{})

	result, err := session.ListResourceTemplates(context.Background(), &mcp.ListResourceTemplatesParams{})
	require.NoError(t, err)
	require.Len(t, result.ResourceTemplates, 5)

	templates := make([]string, 0, len(result.ResourceTemplates))
	for _, rt := range result.ResourceTemplates {
		templates = append(templates, rt.URITemplate)
	}
	assert.Contains(t, templates, "openapi://{specId}/{field}")
	assert.Contains(t, templates, "openapi://{specId}/paths/{path}/{method*}")
	assert.Contains(t, templates, "openapi://{specId}/components/{type}/{name*}")
}

func TestIntegration_Completion(t *testing.T) {
	session := startTestSession(t, Options{})

	complete := func(name, value string) []string {
		t.Helper()
		result, err := session.Complete(context.Background(), &mcp.CompleteParams{
			Ref: &mcp.CompleteReference{Type: "ref/resource", URI: "openapi://{specId}/{field}"},
			Argument: mcp.CompleteParamsArgument{
				Name:  name,
				Value: value,
			},
		})
		require.NoError(t, err)
		return result.Completion.Values
	}

	assert.Equal(t, []string{"test-api"}, complete("specId", "te"))
	assert.Empty(t, complete("specId", "zz"))
	assert.Equal(t, []string{"post", "put", "patch"}, complete("method", "p"))
	assert.Equal(t, []string{"info"}, complete("field", "in"))

	// Two non-empty component categories, so name completion stays silent.
	assert.Empty(t, complete("name", ""))
	assert.Equal(t, []string{"schemas", "securitySchemes"}, complete("type", "s"))
}
