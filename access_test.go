package yamjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	doc := New(`server:
  port: 8080
users:
  - name: admin
  - name: guest
`)
	assert.Equal(t, int64(8080), doc.Get("server.port").Int())
	assert.Equal(t, `["admin","guest"]`, doc.Get("users.#.name").Raw)
	assert.False(t, doc.Get("server.missing").Exists())
}

func TestSetKeepsComment(t *testing.T) {
	doc := New("server:\n  port: 8080  # listening port\n")
	require.NoError(t, doc.Set("server.port", 9000))

	assert.Equal(t, map[string]any{"server": map[string]any{"port": int64(9000)}}, doc.Value())
	assert.Equal(t, "server:\n  port: 9000  # listening port\n", doc.Render())
}

func TestSetCreatesObjects(t *testing.T) {
	doc := New("a: 1\n")
	require.NoError(t, doc.Set("b.c", []string{"x", "y"}))
	assert.Equal(t, map[string]any{
		"a": int64(1),
		"b": map[string]any{"c": []any{"x", "y"}},
	}, doc.Value())
}

func TestSetUnsupportedValue(t *testing.T) {
	doc := New("a: 1\n")
	err := doc.Set("a", make(chan int))
	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, map[string]any{"a": int64(1)}, doc.Value())
}

func TestDelete(t *testing.T) {
	doc := New("a: 1\nb: 2\n", WithVerifiedRender(), WithLogger(discardLogger()))
	require.NoError(t, doc.Delete("b"))
	assert.Equal(t, map[string]any{"a": int64(1)}, doc.Value())
	assert.Equal(t, "a: 1\n", doc.Render())
}

func TestApplyJSONPatch(t *testing.T) {
	doc := New("replicas: 1  # scaled by hpa\nimage: app:v1\n")
	require.NoError(t, doc.ApplyJSONPatch([]byte(`[
		{"op":"replace","path":"/replicas","value":3},
		{"op":"test","path":"/image","value":"app:v1"}
	]`)))
	assert.Equal(t, "replicas: 3  # scaled by hpa\nimage: app:v1\n", doc.Render())
}

func TestApplyJSONPatchFailureLeavesValue(t *testing.T) {
	doc := New("a: 1\n")
	err := doc.ApplyJSONPatch([]byte(`[
		{"op":"replace","path":"/a","value":2},
		{"op":"test","path":"/a","value":5}
	]`))
	require.Error(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, doc.Value())

	err = doc.ApplyJSONPatch([]byte(`{"op":"add"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON Patch")
}

func TestApplyMergePatch(t *testing.T) {
	doc := New("server:\n  port: 8080\n  debug: true\n")
	require.NoError(t, doc.ApplyMergePatch([]byte(`{"server":{"port":9000,"debug":null},"tags":["a"]}`)))
	assert.Equal(t, map[string]any{
		"server": map[string]any{"port": int64(9000)},
		"tags":   []any{"a"},
	}, doc.Value())
}

func TestReplaceMapViaJSONPatch(t *testing.T) {
	input := `java-service:
  envs:
    OLD_KEY: old_val
  externalSecretEnvs:
    - name: SECRET_1
      path: secret/path/1
    - name: SECRET_2
      path: secret/path/2
`
	newEnvs, err := json.Marshal(map[string]string{
		"NEW_KEY_1": "val1",
		"NEW_KEY_2": "val2",
		"NEW_KEY_3": "val3",
		"NEW_KEY_4": "val4",
		"NEW_KEY_5": "val5",
	})
	require.NoError(t, err)

	doc := New(input, WithVerifiedRender(), WithLogger(discardLogger()))
	patch := `[{"op":"replace","path":"/java-service/envs","value":` + string(newEnvs) + `}]`
	require.NoError(t, doc.ApplyJSONPatch([]byte(patch)))

	out := doc.Render()
	t.Logf("Output YAML:\n%s", out)

	parsed, err := ParseText(out)
	require.NoError(t, err, "resulting YAML should be valid")
	js, ok := parsed.(map[string]any)["java-service"].(map[string]any)
	require.True(t, ok)

	envs, ok := js["envs"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, envs, 5)
	assert.NotContains(t, envs, "OLD_KEY")

	secrets, ok := js["externalSecretEnvs"].([]any)
	require.True(t, ok, "externalSecretEnvs should be a list")
	assert.Len(t, secrets, 2)
}

func TestDeletingAllEnvKeys(t *testing.T) {
	input := `app-chart:
  cpu: 100
  envs:
    KAFKA_CDC_TOPIC: topic
    REGION: HK
  externalSecretEnvs:
    - name: A
      path: p1
`
	doc := New(input, WithVerifiedRender(), WithLogger(discardLogger()))
	for _, k := range []string{"KAFKA_CDC_TOPIC", "REGION"} {
		require.NoError(t, doc.Delete("app-chart.envs."+k))
	}
	assert.Equal(t, map[string]any{}, doc.Get("app-chart.envs").Value())

	out := doc.Render()
	assert.NotContains(t, out, "KAFKA_CDC_TOPIC")
	assert.NotContains(t, out, "REGION")

	parsed, err := ParseText(out)
	require.NoError(t, err)
	chart := parsed.(map[string]any)["app-chart"].(map[string]any)
	assert.Equal(t, int64(100), chart["cpu"])
	assert.Len(t, chart["externalSecretEnvs"], 1)
}
