package yamjson

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON returns the document value encoded as JSON.
func (d *Document) JSON() ([]byte, error) {
	v, err := normalize(d.value)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamjson: cannot encode value as JSON: %w", err)
	}
	return b, nil
}

// Get queries the value with a gjson path such as "server.port" or "users.#.name".
func (d *Document) Get(path string) gjson.Result {
	b, err := d.JSON()
	if err != nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(b, path)
}

// Set assigns value at an sjson path such as "server.port" or "users.1.name", creating
// missing objects on the way.
func (d *Document) Set(path string, value any) error {
	nv, err := normalize(value)
	if err != nil {
		return err
	}
	return d.transformJSON("set "+path, func(b []byte) ([]byte, error) {
		return sjson.SetBytes(b, path, nv)
	})
}

// Delete removes the value at an sjson path.
func (d *Document) Delete(path string) error {
	return d.transformJSON("delete "+path, func(b []byte) ([]byte, error) {
		return sjson.DeleteBytes(b, path)
	})
}

// ApplyJSONPatch applies an RFC 6902 JSON Patch to the value. The value is left unchanged
// when any operation fails.
func (d *Document) ApplyJSONPatch(patch []byte) error {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("yamjson: invalid JSON Patch: %w", err)
	}
	return d.transformJSON("apply JSON Patch", p.Apply)
}

// ApplyMergePatch applies an RFC 7386 JSON merge patch to the value.
func (d *Document) ApplyMergePatch(patch []byte) error {
	return d.transformJSON("apply merge patch", func(b []byte) ([]byte, error) {
		return jsonpatch.MergePatch(b, patch)
	})
}

func (d *Document) transformJSON(op string, fn func([]byte) ([]byte, error)) error {
	b, err := d.JSON()
	if err != nil {
		return err
	}
	out, err := fn(b)
	if err != nil {
		return fmt.Errorf("yamjson: cannot %s: %w", op, err)
	}
	v, err := decodeJSON(out)
	if err != nil {
		return fmt.Errorf("yamjson: cannot %s: %w", op, err)
	}
	d.value = v
	return nil
}
