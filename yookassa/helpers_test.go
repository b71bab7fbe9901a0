package yookassa

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	must "github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	must.NoError(t, err)
	return data
}

// modify applies fn to the decoded document and encodes it again
func modify(t *testing.T, data []byte, fn func(doc map[string]interface{})) []byte {
	t.Helper()

	var doc map[string]interface{}
	must.NoError(t, json.Unmarshal(data, &doc))
	fn(doc)

	result, err := json.Marshal(doc)
	must.NoError(t, err)
	return result
}

func obj(doc map[string]interface{}, path ...string) map[string]interface{} {
	for _, p := range path {
		doc = doc[p].(map[string]interface{})
	}
	return doc
}
