package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// jsonNames lists the JSON keys claimed by the fields of struct type t.
func jsonNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}

// splitExtra returns the members of a JSON object that no typed field claims.
func splitExtra(data []byte, known map[string]bool) (bson.M, error) {
	var all bson.M
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for key := range all {
		if known[key] {
			delete(all, key)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// mergeExtra encodes fields and adds the extra members; typed fields win.
func mergeExtra(fields interface{}, extra bson.M) ([]byte, error) {
	raw, err := json.Marshal(fields)
	if err != nil || len(extra) == 0 {
		return raw, err
	}

	out := make(map[string]interface{}, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
