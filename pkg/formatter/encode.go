// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// orderedObject is a JSON object that keeps the insertion order of its keys.
// Setting an existing key replaces its value without moving it.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]any)}
}

func (o *orderedObject) set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *orderedObject) encode() []byte {
	buffer := new(bytes.Buffer)
	buffer.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		buffer.Write(encodeValue(key))
		buffer.WriteByte(':')
		buffer.Write(encodeValue(o.values[key]))
	}
	buffer.WriteByte('}')
	return buffer.Bytes()
}

// encodeMap renders metadata as a JSON object with sorted keys.
func encodeMap(metadata map[string]any) []byte {
	object := newOrderedObject()
	for _, key := range sortedKeys(metadata) {
		object.set(key, metadata[key])
	}
	return object.encode()
}

func sortedKeys(metadata map[string]any) []string {
	return slices.Sorted(maps.Keys(metadata))
}

// encodeValue marshals value without HTML escaping. Values that cannot be
// marshaled are rendered as their fmt representation instead.
func encodeValue(value any) []byte {
	if err, ok := value.(error); ok {
		value = err.Error()
	}

	if encoded, err := marshal(value); err == nil {
		return encoded
	}

	encoded, _ := marshal(fmt.Sprintf("%+v", value))
	return encoded
}

func marshal(value any) (encoded []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("marshal panic: %v", r)
		}
	}()

	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
