// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"maps"
)

// badKey is used for arguments that cannot be read as a key/value pair.
const badKey = "!BADKEY"

// Fields is a set of metadata attached to a record.
type Fields map[string]any

// argsToFields reads call-site arguments as alternating key/value pairs.
// Fields and map[string]any arguments are spread in place. A non-string key, or a
// string key without a value, is stored under !BADKEY.
func argsToFields(args []any) Fields {
	if len(args) == 0 {
		return nil
	}

	fields := make(Fields, len(args)/2)
	for i := 0; i < len(args); i++ {
		switch arg := args[i].(type) {
		case Fields:
			maps.Copy(fields, arg)
		case map[string]any:
			maps.Copy(fields, arg)
		case string:
			if i+1 >= len(args) {
				fields[badKey] = arg
				continue
			}
			fields[arg] = args[i+1]
			i++
		default:
			fields[badKey] = arg
		}
	}

	return fields
}

// mergeFields overlays every layer on the previous ones. It returns nil when the result is empty.
func mergeFields(layers ...map[string]any) map[string]any {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}
	if size == 0 {
		return nil
	}

	merged := make(map[string]any, size)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}
