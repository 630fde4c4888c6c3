package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// CanonicalSerialize implements [ItemCodec]. It marshals v to JSON, then
// rewrites the document with object keys in sorted order, so that two
// structurally identical values always produce byte-identical output. Some
// payload comparisons (the Lock sentinel) are done at the serialized level
// and depend on this.
func (c *itemCodec) CanonicalSerialize(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("canonical serialize: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	// json.Number preserves the original numeric representation.
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return "", fmt.Errorf("canonical serialize decode: %w", err)
	}

	var sb strings.Builder
	if err := writeCanonical(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeCanonical(sb *strings.Builder, v any) error {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			keyJSON, err := json.Marshal(k)
			if err != nil {
				return err
			}
			sb.Write(keyJSON)
			sb.WriteByte(':')
			if err := writeCanonical(sb, val[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
		return nil

	case []any:
		sb.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeCanonical(sb, item); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
		return nil

	case json.Number:
		sb.WriteString(val.String())
		return nil

	default:
		leaf, err := json.Marshal(val)
		if err != nil {
			return err
		}
		sb.Write(leaf)
		return nil
	}
}
