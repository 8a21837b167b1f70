// Package apiclient provides a typed client for the REST API together
// with the codec that translates between wire payloads (snake_case keys,
// per-resource type discriminators) and UI payloads (camelCase keys,
// unified "type" key).
package apiclient

import "strings"

// Kind identifies a resource for the codec's discriminator mapping
type Kind string

const (
	KindPartner       Kind = "partner"
	KindOrder         Kind = "order"
	KindStatusHistory Kind = "status_history"
	KindUser          Kind = "user"
)

// wireTypeKey is the bidirectional discriminator table: for each kind,
// the wire key that surfaces as "type" in UI payloads. Kinds without an
// entry carry no discriminator.
var wireTypeKey = map[Kind]string{
	KindPartner: "partner_type",
	KindOrder:   "order_type",
}

// wireNestedKind resolves the kind of a nested wire object by its key
func wireNestedKind(kind Kind, key string) Kind {
	switch {
	case kind == KindOrder && key == "partner":
		return KindPartner
	case kind == KindOrder && key == "status_histories":
		return KindStatusHistory
	case kind == KindStatusHistory && key == "order":
		return KindOrder
	}
	return kind
}

// uiNestedKind resolves the kind of a nested UI object by its key
func uiNestedKind(kind Kind, key string) Kind {
	switch {
	case kind == KindOrder && key == "partner":
		return KindPartner
	case kind == KindOrder && key == "statusHistories":
		return KindStatusHistory
	case kind == KindStatusHistory && key == "order":
		return KindOrder
	}
	return kind
}

// ToUI converts a decoded wire payload (maps, slices, primitives) into
// its UI shape: camelCase keys, and the kind's discriminator collapsed
// into "type".
func ToUI(kind Kind, payload any) any {
	switch v := payload.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			converted := ToUI(wireNestedKind(kind, key), value)
			if key == wireTypeKey[kind] && wireTypeKey[kind] != "" {
				result["type"] = converted
				continue
			}
			result[toCamel(key)] = converted
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = ToUI(kind, item)
		}
		return result
	default:
		return payload
	}
}

// ToWire is the exact inverse of ToUI: camelCase keys back to
// snake_case, and "type" back to the kind's discriminator key.
func ToWire(kind Kind, payload any) any {
	switch v := payload.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			converted := ToWire(uiNestedKind(kind, key), value)
			if key == "type" && wireTypeKey[kind] != "" {
				result[wireTypeKey[kind]] = converted
				continue
			}
			result[toSnake(key)] = converted
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = ToWire(kind, item)
		}
		return result
	default:
		return payload
	}
}

// toCamel converts a snake_case key to camelCase
func toCamel(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	upper := false
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			upper = true
			continue
		}
		if upper {
			ch = ch - 'a' + 'A'
			upper = false
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// toSnake converts a camelCase key to snake_case
func toSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch >= 'A' && ch <= 'Z' {
			b.WriteByte('_')
			ch = ch - 'A' + 'a'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
