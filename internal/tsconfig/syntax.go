package tsconfig

import (
	"errors"
	"slices"

	"github.com/tailscale/hujson"
)

var (
	errNotObject   = errors.New("expected a JSON object")
	errNotString   = errors.New("expected a string")
	errNotArray    = errors.New("expected an array of strings")
	errNotStandard = errors.New("comments and trailing commas are not allowed")
)

func memberName(m hujson.ObjectMember) string {
	lit, ok := m.Name.Value.(hujson.Literal)
	if !ok {
		return ""
	}
	return lit.String()
}

// memberIndex returns the position of name in obj, or -1. Parsed objects
// hold each name once (see asObject).
func memberIndex(obj *hujson.Object, name string) int {
	if obj == nil {
		return -1
	}
	return slices.IndexFunc(obj.Members, func(m hujson.ObjectMember) bool {
		return memberName(m) == name
	})
}

func lookup(obj *hujson.Object, name string) (*hujson.Value, bool) {
	i := memberIndex(obj, name)
	if i < 0 {
		return nil, false
	}
	return &obj.Members[i].Value, true
}

// setMember stores v under name. A new name is appended; an existing one
// keeps its position.
func setMember(obj *hujson.Object, name string, v hujson.ValueTrimmed) {
	if i := memberIndex(obj, name); i >= 0 {
		obj.Members[i].Value = hujson.Value{Value: v}
		return
	}
	obj.Members = append(obj.Members, hujson.ObjectMember{
		Name:  hujson.Value{Value: hujson.String(name)},
		Value: hujson.Value{Value: v},
	})
}

func deleteMember(obj *hujson.Object, name string) {
	if i := memberIndex(obj, name); i >= 0 {
		obj.Members = slices.Delete(obj.Members, i, i+1)
	}
}

// cloneObject returns a deep copy. A nil obj yields an empty object.
func cloneObject(obj *hujson.Object) *hujson.Object {
	if obj == nil {
		return &hujson.Object{}
	}
	return hujson.Value{Value: obj}.Clone().Value.(*hujson.Object)
}

// asObject returns v as an object. Repeated names collapse into one member
// at the first position holding the last value, as JSON.parse reads them.
func asObject(v hujson.Value) (*hujson.Object, error) {
	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		return nil, errNotObject
	}

	seen := make(map[string]int, len(obj.Members))
	members := obj.Members[:0:0]
	for _, m := range obj.Members {
		name := memberName(m)
		if i, ok := seen[name]; ok {
			members[i].Value = m.Value
			continue
		}
		seen[name] = len(members)
		members = append(members, m)
	}
	obj.Members = members
	return obj, nil
}

func asString(v hujson.Value) (string, error) {
	lit, ok := v.Value.(hujson.Literal)
	if !ok || lit.Kind() != '"' {
		return "", errNotString
	}
	return lit.String(), nil
}

func asStrings(v hujson.Value) ([]string, error) {
	arr, ok := v.Value.(*hujson.Array)
	if !ok {
		return nil, errNotArray
	}
	out := make([]string, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		s, err := asString(e)
		if err != nil {
			return nil, errNotArray
		}
		out = append(out, s)
	}
	return out, nil
}

func stringArray(values []string) *hujson.Array {
	arr := &hujson.Array{Elements: make([]hujson.ArrayElement, 0, len(values))}
	for _, s := range values {
		arr.Elements = append(arr.Elements, hujson.Value{Value: hujson.String(s)})
	}
	return arr
}
