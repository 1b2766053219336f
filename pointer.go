package tinyjson

import (
	"strconv"
	"strings"
)

// PathRef builds RFC 6901 JSON Pointer paths in a chain-safe way. The zero
// value is the document root. Parts are stored unescaped and escaped on
// rendering.
type PathRef struct {
	parts []string
}

// Field appends an object key.
func (p PathRef) Field(name string) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), name)}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path. The root renders as "", so "/" always names the
// member with the empty key.
func (p PathRef) Pointer() string { return renderPointer(p.parts) }

// push and pop mutate p in place. The parser uses them on its own PathRef to
// track the value being parsed without copying on every member.
func (p *PathRef) push(seg string) { p.parts = append(p.parts, seg) }

func (p *PathRef) pop() { p.parts = p.parts[:len(p.parts)-1] }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func renderPointer(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(p))
	}
	return b.String()
}

// At resolves an RFC 6901 JSON Pointer against v. Only "" addresses v
// itself; "/" addresses the member with the empty key. Array indexes must be
// decimal without leading zeros.
func (v Value) At(pointer string) (Value, bool) {
	if pointer == "" {
		return v, true
	}
	if pointer[0] != '/' {
		return Value{}, false
	}
	cur := v
	for _, raw := range strings.Split(pointer[1:], "/") {
		tok := pointerUnescaper.Replace(raw)
		switch cur.kind {
		case KindObject:
			next, ok := cur.obj[tok]
			if !ok {
				return Value{}, false
			}
			cur = next
		case KindArray:
			if tok == "" || (len(tok) > 1 && tok[0] == '0') {
				return Value{}, false
			}
			i, err := strconv.Atoi(tok)
			if err != nil {
				return Value{}, false
			}
			next, ok := cur.Index(i)
			if !ok {
				return Value{}, false
			}
			cur = next
		default:
			return Value{}, false
		}
	}
	return cur, true
}
