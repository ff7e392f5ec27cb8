// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/thejohnfreeman/xrplorer/xrp"
)

// Field one named field of a serialized object, carrying its textual
// rendering and the default flag used by listing filters.
type Field struct {
	id      FieldID
	name    string
	text    string
	def     bool
	numeric bool
}

// Name returns the field name from the protocol dictionary.
func (f *Field) Name() string { return f.name }

// Text returns the type-specific textual rendering.
func (f *Field) Text() string { return f.text }

// IsDefault tells whether the value is the type's default (zero
// number, empty blob, empty collection).
func (f *Field) IsDefault() bool { return f.def }

// jsonValue renders the field for embedding in an object's text.
func (f *Field) jsonValue() string {
	switch f.id.Type {
	case TypeObject, TypeArray:
		return f.text
	default:
		if f.numeric {
			return f.text
		}
		return `"` + f.text + `"`
	}
}

// Object an ordered collection of named fields.
type Object struct {
	fields []*Field
}

// Fields returns the fields in serialization order.
func (o *Object) Fields() []*Field { return o.fields }

// Field returns the first field with the given name, or nil.
func (o *Object) Field(name string) *Field {
	for _, f := range o.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (o *Object) text() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f.name)
		b.WriteString(`":`)
		b.WriteString(f.jsonValue())
	}
	b.WriteByte('}')
	return b.String()
}

// DecodeObject parses a bare serialized object (no hash prefix, no
// key suffix).
func DecodeObject(data []byte) (*Object, error) {
	return parseObject(NewReader(data), false)
}

// parseObject reads fields until the reader is exhausted or, when
// nested, until the object end marker.
func parseObject(r *Reader, nested bool) (*Object, error) {
	obj := &Object{}
	for !r.Empty() {
		id, err := readFieldID(r)
		if err != nil {
			return nil, err
		}
		if id == objectEndMarker {
			if !nested {
				return nil, errors.New("unexpected object end marker")
			}
			return obj, nil
		}
		f, err := parseField(r, id)
		if err != nil {
			return nil, err
		}
		obj.fields = append(obj.fields, f)
	}
	if nested {
		return nil, errShortRead
	}
	return obj, nil
}

func parseField(r *Reader, id FieldID) (*Field, error) {
	f := &Field{id: id, name: fieldName(id)}
	switch id.Type {
	case TypeUInt8:
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		f.def = v == 0
		if id.Code == 3 { // TransactionResult
			f.text = transactionResultName(v)
		} else {
			f.numeric = true
			f.text = strconv.FormatUint(uint64(v), 10)
		}
	case TypeUInt16:
		v, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		f.def = v == 0
		switch f.name {
		case "LedgerEntryType":
			f.text = ledgerEntryTypeName(v)
		case "TransactionType":
			f.text = transactionTypeName(v)
		default:
			f.numeric = true
			f.text = strconv.FormatUint(uint64(v), 10)
		}
	case TypeUInt32:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		f.numeric = true
		f.def = v == 0
		f.text = strconv.FormatUint(uint64(v), 10)
	case TypeUInt64:
		v, err := r.ReadU64()
		if err != nil {
			return nil, err
		}
		f.numeric = true
		f.def = v == 0
		f.text = strconv.FormatUint(v, 10)
	case TypeHash128:
		if err := f.readBits(r, 16); err != nil {
			return nil, err
		}
	case TypeHash160:
		if err := f.readBits(r, 20); err != nil {
			return nil, err
		}
	case TypeHash256:
		if err := f.readBits(r, 32); err != nil {
			return nil, err
		}
	case TypeAmount:
		text, def, err := readAmount(r)
		if err != nil {
			return nil, err
		}
		f.text, f.def, f.numeric = text, def, true
	case TypeBlob:
		b, err := r.ReadVL()
		if err != nil {
			return nil, err
		}
		f.def = len(b) == 0
		f.text = strings.ToUpper(hex.EncodeToString(b))
	case TypeAccountID:
		b, err := r.ReadVL()
		if err != nil {
			return nil, err
		}
		f.def = len(b) == 0
		if len(b) == xrp.AddressLength {
			var account xrp.AccountID
			copy(account[:], b)
			f.text = account.String()
		} else {
			f.text = strings.ToUpper(hex.EncodeToString(b))
		}
	case TypeObject:
		child, err := parseObject(r, true)
		if err != nil {
			return nil, err
		}
		f.def = len(child.fields) == 0
		f.text = child.text()
	case TypeArray:
		text, def, err := parseArray(r)
		if err != nil {
			return nil, err
		}
		f.text, f.def = text, def
	case TypePathSet:
		text, def, err := readPathSet(r)
		if err != nil {
			return nil, err
		}
		f.text, f.def = text, def
	case TypeVector256:
		b, err := r.ReadVL()
		if err != nil {
			return nil, err
		}
		if len(b)%xrp.HashLength != 0 {
			return nil, errors.New("truncated hash vector")
		}
		var hashes []string
		for i := 0; i < len(b); i += xrp.HashLength {
			hashes = append(hashes, `"`+strings.ToUpper(hex.EncodeToString(b[i:i+xrp.HashLength]))+`"`)
		}
		f.def = len(hashes) == 0
		f.text = "[" + strings.Join(hashes, ",") + "]"
		f.numeric = true
	default:
		return nil, errors.Errorf("unsupported field type %d", id.Type)
	}
	return f, nil
}

func (f *Field) readBits(r *Reader, n int) error {
	b, err := r.ReadBytes(n)
	if err != nil {
		return err
	}
	f.text = strings.ToUpper(hex.EncodeToString(b))
	f.def = true
	for _, c := range b {
		if c != 0 {
			f.def = false
			break
		}
	}
	return nil
}

// parseArray reads array elements until the array end marker. Each
// element is a named nested object terminated by the object end
// marker.
func parseArray(r *Reader) (string, bool, error) {
	var elems []string
	for {
		id, err := readFieldID(r)
		if err != nil {
			return "", false, err
		}
		if id == arrayEndMarker {
			break
		}
		child, err := parseObject(r, true)
		if err != nil {
			return "", false, err
		}
		elems = append(elems, `{"`+fieldName(id)+`":`+child.text()+`}`)
	}
	return "[" + strings.Join(elems, ",") + "]", len(elems) == 0, nil
}

// path element type bits
const (
	pathAccount  = 0x01
	pathCurrency = 0x10
	pathIssuer   = 0x20

	pathBoundary = 0xff
)

// readPathSet consumes a payment path set and renders each path as a
// chain of hops.
func readPathSet(r *Reader) (string, bool, error) {
	var paths, steps []string
	flush := func() {
		if len(steps) > 0 {
			paths = append(paths, strings.Join(steps, " -> "))
			steps = nil
		}
	}
	for {
		t, err := r.ReadU8()
		if err != nil {
			return "", false, err
		}
		if t == 0 {
			flush()
			break
		}
		if t == pathBoundary {
			flush()
			continue
		}
		var parts []string
		if t&pathAccount != 0 {
			b, err := r.ReadBytes(xrp.AddressLength)
			if err != nil {
				return "", false, err
			}
			var account xrp.AccountID
			copy(account[:], b)
			parts = append(parts, account.String())
		}
		if t&pathCurrency != 0 {
			b, err := r.ReadBytes(20)
			if err != nil {
				return "", false, err
			}
			parts = append(parts, strings.ToUpper(hex.EncodeToString(b)))
		}
		if t&pathIssuer != 0 {
			b, err := r.ReadBytes(xrp.AddressLength)
			if err != nil {
				return "", false, err
			}
			var issuer xrp.AccountID
			copy(issuer[:], b)
			parts = append(parts, issuer.String())
		}
		steps = append(steps, strings.Join(parts, "/"))
	}
	return strings.Join(paths, ", "), len(paths) == 0, nil
}
