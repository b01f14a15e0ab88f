/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package classifier

import (
	"encoding/json"
	"errors"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/adapter"
	"dirpx.dev/clienterr/apis"
)

// fields is what classification reads from a raw failure.
type fields struct {
	name    string
	message string
	details any
}

// passthrough reports whether raw already is, or wraps, a classified
// record. The wire form of a record (apis.ErrorView, or the equivalent
// object or JSON text) counts too and is rebuilt with its timestamp.
func passthrough(raw any) (e *clienterr.Error, ok bool) {
	defer func() {
		if recover() != nil {
			e, ok = nil, false
		}
	}()
	switch v := raw.(type) {
	case *clienterr.Error:
		return v, v != nil
	case apis.ErrorView:
		return rebuild(v, raw)
	case *apis.ErrorView:
		if v != nil {
			return rebuild(*v, raw)
		}
	case map[string]any:
		if view, ok := recordView(v); ok {
			return rebuild(view, raw)
		}
	case json.RawMessage:
		return recordJSON(v, raw)
	case []byte:
		return recordJSON(v, raw)
	case error:
		if errors.As(v, &e) && e != nil {
			return e, true
		}
	}
	return nil, false
}

// rebuild restores a record from its wire form. Views with a status
// outside the classified set or an unparseable timestamp are not records.
func rebuild(v apis.ErrorView, raw any) (*clienterr.Error, bool) {
	e, err := adapter.FromView(v)
	if err != nil {
		return nil, false
	}
	return e.WithSource(raw), true
}

// recordView recognizes a decoded record: a numeric status and a string
// timestamp, and no discriminant. Anything carrying a name is a raw
// failure.
func recordView(m map[string]any) (apis.ErrorView, bool) {
	if _, named := m["name"]; named {
		return apis.ErrorView{}, false
	}
	ts, ok := m["timestamp"].(string)
	if !ok {
		return apis.ErrorView{}, false
	}
	var status int
	switch n := m["status"].(type) {
	case float64:
		status = int(n)
		if float64(status) != n {
			return apis.ErrorView{}, false
		}
	case int:
		status = n
	default:
		return apis.ErrorView{}, false
	}
	message, _ := m["message"].(string)
	return apis.ErrorView{Timestamp: ts, Status: status, Message: message, Details: m["details"]}, true
}

func recordJSON(b []byte, raw any) (*clienterr.Error, bool) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	view, ok := recordView(m)
	if !ok {
		return nil, false
	}
	return rebuild(view, raw)
}

// read extracts fields from raw. Unknown shapes and panics while reading
// yield the zero fields, i.e. the 500/default-message record.
func read(raw any) (f fields) {
	defer func() {
		if recover() != nil {
			f = fields{}
		}
	}()
	switch v := raw.(type) {
	case nil:
		return fields{}
	case *clienterr.Raw:
		if v == nil {
			return fields{}
		}
		return fields{v.Name, v.Message, v.Details}
	case clienterr.Raw:
		return fields{v.Name, v.Message, v.Details}
	case apis.FailureView:
		return fields{v.Name, v.Message, v.Details}
	case *apis.FailureView:
		if v == nil {
			return fields{}
		}
		return fields{v.Name, v.Message, v.Details}
	case map[string]any:
		return fromMap(v)
	case json.RawMessage:
		return fromJSON(v)
	case []byte:
		return fromJSON(v)
	case error:
		return fromError(v)
	default:
		return fields{}
	}
}

// fromError reads a Go error. A tagged Raw anywhere in the chain wins;
// otherwise the name and details come from the apis interfaces and the
// message is the error text.
func fromError(err error) fields {
	var r *clienterr.Raw
	if errors.As(err, &r) && r != nil {
		return fields{r.Name, r.Message, r.Details}
	}
	f := fields{message: err.Error()}
	var ne apis.NamedError
	if errors.As(err, &ne) {
		f.name = ne.ErrorName()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		f.details = de.ErrorDetails()
	}
	return f
}

// fromMap reads a JSON-decoded object. Fields of the wrong type are
// treated as absent.
func fromMap(m map[string]any) fields {
	name, _ := m["name"].(string)
	message, _ := m["message"].(string)
	return fields{name: name, message: message, details: m["details"]}
}

// fromJSON reads JSON text. Anything that is not an object yields the
// zero fields.
func fromJSON(b []byte) fields {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fields{}
	}
	return fromMap(m)
}
