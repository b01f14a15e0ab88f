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

package barrier

import (
	"html/template"
	"strings"
)

// DefaultTitle heads the default fallback view.
const DefaultTitle = "Something went wrong."

// View is the model of the default fallback.
type View struct {
	Title   string
	Message string
}

var viewTmpl = template.Must(template.New("fallback").Parse(
	`<div role="alert" class="barrier-fallback"><h6>{{.Title}}</h6><p>{{.Message}}</p></div>`,
))

// DefaultView returns the fallback for f: a fixed title and the fault's
// message, or GenericMessage.
func DefaultView(f *Fault) View {
	return View{Title: DefaultTitle, Message: f.Display()}
}

// Text is a fallback for barriers that render plain text.
func Text(f *Fault) string {
	v := DefaultView(f)
	return v.Title + "\n" + v.Message
}

// HTML renders v with the message escaped.
func (v View) HTML() string {
	var b strings.Builder
	if err := viewTmpl.Execute(&b, v); err != nil {
		return template.HTMLEscapeString(v.Title + " " + v.Message)
	}
	return b.String()
}
