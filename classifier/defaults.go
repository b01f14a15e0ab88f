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

import "dirpx.dev/clienterr"

// Default is the process-wide classifier used by the package-level helpers
// and by components constructed without WithClassifier.
var Default = MustNew()

// Classify classifies raw with Default.
func Classify(raw any) *clienterr.Error {
	return Default.Classify(raw)
}

// Explain explains raw with Default.
func Explain(raw any) string {
	return Default.Explain(raw)
}
