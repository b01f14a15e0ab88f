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
	"log/slog"
	"time"

	"dirpx.dev/clienterr/kind"
)

type builder struct {
	// aliases maps extra discriminant names onto known kinds.
	aliases map[string]kind.Kind

	// logger receives diagnostic records. nil means slog.Default() at
	// log time, so a late slog.SetDefault is honoured.
	logger *slog.Logger

	// clock is the source of classification instants.
	clock func() time.Time
}

func newBuilder() *builder {
	return &builder{
		aliases: make(map[string]kind.Kind),
		clock:   time.Now,
	}
}
