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

package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"dirpx.dev/clienterr/callstate"
	"dirpx.dev/clienterr/httpx"
	"dirpx.dev/clienterr/site"
)

func newGetCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "GET a path against the configured API and print the call state",
		Long: `get performs one GET through the classified HTTP client inside a
call-state orchestrator and prints the settled state as JSON. A failed
call still prints its state and exits non-zero.`,
		Example: `  clienterr get /users/42
  API_BASE_URL=https://api.example.com clienterr get /health`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := site.Parse(at)
			if err != nil {
				return fmt.Errorf("--site: %w", err)
			}
			client, err := httpx.New(a.cfg.HTTP(),
				httpx.WithClassifier(a.classifier),
				httpx.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			call := callstate.New[json.RawMessage](
				callstate.WithClassifier(a.classifier),
				callstate.WithLogger(a.logger),
				callstate.WithSite(s),
			)
			defer call.Close()

			_, ok := call.Invoke(cmd.Context(), httpx.Call[json.RawMessage](client, http.MethodGet, args[0], nil))

			state := call.State()
			out, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("call failed: %w", state.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "site", "cli.get", "call site recorded in logs")
	return cmd
}
