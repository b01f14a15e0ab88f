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

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/spf13/cobra"

	"dirpx.dev/clienterr"
)

// failureFlags describes a raw failure on the command line.
type failureFlags struct {
	name    string
	message string
	details string
}

func (f *failureFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "discriminant, e.g. ValidationError")
	cmd.Flags().StringVar(&f.message, "message", "", "failure message")
	cmd.Flags().StringVar(&f.details, "details", "", "details payload as JSON")
}

func (f *failureFlags) raw() (*clienterr.Raw, error) {
	var opts []clienterr.Option
	if f.details != "" {
		var details any
		if err := json.Unmarshal([]byte(f.details), &details); err != nil {
			return nil, fmt.Errorf("--details: %w", err)
		}
		opts = append(opts, clienterr.WithDetails(details))
	}
	return clienterr.Failure(f.name, f.message, opts...), nil
}

func newClassifyCmd(a *app) *cobra.Command {
	var f failureFlags
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a failure and print the record as canonical JSON",
		Example: `  clienterr classify --name ValidationError --message "bad field"
  clienterr classify --name BusinessError --message "limit exceeded" --details '{"limit":5}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := f.raw()
			if err != nil {
				return err
			}
			out, err := canonical(a.classifier.Classify(raw))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	f.bind(cmd)
	return cmd
}

// canonical renders v as RFC 8785 JSON.
func canonical(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	out, err := jsoncanonicalizer.Transform(b)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return out, nil
}
