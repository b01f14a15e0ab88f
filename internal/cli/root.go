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

// Package cli implements the clienterr command.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dirpx.dev/clienterr/classifier"
	"dirpx.dev/clienterr/config"
	"dirpx.dev/clienterr/internal/logging"
)

// app is the state shared by every subcommand once the root has run setup.
type app struct {
	cfgPath string
	debug   bool

	cfg        *config.Config
	logger     *slog.Logger
	classifier *classifier.Classifier
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "clienterr",
		Short: "Classify client-side failures",
		Long: `clienterr classifies raw failures into the client error taxonomy
(ValidationError 400, BusinessError 422, everything else 500) and
runs API calls through the same pipeline the front-end uses.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default: built-in defaults)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newClassifyCmd(a), newExplainCmd(a), newGetCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())

	opts, err := cfg.ClassifierOptions()
	if err != nil {
		return err
	}
	opts = append(opts, classifier.WithLogger(a.logger))
	if a.classifier, err = classifier.New(opts...); err != nil {
		return fmt.Errorf("build classifier: %w", err)
	}

	a.logger.Debug("Logger initialized", "level", cfg.Logging.Level, "config", a.cfgPath)
	return nil
}
