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

// Command rgbdemo converts the built-in sample candidates and prints the
// results, first as debug text and then as JSON.
package main

import (
	"log/slog"
	"os"

	"dirpx.dev/rgb/internal/demo"
	"github.com/fatih/color"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	err := demo.Run(color.Output,
		demo.WithLogger(logger),
		demo.WithJSON(),
		demo.WithColor(!color.NoColor),
	)
	if err != nil {
		logger.Error("rgbdemo failed", slog.Any("error", err))
		os.Exit(1)
	}
}
