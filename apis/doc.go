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

// Package apis defines the small Go-level contracts shared by the rgb
// packages.
//
// Renderers and transport projections (render, grpcx, adapter) target
// these interfaces and view types instead of the concrete *rgb.Error, so
// they can describe any error that exposes a code, a reason or details.
//
// This package must remain lightweight: interfaces and tiny view types only.
package apis
