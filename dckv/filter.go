// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dckv

// FilterMode selects how a Filter treats the keys it lists
type FilterMode int

const (
	// FilterNone keeps every decoded unit
	FilterNone FilterMode = iota

	// FilterWhitelist keeps only listed units
	FilterWhitelist

	// FilterBlacklist drops listed units
	FilterBlacklist
)

// Filter selects the decoded units reported to a Deserializer.
//
// Only FilterNone is implemented. Whitelist and blacklist modes are reserved and are not yet
// enforced by Deserialize; pass NoFilter.
type Filter struct {
	mode FilterMode
}

// NoFilter returns the Filter that keeps every decoded unit
func NoFilter() Filter {
	return Filter{}
}

// Mode returns the mode of the filter
func (f Filter) Mode() FilterMode {
	return f.mode
}
