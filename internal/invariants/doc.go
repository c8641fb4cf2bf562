// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes whether the build carries the "invariants" (or
// "race") build tag. Range construction and run extraction use it to assert
// their preconditions in test builds without paying for the checks in
// production builds.
package invariants
