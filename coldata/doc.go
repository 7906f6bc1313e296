// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package coldata provides one concrete, in-memory implementation of
// colx's Column/Reader/Buffer/Context collaborators. colx itself treats
// these as external; coldata exists so the engine is a buildable,
// testable, standalone module and so callers without an existing column
// store can still use colx directly.
package coldata
