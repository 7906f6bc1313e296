// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package core declares the collaborator interfaces of the colx
// data-parallel column-transformation engine: Column/Reader variants,
// Buffer, Context, Calculator, and the Workload/Format value types. It owns
// no execution logic of its own — contrib/exec, contrib/apply,
// contrib/reduce, contrib/filter, and contrib/combine implement the engine
// against these interfaces, and the top-level colx package dispatches to
// them through a typed façade.
//
// core owns none of its inputs. Columns, buffers, and the execution context
// are external collaborators described by the interfaces in this package;
// package coldata provides one concrete, in-memory implementation of them
// for tests and for callers that do not already have a column store.
package core
