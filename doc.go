// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package colx is a data-parallel column-transformation engine over a
// typed columnar table model.
//
// Given one or more immutable source columns and a caller-supplied
// per-element or per-row function, colx produces a freshly allocated typed
// buffer (Transformer / RowTransformer), reduces the columns to a scalar or
// container (Reducer / RowReducer), or derives a sorted row-index array by
// predicate (Filterer / RowFilterer). Work is split across worker
// goroutines via a caller-provided core.Context; colx decides whether and
// how to split based on input size, a declared Workload hint, and the
// target buffer's alignment constraints — see package core/contrib/exec.
//
// The façade types here are a thin typed dispatch layer: they validate
// arguments, construct the right calculator from core/contrib/{apply,
// reduce,filter}, and run it through core/contrib/exec.Execute. The
// interfaces and packed buffer implementations they dispatch to live in
// packages core and coldata.
package colx
