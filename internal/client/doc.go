// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tablectl admin command runtime.
//
// It logs in through an [adapter.ServerAdapter], runs a single command and
// renders the result as text.
package client
