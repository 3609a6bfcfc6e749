// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Bolotin

// Package client implements the sync client application runtime.
//
// It wires the local storages, remote adapters, client services, and the
// background sync worker into a single process lifecycle.
package client
