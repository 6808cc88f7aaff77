// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client application runtime.
//
// It wires the state services, the server adapter, and the background vault
// timeout worker into a single process lifecycle: on startup the active
// account's session is restored into the adapter, active-account switches
// are tracked for the whole process lifetime, and the timeout worker runs
// until shutdown.
package client
