// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It resolves the presented identity, drives the PIN gate (setup, unlock,
// logout) and runs profile and document commands on top of the encryption
// core, with the device cache GC running in the background.
package client
