// SPDX-License-Identifier: Apache-2.0

// Package client implements the headless client application runtime.
//
// It wires the unlock flow, the local vault services, background
// synchronization, and the one-time code refresher into a single process
// lifecycle.
package client
