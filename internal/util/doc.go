// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the megasena application.
//
// # Key Functions
//
// String Utilities:
//   - StringWidth, TruncateWidth: display-width aware measuring and cutting
//   - WrapWidth: word wrapping by terminal columns
//   - PadRight: column padding
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Wrap a banner message to the terminal width
//	lines := util.WrapWidth(msg, width-4)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
package util
