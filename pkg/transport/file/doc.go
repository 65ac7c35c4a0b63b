// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package file implements a transport that appends records to a file on disk.
//
// When a maximum size is configured the file is rotated before a write that
// would make it grow past that size: the current file becomes path.1, older
// archives shift to path.2, path.3 and so on, and archives past the configured
// count are removed. ANSI colors are always stripped from file output.
package file
