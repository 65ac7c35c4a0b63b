// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config reads logger configuration from the environment and from YAML files
// and turns it into logger options.
package config
