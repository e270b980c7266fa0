// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF PCM audio via go-audio/aiff.
package aiff
