// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via jfreymuth/oggvorbis.
package vorbis
