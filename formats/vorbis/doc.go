// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source using
// github.com/jfreymuth/oggvorbis. Samples arrive already normalized as
// float32, so decoding is a thin interleaving wrapper.
package vorbis
