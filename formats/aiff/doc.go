// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source using
// github.com/go-audio/aiff. AIFF matters here because it is the native
// output container of the macOS speech synthesizer; 8, 16, 24 and 32-bit
// PCM inputs are supported.
package aiff
