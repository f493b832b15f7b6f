// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source using
// github.com/hajimehoshi/go-mp3. Output is always stereo 16-bit PCM at the
// stream's native sample rate, normalized to float32.
package mp3
