// ABOUTME: Embeds the bundled sip.gif animation into the binary via go:embed
// ABOUTME: The asset ships with the tool; there is no on-disk lookup

package asset

import _ "embed"

//go:embed sip.gif
var sipGIF []byte

// GIF returns the bundled sipping-cup animation bytes.
func GIF() []byte {
	return sipGIF
}
