package blit

import "strings"

// DisplayString renders the bitmap as text for debugging: '#' for set
// pixels, '.' for clear, one line per row. Diagnostic only, not part of
// the transfer contract.
func DisplayString(b *Bitmap) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.GetPixel(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
