package constants

// Track glyphs
const (
	GlyphEmpty      = ' '
	GlyphKerb       = '|'  // Kerb going straight
	GlyphKerbRight  = '/'  // Kerb drifting right towards the finish
	GlyphKerbLeft   = '\\' // Kerb drifting left towards the finish
	GlyphRock       = '*'
	GlyphExplosion  = '*'
	GlyphDigitFirst = '0'
)

// IsTerrainGlyph reports whether r is produced by the track generator
// A car glyph must not collide with these or mark/unmark would corrupt terrain
func IsTerrainGlyph(r rune) bool {
	switch r {
	case GlyphEmpty, GlyphKerb, GlyphKerbRight, GlyphKerbLeft, GlyphRock:
		return true
	}
	return r >= '0' && r <= '9'
}
