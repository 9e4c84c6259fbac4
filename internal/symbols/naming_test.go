package symbols

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MuseumMap-8k", "MuseumMap8K"},
		{"MuseumMap-thumbnail", "MuseumMapThumbnail"},
		{"facing-glyph", "FacingGlyph"},
		{"myFirstFloor_v03-metric", "MyFirstFloorV03Metric"},
		{"myFirstFloor_v03-metric-thumb", "MyFirstFloorV03MetricThumb"},
		{"Floor plan", "FloorPlan"},
		{"icon.small@2x", "IconSmall2X"},
		{"Brand/Logo", "BrandLogo"},
		{"Café crème", "CafeCreme"},
		{"3d-view", "3DView"},
		{"URLIcon", "URLIcon"},
		{"  padded  ", "Padded"},
		{"---", ""},
		{"日本", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MuseumMap8K", "museumMap8K"},
		{"MyFirstFloorV03MetricThumb", "myFirstFloorV03MetricThumb"},
		{"URLIcon", "urlIcon"},
		{"URL", "url"},
		{"PDF2Doc", "pdf2Doc"},
		{"ABc", "aBc"},
		{"3DView", "3DView"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LowerCamel(tt.in); got != tt.want {
			t.Errorf("LowerCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSwiftName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FacingGlyph", "facingGlyph"},
		{"3DView", "_3DView"},
		{"Default", "`default`"},
		{"Self", "`self`"},
		{"Defaults", "defaults"},
	}
	for _, tt := range tests {
		if got := SwiftName(tt.in); got != tt.want {
			t.Errorf("SwiftName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
