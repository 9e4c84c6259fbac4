package schema

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		schema    string
		doc       string
		wantError string
	}{
		{
			name:   "manifest yaml",
			schema: Manifest,
			doc:    "images:\n  - name: MuseumMap-8k\n  - name: Logo\n    key: brand/logo\n",
		},
		{
			name:   "manifest json",
			schema: Manifest,
			doc:    `{"colors": [{"name": "AccentColor"}]}`,
		},
		{
			name:   "empty document",
			schema: Manifest,
			doc:    "",
		},
		{
			name:   "manifest sections without items",
			schema: Manifest,
			doc:    "images:\ncolors:\n",
		},
		{
			name:      "manifest unknown field",
			schema:    Manifest,
			doc:       "images:\n  - name: a\n    size: 3\n",
			wantError: "schema validation failed",
		},
		{
			name:      "manifest missing name",
			schema:    Manifest,
			doc:       "images:\n  - key: a\n",
			wantError: "schema validation failed",
		},
		{
			name:   "config",
			schema: Config,
			doc:    "catalogs: [Assets.xcassets]\noutputs:\n  - target: objc\n    path: out.h\n",
		},
		{
			name:      "config bad target",
			schema:    Config,
			doc:       "outputs:\n  - target: kotlin\n    path: out.kt\n",
			wantError: "schema validation failed",
		},
		{
			name:      "config bad prefix",
			schema:    Config,
			doc:       "naming:\n  prefix: 9x\n",
			wantError: "schema validation failed",
		},
		{
			name:      "not yaml",
			schema:    Config,
			doc:       "outputs: [",
			wantError: "failed to parse document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema, []byte(tt.doc))
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
