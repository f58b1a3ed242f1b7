package main

import "testing"

func TestParseRawSceneDispatchesOnExtension(t *testing.T) {
	jsonData := []byte(`{"lights":[],"camera":{"film_builder":{"size":[4,4]},"to_world":{"kind":"Identity"},"variant":{"kind":"Perspective","x_fov":60,"near_clip":0.1,"far_clip":100,"aspect":1}},"shapes":{},"bsdfs":{},"bsdf_mapping":{}}`)
	if _, err := parseRawScene("scene.json", jsonData); err != nil {
		t.Errorf("unexpected error parsing json scene: %v", err)
	}

	yamlData := []byte("lights: []\ncamera:\n  film_builder:\n    size: [4, 4]\n  to_world:\n    kind: Identity\n  variant:\n    kind: Perspective\n    x_fov: 60\n    near_clip: 0.1\n    far_clip: 100\n    aspect: 1\nshapes: {}\nbsdfs: {}\nbsdf_mapping: {}\n")
	if _, err := parseRawScene("scene.yaml", yamlData); err != nil {
		t.Errorf("unexpected error parsing yaml scene: %v", err)
	}

	if _, err := parseRawScene("scene.json", []byte("not json")); err == nil {
		t.Error("expected error parsing malformed json")
	}
	if _, err := parseRawScene("scene.yaml", []byte(":\n  - [not valid")); err == nil {
		t.Error("expected error parsing malformed yaml")
	}
}

func TestBuildIntegratorDispatchesOnName(t *testing.T) {
	tests := []struct {
		name        string
		expectError bool
	}{
		{"depth", false},
		{"direct", false},
		{"path", false},
		{"bdpt", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &renderFlags{integrator: tt.name, depthScale: 10, maxDepth: 4}
			integ, err := buildIntegrator(f)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for integrator %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error for integrator %q: %v", tt.name, err)
			}
			if integ == nil {
				t.Errorf("expected non-nil integrator for %q", tt.name)
			}
		})
	}
}

func TestMin(t *testing.T) {
	if got := min(3, 5); got != 3 {
		t.Errorf("min(3,5) = %d, want 3", got)
	}
	if got := min(5, 3); got != 3 {
		t.Errorf("min(5,3) = %d, want 3", got)
	}
	if got := min(4, 4); got != 4 {
		t.Errorf("min(4,4) = %d, want 4", got)
	}
}
