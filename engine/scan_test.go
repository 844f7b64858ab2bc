package engine

import "testing"

func TestScanURIRoundTrip(t *testing.T) {
	uri := BuildScanURI("tamu-shpe", 42, ActionSignIn)
	if uri != "tamu-shpe://event?id=42&mode=sign-in" {
		t.Fatalf("BuildScanURI() = %q", uri)
	}

	id, action, err := ParseScanURI(uri)
	if err != nil {
		t.Fatalf("ParseScanURI() error: %v", err)
	}
	if id != 42 || action != ActionSignIn {
		t.Fatalf("ParseScanURI() = (%d, %v), want (42, %v)", id, action, ActionSignIn)
	}
}

func TestParseScanURIAcceptsAnyScheme(t *testing.T) {
	id, action, err := ParseScanURI("staging-build://event?id=7&mode=sign-out")
	if err != nil {
		t.Fatalf("ParseScanURI() error: %v", err)
	}
	if id != 7 || action != ActionSignOut {
		t.Fatalf("ParseScanURI() = (%d, %v), want (7, %v)", id, action, ActionSignOut)
	}
}

func TestParseScanURIRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"wrong host", "tamu-shpe://member?id=1&mode=sign-in"},
		{"missing id", "tamu-shpe://event?mode=sign-in"},
		{"zero id", "tamu-shpe://event?id=0&mode=sign-in"},
		{"non-numeric id", "tamu-shpe://event?id=banana&mode=sign-in"},
		{"missing mode", "tamu-shpe://event?id=1"},
		{"unknown mode", "tamu-shpe://event?id=1&mode=loiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseScanURI(tt.uri); err == nil {
				t.Fatalf("ParseScanURI(%q) succeeded, want error", tt.uri)
			}
		})
	}
}
