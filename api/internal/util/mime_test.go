package util

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47, 1, 2, 3}
	std := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantErr  bool
	}{
		{name: "bare base64", input: std},
		{name: "data URL", input: "data:image/png;base64," + std, wantMIME: "image/png"},
		{name: "data URL without params", input: "data:image/jpeg," + std, wantMIME: "image/jpeg"},
		{name: "url-safe alphabet", input: base64.URLEncoding.EncodeToString(payload)},
		{name: "surrounding whitespace", input: "  " + std + "\n"},
		{name: "garbage", input: "!!not base64!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mime, err := DecodeBase64MaybeDataURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("decoded bytes mismatch")
			}
			if mime != tt.wantMIME {
				t.Errorf("mime = %q, want %q", mime, tt.wantMIME)
			}
		})
	}
}

func TestPickMIME(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

	if got := PickMIME("image/webp", "image/png", png); got != "image/webp" {
		t.Errorf("explicit should win, got %q", got)
	}
	if got := PickMIME("", "image/png", nil); got != "image/png" {
		t.Errorf("hint should win, got %q", got)
	}
	if got := PickMIME("", "", png); got != "image/png" {
		t.Errorf("sniffed = %q, want image/png", got)
	}
	if got := PickMIME("", "", nil); got != "image/jpeg" {
		t.Errorf("default = %q, want image/jpeg", got)
	}
}

func TestMakeDataURL(t *testing.T) {
	if got := MakeDataURL("image/png", "QUJD"); got != "data:image/png;base64,QUJD" {
		t.Errorf("MakeDataURL() = %q", got)
	}
}
