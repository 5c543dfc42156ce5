package extract

import (
	"strings"
	"testing"
)

func TestTextFromPDFBytesRejectsGarbage(t *testing.T) {
	_, err := TextFromPDFBytes([]byte("not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
	if !strings.Contains(err.Error(), "open pdf") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromPDFFileMissing(t *testing.T) {
	_, err := TextFromPDFFile("testdata/does_not_exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
