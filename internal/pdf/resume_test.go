package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func sampleData() ResumeData {
	return ResumeData{
		FirstName:  "Ada",
		Surname:    "Lovelace",
		City:       "London",
		PostalCode: "W1",
		Country:    "UK",
		Phone:      "555-0100",
		Email:      "ada@example.com",
		Summary:    "Analytical engine programmer.",
		Skills:     "Mathematics, Notes, Compilation",
		Experience: "Collaborated with Charles Babbage.",
		Education:  "Private tutoring",
	}
}

func TestBuildProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Build(&buf, sampleData()); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	out := buf.Bytes()
	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Fatalf("output does not start with %%PDF, got %q", out[:8])
	}
}

func TestBuildWithoutPhoto(t *testing.T) {
	data := sampleData()
	data.Photo = nil

	var buf bytes.Buffer
	if err := Build(&buf, data); err != nil {
		t.Fatalf("build without photo failed: %v", err)
	}
}
