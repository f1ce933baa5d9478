package ocrmac

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

//go:embed vision_ocr.swift
var visionScript []byte

// VisionRecognizer drives the Vision and LiveText frameworks through a
// small Swift program run with the system Swift interpreter. The program
// receives a JSON request as its argument and prints one JSON array of
// annotations on stdout.
type VisionRecognizer struct {
	// SwiftPath overrides the swift binary; empty means "swift" from PATH.
	SwiftPath string
}

// NewVisionRecognizer returns the production recognition backend.
func NewVisionRecognizer() *VisionRecognizer {
	return &VisionRecognizer{}
}

// visionRequest is the configuration handed to the Swift program.
type visionRequest struct {
	ImagePath        string   `json:"image_path"`
	Languages        []string `json:"languages,omitempty"`
	RecognitionLevel string   `json:"recognition_level,omitempty"`
	Framework        string   `json:"framework,omitempty"`
}

// visionAnnotation mirrors the backend output tuple: text, confidence, and
// a bottom-left-relative bounding box as [x, y, width, height].
type visionAnnotation struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	Box        [4]float64 `json:"box"`
}

// buildVisionRequest translates a quality directive into the Swift
// program's configuration.
func buildVisionRequest(imagePath string, languages []string, directive Directive) visionRequest {
	req := visionRequest{ImagePath: imagePath, Languages: languages}
	switch directive.Mode {
	case DirectiveFramework:
		req.Framework = directive.Framework
	case DirectiveLevel:
		req.RecognitionLevel = directive.Level
	}
	return req
}

// Recognize runs the Vision helper against one image file.
func (r *VisionRecognizer) Recognize(imagePath string, languages []string, directive Directive) ([]Annotation, error) {
	swiftPath := r.SwiftPath
	if swiftPath == "" {
		swiftPath = "swift"
	}
	if _, err := exec.LookPath(swiftPath); err != nil {
		return nil, newError(ErrorTypeBackendUnavailable,
			"swift interpreter not found. The Vision backend requires the macOS Command Line Tools (xcode-select --install)", err)
	}

	payload, err := json.Marshal(buildVisionRequest(imagePath, languages, directive))
	if err != nil {
		return nil, fmt.Errorf("failed to encode recognition request: %w", err)
	}

	// The interpreter wants a script file, materialize the embedded one.
	script, err := os.CreateTemp("", "ocrmac-vision-*.swift")
	if err != nil {
		return nil, fmt.Errorf("failed to write recognition script: %w", err)
	}
	defer os.Remove(script.Name())
	if _, err := script.Write(visionScript); err != nil {
		script.Close()
		return nil, fmt.Errorf("failed to write recognition script: %w", err)
	}
	if err := script.Close(); err != nil {
		return nil, fmt.Errorf("failed to write recognition script: %w", err)
	}

	cmd := exec.Command(swiftPath, script.Name(), string(payload))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("vision recognition failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	return decodeVisionOutput(stdout.Bytes())
}

// decodeVisionOutput parses the annotation array printed by the Swift
// program into backend annotations.
func decodeVisionOutput(data []byte) ([]Annotation, error) {
	var raw []visionAnnotation
	if err := json.Unmarshal(bytes.TrimSpace(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode recognition output: %w", err)
	}

	annotations := make([]Annotation, 0, len(raw))
	for _, a := range raw {
		annotations = append(annotations, Annotation{
			Text:       a.Text,
			Confidence: a.Confidence,
			Box: RelativeBox{
				X:      a.Box[0],
				Y:      a.Box[1],
				Width:  a.Box[2],
				Height: a.Box[3],
			},
		})
	}
	return annotations, nil
}
