// ocrbridge is a command-line tool for converting images and PDFs to hOCR
// using the OCR engine built into macOS.
//
// The tool feeds the input file to the Apple Vision framework (or LiveText
// for the livetext recognition level) and writes the recognized text as an
// hOCR XML document, with word-level bounding boxes and confidences.
//
// Configuration:
//
// Recognition options can be given in a YAML configuration file:
//
//	languages:
//	  - en-US
//	  - fr-FR
//	recognition_level: accurate
//
// Usage:
//
//	ocrbridge -input scan.pdf [options]
//
// Required flags:
//
//	-input string   Path to the image or PDF file to recognize
//
// Recognition options:
//
//	-config string     Path to a YAML configuration file
//	-languages string  Comma-separated IETF BCP 47 language tags (max 5, overrides config)
//	-level string      Recognition level: fast, balanced, accurate, livetext (overrides config)
//
// Output options:
//
//	-hocr string    Path to save the hOCR output (default: stdout)
//	-text string    Path to save the plain text extracted from the hOCR
//
// Examples:
//
//	ocrbridge -input receipt.png
//	ocrbridge -input scan.pdf -level accurate -languages en-US,de-DE -hocr scan.hocr
//	ocrbridge -input scan.pdf -config ocr.yml -hocr scan.hocr -text scan.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OCRBridge/ocrbridge-ocrmac/pkg/hocr"
	"github.com/OCRBridge/ocrbridge-ocrmac/pkg/ocrmac"
)

type yamlConfig struct {
	Languages        []string `yaml:"languages"`
	RecognitionLevel string   `yaml:"recognition_level"`
}

// loadConfig reads a YAML file with recognition options
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

func main() {
	inputPath := flag.String("input", "", "Path to the image or PDF file to recognize (required)")
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	languages := flag.String("languages", "", "Comma-separated IETF BCP 47 language tags, max 5")
	level := flag.String("level", "", "Recognition level: fast, balanced, accurate, livetext")
	hocrPath := flag.String("hocr", "", "Path to save the hOCR output (default: stdout)")
	textPath := flag.String("text", "", "Path to save the plain text extracted from the hOCR")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Start from the config file, let flags override.
	var langList []string
	recognitionLevel := ""

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		langList = cfg.Languages
		recognitionLevel = cfg.RecognitionLevel
	}
	if *languages != "" {
		langList = nil
		for _, lang := range strings.Split(*languages, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				langList = append(langList, lang)
			}
		}
	}
	if *level != "" {
		recognitionLevel = *level
	}

	params, err := ocrmac.NewParams(langList, ocrmac.RecognitionLevel(recognitionLevel))
	if err != nil {
		log.Fatalf("Invalid recognition parameters: %v", err)
	}

	engine := ocrmac.NewEngine()
	hocrHTML, err := engine.Process(*inputPath, &params)
	if err != nil {
		log.Fatalf("Error processing %s: %v", *inputPath, err)
	}

	// Write hOCR output.
	if *hocrPath != "" {
		if err := os.WriteFile(*hocrPath, []byte(hocrHTML), 0644); err != nil {
			log.Fatalf("Failed to write HOCR output: %v", err)
		}
		fmt.Println("Rendered HOCR output saved to:", *hocrPath)
	} else {
		fmt.Println(hocrHTML)
	}

	// Write plain text output if flag is provided.
	if *textPath != "" {
		doc, err := hocr.ParseHOCR([]byte(hocrHTML))
		if err != nil {
			log.Fatalf("Failed to parse generated HOCR: %v", err)
		}
		if err := os.WriteFile(*textPath, []byte(hocr.ExtractText(&doc)), 0644); err != nil {
			log.Fatalf("Failed to write text output: %v", err)
		}
		fmt.Println("Document text saved to:", *textPath)
	}
}
