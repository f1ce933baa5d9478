package ocrmac

import (
	"fmt"
	"regexp"
)

// RecognitionLevel selects the speed/accuracy trade-off of the recognition
// backend.
//
// Platform requirements:
// - fast, balanced, accurate: Vision framework
// - livetext: LiveText framework, macOS Sonoma (14.0) or later
type RecognitionLevel string

const (
	RecognitionFast     RecognitionLevel = "fast"
	RecognitionBalanced RecognitionLevel = "balanced"
	RecognitionAccurate RecognitionLevel = "accurate"
	RecognitionLiveText RecognitionLevel = "livetext"
)

// Validate rejects values outside the closed set of recognition levels.
func (l RecognitionLevel) Validate() error {
	switch l {
	case RecognitionFast, RecognitionBalanced, RecognitionAccurate, RecognitionLiveText:
		return nil
	}
	return newError(ErrorTypeValidation, fmt.Sprintf("invalid recognition level: %q", string(l)), nil)
}

// DirectiveMode says how a recognition level reaches the backend.
type DirectiveMode int

const (
	// DirectiveDefault leaves the quality choice to the backend.
	DirectiveDefault DirectiveMode = iota
	// DirectiveLevel passes the level value through as a quality parameter.
	DirectiveLevel
	// DirectiveFramework selects a distinct backend framework instead of a
	// quality parameter.
	DirectiveFramework
)

// Directive is the backend-facing form of a recognition level.
type Directive struct {
	Mode      DirectiveMode
	Level     string // quality value when Mode == DirectiveLevel
	Framework string // framework name when Mode == DirectiveFramework
}

// Directive maps the level to its backend directive. The three-way dispatch
// lives here so the image and document paths stay identical.
func (l RecognitionLevel) Directive() Directive {
	switch l {
	case RecognitionLiveText:
		return Directive{Mode: DirectiveFramework, Framework: "livetext"}
	case RecognitionBalanced:
		return Directive{Mode: DirectiveDefault}
	default:
		return Directive{Mode: DirectiveLevel, Level: string(l)}
	}
}

// maxLanguages caps the language preference list.
const maxLanguages = 5

// languagePattern matches IETF BCP 47 tags of the shape
// language[-Script][-Region], case-insensitively.
var languagePattern = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z]{4})?(-[A-Za-z]{2})?$`)

// Params holds the caller-supplied recognition options. It is a value type,
// built once per processing request and never mutated.
//
// Languages is an ordered preference list of IETF BCP 47 language tags
// (e.g. "en-US", "zh-Hans"); nil means the backend picks its defaults.
type Params struct {
	Languages []string
	Level     RecognitionLevel
}

// DefaultParams returns the parameters used when the caller supplies none:
// balanced recognition with the backend's default languages.
func DefaultParams() Params {
	return Params{Level: RecognitionBalanced}
}

// NewParams builds and validates recognition parameters. An empty level
// means balanced.
func NewParams(languages []string, level RecognitionLevel) (Params, error) {
	if level == "" {
		level = RecognitionBalanced
	}
	p := Params{Languages: languages, Level: level}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks the recognition level and the language list. Language
// matching is case-insensitive and the original casing is preserved.
func (p Params) Validate() error {
	if err := p.Level.Validate(); err != nil {
		return err
	}

	if p.Languages == nil {
		return nil
	}
	if len(p.Languages) == 0 {
		return newError(ErrorTypeValidation, "language list must contain at least one entry", nil)
	}
	if len(p.Languages) > maxLanguages {
		return newError(ErrorTypeValidation,
			fmt.Sprintf("maximum %d languages allowed, got %d", maxLanguages, len(p.Languages)), nil)
	}
	for _, lang := range p.Languages {
		if !languagePattern.MatchString(lang) {
			return newError(ErrorTypeValidation,
				fmt.Sprintf("invalid IETF BCP 47 language code: %q. Expected format: 'en-US', 'fr-FR', 'zh-Hans'", lang), nil)
		}
	}
	return nil
}
