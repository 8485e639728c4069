package check

import "github.com/yaklabco/bazelfix/pkg/config"

// Detector runs every registered rule's detector against one file and
// collects findings. Detection never mutates the file's text.
type Detector struct {
	Registry *Registry
	Config   *config.Config
}

// NewDetector creates a Detector over the given registry.
func NewDetector(registry *Registry, cfg *config.Config) *Detector {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Detector{Registry: registry, Config: cfg}
}

// Detect returns all findings for the file, in rule registration
// order. A file with zero findings is reported unmodified and is
// excluded from the fix phase by the pipeline.
func (d *Detector) Detect(f *File) []Finding {
	var findings []Finding
	for _, rule := range d.Registry.Rules() {
		if !d.Config.RuleEnabled(rule.Name()) {
			continue
		}
		findings = append(findings, rule.Detect(f)...)
	}
	return findings
}
