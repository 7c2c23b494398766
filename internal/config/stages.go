package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// StageForms maps an onboarding stage to the form types that must all be
// verified before the stage auto-advances. Keys and values are the string
// forms of the domain enums; the stage engine validates them on use.
var StageForms = defaultStageForms()

func defaultStageForms() map[string][]string {
	return map[string][]string{
		"PRE_JOINING":  {"GRATUITY", "EMPLOYEE_INFO", "MEDICLAIM", "EMPLOYMENT_APP"},
		"POST_JOINING": {"NDA", "DECLARATION", "TDS", "EPF"},
	}
}

// LoadStageForms replaces the compiled-in stage requirements with the
// mapping from StageFormsFile, when one is configured.
func LoadStageForms() {
	StageForms = defaultStageForms()

	if StageFormsFile == "" {
		return
	}

	raw, err := os.ReadFile(StageFormsFile)
	if err != nil {
		log.Printf("Warning: cannot read stage forms file %s: %v", StageFormsFile, err)
		return
	}

	var parsed map[string][]string
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		log.Printf("Warning: invalid stage forms file %s: %v", StageFormsFile, err)
		return
	}

	for stage, forms := range parsed {
		StageForms[stage] = forms
	}
	log.Printf("Loaded stage form requirements from %s", StageFormsFile)
}
