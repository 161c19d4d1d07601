package mapping

import (
	"fmt"

	"label-translator/internal/diagnostic"
)

// Validate checks the groups of a table for shapes that can never
// translate. It is structural only; whether an input label actually
// carries the referenced keywords is only known at resolution time.
func Validate(t *TranslationTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "translation table is nil", "", "")
		return res
	}

	res.Source = t.path

	for _, g := range t.groups {
		res.AtLine(g.Line, func() { validateGroup(res, g) })
	}

	return res
}

func validateGroup(res *diagnostic.Diagnostics, g *TranslationGroup) {
	if g.Name == "" {
		res.AddError("missing_group_name", "group has no name", "", "")
	}

	for _, s := range g.InputKeyDependencies {
		if _, err := ParseDependency(s); err != nil {
			res.AddError("malformed_dependency", err.Error(), g.Name, KeyInputKeyDependencies)
		}
	}

	for _, s := range g.OutputAttributes {
		if _, err := ParseNameValue(s); err != nil {
			res.AddError("malformed_attribute", err.Error(), g.Name, KeyOutputAttributes)
		}
	}

	for _, s := range g.OutputSiblings {
		if _, err := ParseNameValue(s); err != nil {
			res.AddError("malformed_sibling", err.Error(), g.Name, KeyOutputSiblings)
		}
	}

	for i, p := range g.InputPositions {
		if len(p) == 0 {
			res.AddError("empty_input_position", fmt.Sprintf("input position %d is empty", i+1), g.Name, KeyInputPosition)
		}
	}

	if len(g.InputKeyDependencies) > 0 && g.InputKey == "" {
		res.AddWarning("unused_dependencies", "dependencies have no effect without InputKey", g.Name, KeyInputKeyDependencies)
	}

	if !g.Auto {
		return
	}

	// An automatic group must be able to produce a value.
	if g.InputKey == "" && !g.HasDefault() {
		res.AddError("no_input", "automatic group has neither InputKey nor InputDefault", g.Name, KeyInputKey)
	}

	if g.InputKey != "" && len(g.InputPositions) == 0 && !g.HasDefault() {
		res.AddError("no_input_position", "automatic group has InputKey but no InputPosition or InputDefault", g.Name, KeyInputPosition)
	}

	if len(g.Translations) == 0 {
		res.AddError("no_translation", "automatic group has no Translation pairs", g.Name, KeyTranslation)
	}
}
