// Package compat decides whether a replacement appliance fits where an
// existing one is installed.
package compat

import (
	"fmt"

	"appliancefit/internal/model"
)

const (
	SummaryCompared     = "Comparison based on manufacturer installation specifications."
	SummaryInsufficient = "One or both model numbers were not found in the verified dataset."
	NoModifications     = "No installation modifications are required."
)

// rule inspects both specs and, when it fires, returns the verdict it
// escalates to and the modification it requires.
type rule func(existing, replacement model.Spec) (model.Verdict, string, bool)

// rules run in this order; every rule runs even after NotCompatible.
var rules = []rule{cutoutHeightRule, cutoutDepthRule, amperageRule}

func cutoutHeightRule(existing, replacement model.Spec) (model.Verdict, string, bool) {
	newMin, oldMax := replacement.CutoutHeightMin, existing.CutoutHeightMax
	if !newMin.Known || !oldMax.Known || newMin.Value <= oldMax.Value {
		return 0, "", false
	}
	return model.NotCompatible,
		fmt.Sprintf("Cabinet cut-out height must increase by %s inches.", model.FormatDecimal(newMin.Value-oldMax.Value)),
		true
}

func cutoutDepthRule(existing, replacement model.Spec) (model.Verdict, string, bool) {
	newMin, oldMin := replacement.CutoutDepthMin, existing.CutoutDepthMin
	if !newMin.Known || !oldMin.Known || newMin.Value <= oldMin.Value {
		return 0, "", false
	}
	return model.ModificationsRequired,
		fmt.Sprintf("Cabinet depth or rear clearance adjustment required: cut-out depth must increase by %s inches.", model.FormatDecimal(newMin.Value-oldMin.Value)),
		true
}

func amperageRule(existing, replacement model.Spec) (model.Verdict, string, bool) {
	newAmps, oldAmps := replacement.Amperage.Number(), existing.Amperage.Number()
	if !newAmps.Known || !oldAmps.Known || newAmps.Value <= oldAmps.Value {
		return 0, "", false
	}
	return model.ModificationsRequired,
		fmt.Sprintf("Electrical circuit upgrade required: %sA to %sA.", existing.Amperage.Value, replacement.Amperage.Value),
		true
}

// escalate returns the more severe of two graded verdicts.
func escalate(current, next model.Verdict) model.Verdict {
	if next > current {
		return next
	}
	return current
}

// Compare diffs two specs. A nil or unresolved side yields InsufficientData
// with empty collections.
func Compare(existing, replacement *model.Spec) model.ComparisonResult {
	if existing == nil || replacement == nil || !existing.Resolved() || !replacement.Resolved() {
		return Insufficient()
	}

	verdict := model.DirectReplacement
	mods := []string{}
	for _, r := range rules {
		v, msg, fired := r(*existing, *replacement)
		if !fired {
			continue
		}
		verdict = escalate(verdict, v)
		mods = append(mods, msg)
	}

	impact := mods
	if len(mods) == 0 {
		impact = []string{NoModifications}
	}

	return model.ComparisonResult{
		Verdict:       verdict,
		Summary:       SummaryCompared,
		Modifications: mods,
		InstallImpact: impact,
		Charts:        Charts(*existing, *replacement),
		Sources:       sources(*existing, *replacement),
	}
}

// Insufficient is the terminal result when a side could not be resolved.
func Insufficient() model.ComparisonResult {
	return model.ComparisonResult{
		Verdict:       model.InsufficientData,
		Summary:       SummaryInsufficient,
		Modifications: []string{},
		InstallImpact: []string{},
		Charts:        []model.Chart{},
		Sources:       []string{},
	}
}

// Failed is the result for an unexpected fault during comparison.
func Failed(err error) model.ComparisonResult {
	return model.ComparisonResult{
		Verdict:       model.Error,
		Summary:       err.Error(),
		Modifications: []string{},
		InstallImpact: []string{},
		Charts:        []model.Chart{},
		Sources:       []string{},
	}
}

func sources(specs ...model.Spec) []string {
	out := []string{}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if !s.SourceURL.Known || seen[s.SourceURL.Value] {
			continue
		}
		seen[s.SourceURL.Value] = true
		out = append(out, s.SourceURL.Value)
	}
	return out
}
