package hclconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// validator checks blocks across every loaded file before they reach the
// registry, so problems are reported at their source position.
type validator struct {
	backends  map[string]hcl.Range
	languages map[string]hcl.Range
}

func newValidator() *validator {
	return &validator{
		backends:  make(map[string]hcl.Range),
		languages: make(map[string]hcl.Range),
	}
}

func (v *validator) checkBackend(b *backendBlock) hcl.Diagnostics {
	var diags hcl.Diagnostics

	if b.Pattern == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty backend pattern",
			Detail:   "A backend block must be labelled with a target-arch-vendor pattern such as \"bmv2-*-p4org\".",
			Subject:  &b.DefRange,
		})
	}
	if prev, exists := v.backends[b.Pattern]; exists {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate backend",
			Detail:   fmt.Sprintf("Backend %q was already defined at %s.", b.Pattern, prev),
			Subject:  &b.DefRange,
		})
	} else {
		v.backends[b.Pattern] = b.DefRange
	}

	executables := [stage.Count]string{b.Preprocessor, b.Compiler, b.Assembler, b.Linker}
	for _, n := range stage.All {
		if executables[n] == "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing stage executable",
				Detail:   fmt.Sprintf("Backend %q sets an empty %s executable.", b.Pattern, n),
				Subject:  &b.DefRange,
			})
		}
	}
	return diags
}

func (v *validator) checkLanguage(l *languageBlock) hcl.Diagnostics {
	if prev, exists := v.languages[l.Name]; exists {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Duplicate language",
			Detail:   fmt.Sprintf("Language %q was already defined at %s.", l.Name, prev),
			Subject:  &l.DefRange,
		}}
	}
	v.languages[l.Name] = l.DefRange
	return nil
}
