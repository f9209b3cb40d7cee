package extract

import (
	"testing"

	"github.com/lbarbosa/ctdose/internal/model"
)

// The catalogue and the field registry must agree exactly: config validates
// overlay keys against the registry, and the builder resolves by name.
func TestCatalogueCoversFieldRegistry(t *testing.T) {
	for _, f := range model.AllPatternFields {
		chain, ok := catalogue[f.Name]
		if !ok {
			t.Errorf("field %q has no catalogue chain", f.Name)
			continue
		}
		if len(chain) == 0 {
			t.Errorf("field %q has an empty chain", f.Name)
		}
	}
	for name := range catalogue {
		if _, ok := model.PatternFieldByName(name); !ok {
			t.Errorf("catalogue key %q is not a registered field", name)
		}
	}
}

func TestCataloguePatternsHaveOneCaptureGroup(t *testing.T) {
	for name, chain := range catalogue {
		for i, p := range chain {
			if n := p.re.NumSubexp(); n != 1 {
				t.Errorf("%s[%d]: %d capture groups, want 1", name, i, n)
			}
		}
	}
}
