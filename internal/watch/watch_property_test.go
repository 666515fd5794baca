package watch

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

// Saving any selection and loading it into a fresh instance reproduces every
// catalog flag.
func TestProperty_SaveLoadRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	dir := t.TempDir()

	seedCount := len(catalog.Seeds.Items())
	gearCount := len(catalog.Gear.Items())

	properties.Property("round trip preserves every flag", prop.ForAll(
		func(seedFlags []bool, gearFlags []bool) bool {
			s := New()
			for i, name := range catalog.Seeds.Names() {
				s.Set(catalog.Seeds, name, seedFlags[i])
			}
			for i, name := range catalog.Gear.Names() {
				s.Set(catalog.Gear, name, gearFlags[i])
			}

			path := filepath.Join(dir, "roundtrip.json")
			if err := Save(path, s); err != nil {
				return false
			}
			fresh := New()
			if err := Load(path, fresh); err != nil {
				return false
			}
			for _, c := range catalog.Categories {
				for _, name := range c.Names() {
					if fresh.Selected(c, name) != s.Selected(c, name) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOfN(seedCount, gen.Bool()),
		gen.SliceOfN(gearCount, gen.Bool()),
	))

	properties.TestingRun(t)
}

// Setting arbitrary names never grows the selection beyond the catalog.
func TestProperty_KeysStayWithinCatalog(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("unknown names are never added", prop.ForAll(
		func(names []string, on bool) bool {
			s := New()
			for _, name := range names {
				accepted := s.Set(catalog.Seeds, name, on)
				if accepted != catalog.Seeds.Contains(name) {
					return false
				}
			}
			for name := range s.Snapshot(catalog.Seeds) {
				if !catalog.Seeds.Contains(name) {
					return false
				}
			}
			_, total := s.Count(catalog.Seeds)
			return total == len(catalog.Seeds.Items())
		},
		gen.SliceOf(gen.OneGenOf(gen.AlphaString(), gen.OneConstOf("Carrot", "Tomato", "Moon Melon"))),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
