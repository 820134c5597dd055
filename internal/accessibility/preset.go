package accessibility

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/theme"
)

// Badge is the compliance label shown next to a theme preset.
type Badge string

const (
	BadgeAAA     Badge = "AAA"
	BadgeAA      Badge = "AA"
	BadgePartial Badge = "Partial"
	BadgeFail    Badge = "Fail"
)

// partialScore is the lowest score a non-compliant theme can have and still
// be labelled Partial.
const partialScore = 50

// DefaultPreviewWorkers is used when PreviewPresets is given no worker count.
const DefaultPreviewWorkers = 4

// BadgeFor labels validation results. Compliant themes take the WCAG level
// of their text on background pair.
func BadgeFor(r Results) Badge {
	if !r.IsCompliant {
		if r.Score >= partialScore {
			return BadgePartial
		}
		return BadgeFail
	}

	ratio, ok := r.ContrastRatios[PairTextBackground]
	if !ok {
		return BadgePartial
	}
	switch colour.WCAGCompliance(ratio, false).Level {
	case colour.LevelAAA:
		return BadgeAAA
	case colour.LevelAA:
		return BadgeAA
	default:
		// Compliant results always carry a passing text pair.
		return BadgePartial
	}
}

// PresetPreview is the validation summary for one catalog preset.
type PresetPreview struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Badge   Badge   `json:"badge" yaml:"badge"`
	Results Results `json:"results" yaml:"results"`
}

// PreviewPresets validates presets concurrently with at most workers in
// flight. The output order matches the input order.
func (v *Validator) PreviewPresets(ctx context.Context, presets []theme.Preset, workers int) ([]PresetPreview, error) {
	if workers <= 0 {
		workers = DefaultPreviewWorkers
	}

	previews := make([]PresetPreview, len(presets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range presets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := presets[i]
			results := v.ValidateTheme(p)
			previews[i] = PresetPreview{
				ID:      p.ID,
				Name:    p.DisplayName(),
				Badge:   BadgeFor(results),
				Results: results,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preset preview cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("preset preview cancelled: %w", err)
	}

	v.logger.Debug("previewed presets", "count", len(previews), "workers", workers)
	return previews, nil
}
