package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/theme"
	"github.com/jmylchreest/brandlint/internal/version"
)

// ContrastResponse is returned by GET /api/v1/contrast.
type ContrastResponse struct {
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	LargeText  bool         `json:"largeText"`
	Ratio      float64      `json:"ratio"`
	RatioText  string       `json:"ratioText"`
	Level      colour.Level `json:"level"`
	Compliant  bool         `json:"compliant"`
}

// SuggestResponse is returned by GET /api/v1/suggest.
type SuggestResponse struct {
	Current     string              `json:"current"`
	Target      string              `json:"target"`
	LargeText   bool                `json:"largeText"`
	AlreadyPass bool                `json:"alreadyPasses"`
	Suggestions []colour.Suggestion `json:"suggestions"`
}

func (s *Server) handleValidateTheme(w http.ResponseWriter, r *http.Request) {
	var preset theme.Preset
	if status, err := decodeBody(w, r, &preset); err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, s.validator.ValidateTheme(preset))
}

func (s *Server) handleValidateColors(w http.ResponseWriter, r *http.Request) {
	var scheme theme.ColorScheme
	if status, err := decodeBody(w, r, &scheme); err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, s.validator.ValidateColorScheme(scheme))
}

func (s *Server) handleValidateTypography(w http.ResponseWriter, r *http.Request) {
	var cfg theme.TypographyConfig
	if status, err := decodeBody(w, r, &cfg); err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, s.validator.ValidateTypography(cfg))
}

func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fg, bg := q.Get("foreground"), q.Get("background")
	large, err := parseLarge(q.Get("large"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ratio, err := colour.ContrastRatio(fg, bg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	compliance := colour.WCAGCompliance(ratio, large)
	writeJSON(w, http.StatusOK, ContrastResponse{
		Foreground: fg,
		Background: bg,
		LargeText:  large,
		Ratio:      ratio,
		RatioText:  colour.FormatRatio(ratio),
		Level:      compliance.Level,
		Compliant:  compliance.Compliant,
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	current, target := q.Get("current"), q.Get("target")
	large, err := parseLarge(q.Get("large"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	suggestions, err := colour.SuggestAccessibleColours(current, target, large)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ratio, _ := colour.ContrastRatio(current, target)
	writeJSON(w, http.StatusOK, SuggestResponse{
		Current:     current,
		Target:      target,
		LargeText:   large,
		AlreadyPass: ratio >= colour.MinimumRatio(colour.LevelAA, large),
		Suggestions: colour.RankSuggestions(current, target, suggestions, large),
	})
}

func (s *Server) handlePresetPreview(w http.ResponseWriter, r *http.Request) {
	var presets []theme.Preset
	if status, err := decodeBody(w, r, &presets); err != nil {
		writeError(w, status, err)
		return
	}
	for i := range presets {
		if presets[i].ID == "" {
			presets[i].ID = fmt.Sprintf("preset-%d", i+1)
		}
	}

	previews, err := s.validator.PreviewPresets(r.Context(), presets, s.opts.PresetWorkers)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if previews == nil {
		previews = []accessibility.PresetPreview{}
	}
	writeJSON(w, http.StatusOK, previews)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, version.GetInfo())
}

func parseLarge(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	large, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("large must be true or false")
	}
	return large, nil
}
