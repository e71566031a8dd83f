package golondon

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-london/golondon/linestatus"
	"github.com/go-london/golondon/tfl"
)

type lineStatusEntry struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ModeName      string            `json:"modeName"`
	CurrentStatus *tfl.LineStatus   `json:"currentStatus,omitempty"`
	StatusColour  linestatus.Colour `json:"statusColour"`
	AllStatuses   []tfl.LineStatus  `json:"allStatuses"`
}

type lineStatusResponse struct {
	Lines       []lineStatusEntry `json:"lines"`
	RespondedAt string            `json:"respondedAt"`
}

func (a *App) fetchLineStatuses(r *http.Request, modes []string) ([]tfl.Line, error) {
	key := strings.Join(modes, ",")
	if cached, ok := a.statusCache.Get(key); ok {
		return cached, nil
	}
	lines, err := a.Lines.LineStatuses(r.Context(), modes)
	if err != nil {
		return nil, err
	}
	a.statusCache.Set(key, lines)
	return lines, nil
}

func (a *App) handleLineStatus(w http.ResponseWriter, r *http.Request) {
	modes, err := parseModes(r.URL.Query().Get("modes"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(modes) == 0 {
		modes = linestatus.StatusModes()
	}
	lines, err := a.fetchLineStatuses(r, modes)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	now := time.Now()
	entries := make([]lineStatusEntry, 0, len(lines))
	for _, l := range lines {
		entry := lineStatusEntry{
			ID:           l.ID,
			Name:         l.Name,
			ModeName:     l.ModeName,
			StatusColour: linestatus.ColourNeutral,
			AllStatuses:  l.LineStatuses,
		}
		if st, ok := linestatus.CurrentStatus(l, now); ok {
			entry.CurrentStatus = &st
			entry.StatusColour = linestatus.SeverityColour(st.StatusSeverity)
		}
		entries = append(entries, entry)
	}
	writeJSON(w, http.StatusOK, lineStatusResponse{
		Lines:       entries,
		RespondedAt: iso8601Now(),
	})
}

type overviewResponse struct {
	Overview    linestatus.OverviewStatus `json:"overview"`
	Modes       []string                  `json:"modes"`
	RespondedAt string                    `json:"respondedAt"`
}

func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	modes, err := parseModes(r.URL.Query().Get("modes"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(modes) == 0 {
		modes = linestatus.StatusModes()
	}
	lines, err := a.fetchLineStatuses(r, modes)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{
		Overview:    linestatus.Overview(lines, time.Now()),
		Modes:       modes,
		RespondedAt: iso8601Now(),
	})
}
