package golondon

import (
	"encoding/json"
	"net/http"
)

type modeFiltersPayload struct {
	Modes []string `json:"modes"`
}

type lineFiltersPayload struct {
	Lines []string `json:"lines"`
}

func (a *App) handleGetHomeModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modeFiltersPayload{Modes: a.Prefs.HomeModeFilters()})
}

func (a *App) handlePutHomeModes(w http.ResponseWriter, r *http.Request) {
	var payload modeFiltersPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Body must be a JSON object with a modes array.")
		return
	}
	if err := a.Prefs.SetHomeModeFilters(payload.Modes); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, modeFiltersPayload{Modes: a.Prefs.HomeModeFilters()})
}

func (a *App) handleGetLineMapFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lineFiltersPayload{Lines: a.Prefs.LineMapFilters()})
}

func (a *App) handlePutLineMapFilters(w http.ResponseWriter, r *http.Request) {
	var payload lineFiltersPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Body must be a JSON object with a lines array.")
		return
	}
	if err := a.Prefs.SetLineMapFilters(payload.Lines); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lineFiltersPayload{Lines: a.Prefs.LineMapFilters()})
}
