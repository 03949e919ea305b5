package server

import (
	"log"
	"net/http"

	"github.com/umputun/hnscope/pkg/domain"
)

// flagRow is a flag on the overrides page
type flagRow struct {
	domain.FlagDefinition
	Value      string
	Override   string
	Overridden bool
	Options    []string
}

type overridesPage struct {
	pageView
	Flags []flagRow
	Error string
}

func (s *Server) flagRows() []flagRow {
	overrides := s.deps.Overrides.Overrides()
	defs := s.deps.Flags.Definitions()
	values := s.deps.Flags.Values()
	rows := make([]flagRow, 0, len(defs))
	for _, d := range defs {
		row := flagRow{FlagDefinition: d, Value: values[d.Name], Options: d.AllowedValues}
		if d.Kind == domain.FlagBoolean {
			row.Options = []string{"true", "false"}
		}
		row.Override, row.Overridden = overrides[d.Name]
		rows = append(rows, row)
	}
	return rows
}

// overridesPageHandler lists flags with their current values and overrides
func (s *Server) overridesPageHandler(w http.ResponseWriter, r *http.Request) {
	data := overridesPage{pageView: s.newPageView(r, "Flag overrides", ""), Flags: s.flagRows()}
	s.renderPage(w, "overrides", http.StatusOK, data)
}

// overridesHandler sets or clears a single override
func (s *Server) overridesHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	name := r.FormValue("name")

	switch r.FormValue("action") {
	case "clear":
		s.deps.Overrides.ClearOverride(name)
		log.Printf("[INFO] flag override cleared: %s", name)
	case "set":
		value := r.FormValue("value")
		if err := s.deps.Overrides.SetOverride(name, value); err != nil {
			log.Printf("[WARN] can't override flag %s: %v", name, err)
			data := overridesPage{pageView: s.newPageView(r, "Flag overrides", ""), Flags: s.flagRows(), Error: err.Error()}
			s.renderPage(w, "overrides", http.StatusBadRequest, data)
			return
		}
		log.Printf("[INFO] flag override set: %s=%s", name, value)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/dev/overrides", http.StatusSeeOther)
}
