package problem

import (
	"net/http"

	"github.com/goccy/go-json"
)

type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Reason carries a user-facing domain refusal (for example why a claim
	// cannot be filed).
	Reason string `json:"reason,omitempty"`
}

func Write(w http.ResponseWriter, status int, title, detail string) {
	WriteProblem(w, Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

func WriteProblem(w http.ResponseWriter, p Problem) {
	if p.Type == "" {
		p.Type = "about:blank"
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
