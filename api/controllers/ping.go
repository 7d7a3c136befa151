package controllers

import (
	"net/http"
	"time"

	"github.com/angelmondragon/multistore-admin/api/responses"
)

type pingResponse struct {
	Scope  string `json:"scope"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

func PublicPing() http.HandlerFunc {
	return ping("public")
}

// AdminPing answers behind the admin guards, so a 200 also proves the rate
// limiter let the caller through.
func AdminPing() http.HandlerFunc {
	return ping("admin")
}

func ping(scope string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, pingResponse{Scope: scope, Status: "ok", Time: time.Now().UTC().Format(time.RFC3339)})
	}
}
