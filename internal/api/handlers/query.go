package handlers

import "net/http"

// OptionalQuery возвращает nil, если параметр не передан или пуст
func OptionalQuery(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}
