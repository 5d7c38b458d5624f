package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ferux/powerwatch/internal/model"
)

func (api *HTTP) setupRoutes(info model.ApplicationInfo) {
	router := mux.NewRouter()
	router.NotFoundHandler = api.handleNotFound()

	// api/v1 base path handlers
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.Use(middlewareCounter(api), middlewareRequestID(), middlewareLogger(api.logger))
	v1.HandleFunc("/info", api.handleInfo(info)).Methods(http.MethodGet)
	v1.HandleFunc("/state", api.handleState()).Methods(http.MethodGet)

	api.srv.Handler = router
}
