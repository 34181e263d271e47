// Expose search pipeline counters to prometheus, workers push their
// events over HTTP

package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/namsral/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	promPort string
	hits     = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fmi_hit",
			Help: "Number of hits per query.",
		},
		[]string{"query"},
	)
	jobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fmi_job",
			Help: "Number of jobs per status.",
		},
		[]string{"status"},
	)
)

func getHit(w http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	query := vars["query"]
	hits.With(prometheus.Labels{"query": query}).Inc()
}

func getJob(w http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	status := vars["status"]
	jobs.With(prometheus.Labels{"status": status}).Inc()
}

func main() {
	flag.StringVar(&promPort, "listen", ":8080", "interface/port to listen on, default :8080")
	flag.Parse()
	prometheus.MustRegister(hits)
	prometheus.MustRegister(jobs)
	r := mux.NewRouter()
	r.HandleFunc("/metric/hit/{query}", getHit)
	r.HandleFunc("/metric/job/{status}", getJob)
	r.Handle("/metrics", promhttp.Handler())
	http.Handle("/", r)

	log.Fatal(http.ListenAndServe(promPort, nil))
}
