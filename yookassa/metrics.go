package yookassa

import "github.com/prometheus/client_golang/prometheus"

var decodeFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "yookassa_decode_failures_total",
		Help: "A counter for the number of gateway payloads rejected by entity",
	},
	[]string{"entity"},
)

func init() {
	prometheus.MustRegister(decodeFailures)
}
