package blogdrown

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "blogdrown_client",
		Name:      "api_requests_total",
		Help:      "SDK operations by outcome.",
	},
	[]string{"operation", "outcome"},
)

// observeRequest records one finished operation. Structured rejections count
// separately from transport faults.
func observeRequest(operation string, err error) {
	outcome := "success"
	if err != nil {
		if _, ok := AsAPIError(err); ok {
			outcome = "api_error"
		} else {
			outcome = "error"
		}
	}
	requestsTotal.WithLabelValues(operation, outcome).Inc()
}
