package adapter

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordRebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_record_rebuilds_total",
		Help: "Number of times a native record was rebuilt by a facing mutation.",
	}, []string{"record"})
	unwrapFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_unwrap_failures_total",
		Help: "Number of facing values rejected while unwrapping into a native record.",
	}, []string{"record"})
)

// typeLabel names a native type for metric labels, e.g. "phase1.Eth1Data".
func typeLabel(v interface{}) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
