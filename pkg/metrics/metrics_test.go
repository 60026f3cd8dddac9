package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/shop_backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestCustomerCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeReg := testutil.ToFloat64(metrics.RegistrationsTotal)
	beforeOk := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("success"))
	beforeFail := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("failure"))

	metrics.RegistrationsTotal.Inc()
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.LoginsTotal.WithLabelValues("failure").Inc()

	if got := testutil.ToFloat64(metrics.RegistrationsTotal); got != beforeReg+1 {
		t.Fatalf("RegistrationsTotal: got=%v want=%v", got, beforeReg+1)
	}
	if got := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("success")); got != beforeOk+1 {
		t.Fatalf("LoginsTotal(success): got=%v want=%v", got, beforeOk+1)
	}
	if got := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("failure")); got != beforeFail+1 {
		t.Fatalf("LoginsTotal(failure): got=%v want=%v", got, beforeFail+1)
	}
}

func TestOrderEventCounters_ByTopic(t *testing.T) {
	metrics.MustRegister()

	pubBefore := testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues("order-events"))
	failBefore := testutil.ToFloat64(metrics.OrderEventsFailed.WithLabelValues("order-events"))

	metrics.OrderEventsPublished.WithLabelValues("order-events").Inc()
	metrics.OrderEventsPublished.WithLabelValues("order-events").Inc()

	if got := testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues("order-events")); got != pubBefore+2 {
		t.Fatalf("OrderEventsPublished: got=%v want=%v", got, pubBefore+2)
	}
	if got := testutil.ToFloat64(metrics.OrderEventsFailed.WithLabelValues("order-events")); got != failBefore {
		t.Fatalf("OrderEventsFailed: got=%v want=%v", got, failBefore)
	}
}
