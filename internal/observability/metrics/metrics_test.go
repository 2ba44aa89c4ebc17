package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		200: "2xx",
		201: "2xx",
		303: "3xx",
		401: "4xx",
		422: "4xx",
		500: "5xx",
	}
	for status, want := range cases {
		if got := statusClass(status); got != want {
			t.Fatalf("statusClass(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestRecordLogin(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("failed to build metrics: %v", err)
	}

	m.RecordLogin("success")
	m.RecordLogin("success")
	m.RecordLogin("invalid_credentials")

	if got := testutil.ToFloat64(m.loginsTotal.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful logins, got %v", got)
	}
	if got := testutil.ToFloat64(m.loginsTotal.WithLabelValues("invalid_credentials")); got != 1 {
		t.Fatalf("expected 1 failed login, got %v", got)
	}
}

func TestRecordInvoiceMutation(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("failed to build metrics: %v", err)
	}

	m.RecordInvoiceMutation("create", "success")
	if got := testutil.ToFloat64(m.mutationsTotal.WithLabelValues("create", "success")); got != 1 {
		t.Fatalf("expected 1 create mutation, got %v", got)
	}
}
