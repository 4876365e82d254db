package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goConsole "github.com/MrEthical07/goConsole"
)

type fakeSource struct {
	snapshot goConsole.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() goConsole.MetricsSnapshot {
	return f.snapshot
}

func (f *fakeSource) AuditDropped() uint64 {
	return f.dropped
}

func sampleSource() *fakeSource {
	return &fakeSource{
		snapshot: goConsole.MetricsSnapshot{
			Counters: map[goConsole.MetricID]uint64{
				goConsole.MetricLoginSuccess:   3,
				goConsole.MetricLoginFailure:   1,
				goConsole.MetricRequestFailure: 2,
			},
			Histograms: map[goConsole.MetricID][]uint64{
				goConsole.MetricRequestLatency: {1, 0, 2, 0, 0, 0, 0, 1},
			},
		},
		dropped: 4,
	}
}

func TestRenderCounters(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(sampleSource())
	out := exporter.Render()

	for _, want := range []string{
		"# TYPE goconsole_login_success_total counter",
		"goconsole_login_success_total 3",
		"goconsole_login_failure_total 1",
		"goconsole_request_failure_total 2",
		"goconsole_audit_dropped_total 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistogramIsCumulative(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(sampleSource())
	out := exporter.Render()

	for _, want := range []string{
		"# TYPE goconsole_request_latency_seconds histogram",
		`goconsole_request_latency_seconds_bucket{le="0.005"} 1`,
		`goconsole_request_latency_seconds_bucket{le="0.025"} 3`,
		`goconsole_request_latency_seconds_bucket{le="+Inf"} 4`,
		"goconsole_request_latency_seconds_count 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptySource(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(&fakeSource{})
	if out := exporter.Render(); out != "" {
		t.Fatalf("empty source rendered %q", out)
	}
}

func TestHandlerServesTextExposition(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(sampleSource())

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "goconsole_login_success_total 3") {
		t.Fatalf("body missing counter:\n%s", rec.Body.String())
	}
}
