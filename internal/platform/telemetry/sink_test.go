package telemetry

import "testing"

func TestResolveSink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exporter, endpoint string
		want               sink
		wantErr            bool
	}{
		{exporter: ExporterStdout, want: sink{}},
		{exporter: ExporterOTLP, endpoint: "http://otel-collector:4318", want: sink{otlp: true, host: "otel-collector:4318", insecure: true}},
		{exporter: ExporterOTLP, endpoint: "https://collector.example.com", want: sink{otlp: true, host: "collector.example.com"}},
		{exporter: ExporterOTLP, endpoint: "otel-collector:4318", want: sink{otlp: true, host: "otel-collector:4318", insecure: true}},
		{exporter: ExporterOTLP, wantErr: true},
		{exporter: "jaeger", endpoint: "http://j:14268", wantErr: true},
	}

	for _, tt := range tests {
		got, err := resolveSink(tt.exporter, tt.endpoint)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveSink(%q, %q) error = %v, wantErr %v", tt.exporter, tt.endpoint, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveSink(%q, %q) = %+v, want %+v", tt.exporter, tt.endpoint, got, tt.want)
		}
	}
}
