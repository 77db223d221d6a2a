package codec

import (
	"testing"
)

type benchEntry struct {
	Keys       []string `json:"keys"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Population int64    `json:"population"`
	Attribute  float64  `json:"attribute"`
}

type benchReport struct {
	Clusters []benchEntry `json:"clusters"`
	Rows     int          `json:"rows"`
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func benchReportPayload() benchReport {
	report := benchReport{Rows: 0}

	for i := 0; i < 16; i++ {
		entry := benchEntry{
			X:          float64(i) * 12.5,
			Y:          float64(i%4) * 100,
			Population: int64(1000 * (i + 1)),
			Attribute:  0.0001 * float64(i),
		}
		for j := 0; j < 8; j++ {
			entry.Keys = append(entry.Keys, "0100"+string(rune('0'+j)))
		}

		report.Clusters = append(report.Clusters, entry)
		report.Rows += len(entry.Keys)
	}

	return report
}

func BenchmarkCodec_Marshal_Report(b *testing.B) {
	report := benchReportPayload()

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, report) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, report) })
}

func BenchmarkCodec_Unmarshal_Report(b *testing.B) {
	report := benchReportPayload()

	jsonData := MustMarshal(JSON{}, report)

	b.Run("stdlib", func(b *testing.B) {
		var sink benchReport
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchReport
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}
