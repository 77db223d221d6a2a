package geocluster

import (
	"github.com/hupe1980/geocluster/cluster"
)

// ReportEntry summarizes one cluster with member keys resolved against
// the table.
type ReportEntry struct {
	Keys       []string `json:"keys"`
	CenterX    float64  `json:"center_x"`
	CenterY    float64  `json:"center_y"`
	Population int64    `json:"population"`
	Attribute  float64  `json:"attribute"`
}

// Report is a read-only summary of a clustering, suitable for encoding.
type Report struct {
	Clusters []ReportEntry `json:"clusters"`
	Rows     int           `json:"rows"`
}

// Report resolves a clustering into per-cluster summaries with member row
// IDs translated back to record keys. Members of each entry are listed in
// row order.
func (g *GeoCluster) Report(clusters []*cluster.Cluster) (*Report, error) {
	report := &Report{
		Clusters: make([]ReportEntry, 0, len(clusters)),
	}

	for _, c := range clusters {
		entry := ReportEntry{
			Keys:       make([]string, 0, c.Len()),
			CenterX:    c.Center().X,
			CenterY:    c.Center().Y,
			Population: c.Population(),
			Attribute:  c.Attribute(),
		}

		for id := range c.All() {
			key, ok := g.tbl.Key(id)
			if !ok {
				err := &cluster.ErrUnknownMember{Row: id}
				g.logger.LogReport(len(clusters), err)
				return nil, err
			}

			entry.Keys = append(entry.Keys, key)
		}

		report.Rows += len(entry.Keys)
		report.Clusters = append(report.Clusters, entry)
	}

	g.logger.LogReport(len(clusters), nil)

	return report, nil
}

// EncodeReport resolves a clustering and encodes the report with the
// configured codec.
func (g *GeoCluster) EncodeReport(clusters []*cluster.Cluster) ([]byte, error) {
	report, err := g.Report(clusters)
	if err != nil {
		return nil, err
	}

	return g.codec.Marshal(report)
}
