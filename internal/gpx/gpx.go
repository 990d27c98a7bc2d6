// Package gpx renders position sequences as GPX 1.1 documents for export.
package gpx

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/ecorun/activity-backend-go/internal/models"
)

const creator = "EcoRun"

// timeLayout is ISO-8601 with millisecond precision, always UTC.
const timeLayout = "2006-01-02T15:04:05.000Z"

type document struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Track   track    `xml:"trk"`
}

type track struct {
	Name    string  `xml:"name"`
	Segment segment `xml:"trkseg"`
}

type segment struct {
	Points []trackPoint `xml:"trkpt"`
}

type trackPoint struct {
	Lat        float64     `xml:"lat,attr"`
	Lon        float64     `xml:"lon,attr"`
	Time       string      `xml:"time"`
	Extensions *extensions `xml:"extensions,omitempty"`
}

type extensions struct {
	Speed float64 `xml:"speed"`
}

// Generate renders the positions as a GPX track named after the activity.
// Points appear in input order, one trkpt per position, with a speed extension
// when the source position carries a speed. An empty sequence produces a valid
// document with an empty track segment. No validation or deduplication is
// performed.
func Generate(positions []models.RawPosition, activityName string) (string, error) {
	doc := document{
		Version: "1.1",
		Creator: creator,
		Track: track{
			Name:    activityName,
			Segment: segment{Points: make([]trackPoint, 0, len(positions))},
		},
	}

	for _, pos := range positions {
		pt := trackPoint{
			Lat:  pos.Latitude,
			Lon:  pos.Longitude,
			Time: time.UnixMilli(pos.Timestamp).UTC().Format(timeLayout),
		}
		if pos.Speed != nil {
			pt.Extensions = &extensions{Speed: *pos.Speed}
		}
		doc.Track.Segment.Points = append(doc.Track.Segment.Points, pt)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal gpx document: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}
